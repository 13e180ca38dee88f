package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/verte-zerg/fastcode/internal/model"
)

const reloadDelay = 200 * time.Millisecond

// Watch monitors dir and emits a freshly loaded catalog after snippet files
// change. Bursts of events are coalesced. The channel is closed when ctx is
// done. Reload failures are logged and the previous catalog stays in use.
func Watch(ctx context.Context, dir string, logger *log.Logger) (<-chan []model.CodeSnippet, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snippets directory: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	out := make(chan []model.CodeSnippet, 1)
	go func() {
		defer close(out)
		defer func() {
			if cerr := fsw.Close(); cerr != nil {
				logger.Warn("failed to close watcher", "err", cerr)
			}
		}()

		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if !IsSnippetFile(filepath.Base(event.Name)) {
					continue
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				logger.Debug("snippet file changed", "file", event.Name, "op", event.Op.String())
				pending = time.After(reloadDelay)
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("snippet watcher error", "err", err)
			case <-pending:
				pending = nil
				snippets, err := Load(dir)
				if err != nil {
					logger.Warn("failed to reload snippets", "err", err)
					continue
				}
				select {
				case out <- snippets:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
