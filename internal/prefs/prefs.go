// Package prefs exposes the locally persisted user preferences. Storage
// failures are logged and never returned: callers always get a usable value.
package prefs

import (
	"context"
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/verte-zerg/fastcode/internal/i18n"
)

// Storage keys.
const (
	LocaleKey          = "fastcode-language"
	BannerDismissedKey = "fastcode-beta-dismissed"
)

// Backend is a key/value store such as *store.Store.
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Deleter is implemented by backends that can drop a key. Stored values that
// no longer parse are removed through it.
type Deleter interface {
	Delete(ctx context.Context, key string) error
}

// Preferences caches the stored values in memory.
type Preferences struct {
	backend         Backend
	logger          *log.Logger
	locale          i18n.Locale
	bannerDismissed bool
}

// Load reads the preferences from backend. A nil backend keeps everything in
// memory and a nil logger discards output.
func Load(ctx context.Context, backend Backend, logger *log.Logger) *Preferences {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Preferences{
		backend: backend,
		logger:  logger,
		locale:  i18n.Default,
	}
	if raw, ok := p.read(ctx, LocaleKey); ok {
		if locale, valid := i18n.Parse(raw); valid {
			p.locale = locale
		} else {
			logger.Debug("ignoring stored locale", "value", raw)
			p.remove(ctx, LocaleKey)
		}
	}
	if raw, ok := p.read(ctx, BannerDismissedKey); ok {
		if dismissed, err := strconv.ParseBool(raw); err == nil {
			p.bannerDismissed = dismissed
		} else {
			logger.Debug("ignoring stored banner flag", "value", raw)
			p.remove(ctx, BannerDismissedKey)
		}
	}
	return p
}

// Locale returns the selected UI locale.
func (p *Preferences) Locale() i18n.Locale {
	return p.locale
}

// SetLocale updates the locale in memory and persists it.
func (p *Preferences) SetLocale(ctx context.Context, locale i18n.Locale) {
	p.locale = locale
	p.write(ctx, LocaleKey, string(locale))
}

// BannerDismissed reports whether the beta banner was closed.
func (p *Preferences) BannerDismissed() bool {
	return p.bannerDismissed
}

// DismissBanner hides the beta banner for good.
func (p *Preferences) DismissBanner(ctx context.Context) {
	p.bannerDismissed = true
	p.write(ctx, BannerDismissedKey, strconv.FormatBool(true))
}

func (p *Preferences) read(ctx context.Context, key string) (string, bool) {
	if p.backend == nil {
		return "", false
	}
	value, ok, err := p.backend.Get(ctx, key)
	if err != nil {
		p.logger.Warn("failed to read preference", "key", key, "err", err)
		return "", false
	}
	return value, ok
}

func (p *Preferences) write(ctx context.Context, key, value string) {
	if p.backend == nil {
		return
	}
	if err := p.backend.Set(ctx, key, value); err != nil {
		p.logger.Warn("failed to save preference", "key", key, "err", err)
	}
}

func (p *Preferences) remove(ctx context.Context, key string) {
	d, ok := p.backend.(Deleter)
	if !ok {
		return
	}
	if err := d.Delete(ctx, key); err != nil {
		p.logger.Warn("failed to clear preference", "key", key, "err", err)
	}
}
