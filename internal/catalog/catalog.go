// Package catalog provides the snippet catalog: built-in snippets plus
// optional user snippets loaded from YAML files.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/fastcode/internal/model"
)

const defaultIcon = "💻"

// ErrInvalidSnippet marks a snippet file that cannot be used.
var ErrInvalidSnippet = errors.New("invalid snippet")

// Builtin returns a copy of the compiled-in snippets.
func Builtin() []model.CodeSnippet {
	out := make([]model.CodeSnippet, len(builtin))
	copy(out, builtin)
	return out
}

// Icon returns the display icon for a snippet language.
func Icon(language string) string {
	if icon, ok := languageIcons[language]; ok {
		return icon
	}
	return defaultIcon
}

// Load returns the built-in snippets followed by any user snippets in dir.
// An empty dir or a missing directory yields only the built-in ones. User
// snippets whose ID collides with an earlier one are skipped.
func Load(dir string) ([]model.CodeSnippet, error) {
	snippets := Builtin()
	if dir == "" {
		return snippets, nil
	}
	user, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(snippets)+len(user))
	for _, s := range snippets {
		seen[s.ID] = struct{}{}
	}
	for _, s := range user {
		if _, ok := seen[s.ID]; ok {
			continue
		}
		seen[s.ID] = struct{}{}
		snippets = append(snippets, s)
	}
	return snippets, nil
}

// LoadDir reads every *.yaml / *.yml file in dir, sorted by file name.
func LoadDir(dir string) ([]model.CodeSnippet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snippets directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsSnippetFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	snippets := make([]model.CodeSnippet, 0, len(names))
	for _, name := range names {
		s, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		snippets = append(snippets, s)
	}
	return snippets, nil
}

// LoadFile parses a single snippet file. The ID defaults to the file stem.
func LoadFile(path string) (model.CodeSnippet, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return model.CodeSnippet{}, fmt.Errorf("failed to read snippet %s: %w", path, err)
	}
	var s model.CodeSnippet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return model.CodeSnippet{}, fmt.Errorf("failed to decode snippet %s: %w", path, err)
	}
	if strings.TrimSpace(s.ID) == "" {
		s.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	s.Code = strings.TrimRight(s.Code, "\n")
	if err := Validate(s); err != nil {
		return model.CodeSnippet{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate rejects snippets that cannot be played.
func Validate(s model.CodeSnippet) error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("%w: id is empty", ErrInvalidSnippet)
	}
	if s.Code == "" {
		return fmt.Errorf("%w: code is empty", ErrInvalidSnippet)
	}
	if s.Language == "" {
		return fmt.Errorf("%w: language is empty", ErrInvalidSnippet)
	}
	return nil
}

// IndexOf returns the position of the snippet with id, or -1.
func IndexOf(snippets []model.CodeSnippet, id string) int {
	for i, s := range snippets {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// IsSnippetFile reports whether name has a snippet file extension.
func IsSnippetFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
