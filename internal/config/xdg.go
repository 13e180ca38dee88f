// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "fastcode"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultSnippetsDir returns the directory scanned for user snippet files.
func DefaultSnippetsDir() string {
	return filepath.Join(XDGConfigHome(), appName, "snippets")
}

// DefaultDBPath returns the default path for the preferences database.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appName, "fastcode.db")
}

// DefaultLogPath returns a log file location for TUI sessions.
func DefaultLogPath() string {
	return filepath.Join(XDGDataHome(), appName, "fastcode.log")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}
