// Package xdg provides helpers to resolve XDG Base Directory paths for vqr.
// Configuration lives under $XDG_CONFIG_HOME/vqr and falls back to
// ~/.config/vqr when the variable is unset.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "vqr"

// ConfigDir returns the XDG config directory for vqr.
// The directory is created with private permissions (0700) if missing.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
