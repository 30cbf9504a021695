// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the catalog token goes to the OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"vqr/cli/internal/xdg"
)

// Environment variables that override the config file.
const (
	EnvCatalog      = "VQR_CATALOG"
	EnvCatalogToken = "VQR_CATALOG_TOKEN"
	EnvVerbose      = "VQR_VERBOSE"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	LogLevel    string      `json:"log_level"`
	Catalog     string      `json:"catalog"`
	PreviewRows int         `json:"preview_rows"`
	Chart       ChartConfig `json:"chart"`
}

// ChartConfig holds terminal chart dimensions.
type ChartConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		LogLevel:    "info",
		PreviewRows: 5,
		Chart:       ChartConfig{Width: 100, Height: 20},
	}
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
func Load() (Config, error) {
	p, err := path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(p)
}

// LoadFile reads configuration from p. Fields absent from the file keep their defaults.
func LoadFile(p string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.PreviewRows <= 0 {
		c.PreviewRows = Default().PreviewRows
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// CatalogSource picks the catalog location: flag, then VQR_CATALOG, then the config file.
func (c Config) CatalogSource(flag string) string {
	if v := strings.TrimSpace(flag); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(EnvCatalog)); v != "" {
		return v
	}
	return strings.TrimSpace(c.Catalog)
}

// Verbose reports whether debug output was requested by flag, env or log level.
func (c Config) Verbose(flag bool) bool {
	return flag || os.Getenv(EnvVerbose) == "1" || strings.EqualFold(c.LogLevel, "debug")
}
