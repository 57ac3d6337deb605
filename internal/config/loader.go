package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sadopc/splitdiff/internal/logx"
)

// Dir returns ~/.config/splitdiff, or "" when the home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "splitdiff")
}

// Load loads configuration from ~/.config/splitdiff/config.yaml.
// A missing or unreadable file yields the defaults.
func Load() Config {
	dir := Dir()
	if dir == "" {
		return DefaultConfig()
	}
	cfg, err := LoadFrom(filepath.Join(dir, "config.yaml"))
	if err != nil {
		logx.Debugf("config: %v, using defaults", err)
		return DefaultConfig()
	}
	return cfg
}

// LoadFrom reads a configuration file on top of the defaults.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	logx.Debugf("config: loaded %s", path)
	return cfg, nil
}

// ResolvedHistoryPath returns the history database path, applying the
// default location when none is configured.
func (c Config) ResolvedHistoryPath() string {
	if c.HistoryPath != "" {
		return c.HistoryPath
	}
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "history.db")
}
