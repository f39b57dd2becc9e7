// Package config loads the optional TOML configuration file. Every
// field has a working default, so a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/pshev/chat2md/internal"
)

// Config holds user-tunable settings.
type Config struct {
	OutputDir     string `toml:"output_dir"`
	DefaultFormat string `toml:"default_format"`
	MaxNameLength int    `toml:"max_name_length"`
	CatalogPath   string `toml:"catalog_path"`
}

// Load reads ~/.config/chat2md/config.toml when present, applying
// defaults for anything unset.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		OutputDir:     "./notes",
		DefaultFormat: "md",
		MaxNameLength: internal.DefaultMaxNameLength,
		CatalogPath:   filepath.Join(home, ".config", "chat2md", "history.db"),
	}

	cfgPath := filepath.Join(home, ".config", "chat2md", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	cfg.OutputDir = expandHome(cfg.OutputDir, home)
	cfg.CatalogPath = expandHome(cfg.CatalogPath, home)

	if cfg.MaxNameLength <= 0 {
		cfg.MaxNameLength = internal.DefaultMaxNameLength
	}

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
