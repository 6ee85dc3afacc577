// Package config handles loading the trackr config.toml file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"trackr/internal/paths"
)

// Backend values accepted by the storage section.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config represents the config.toml configuration file.
type Config struct {
	Storage Storage `toml:"storage"`
	Lists   Lists   `toml:"lists"`
}

// Storage selects where and how state is persisted.
type Storage struct {
	// Backend is "file" (one JSON file per key) or "sqlite".
	Backend string `toml:"backend"`

	// Dir overrides the state directory.
	Dir string `toml:"dir"`
}

// Lists contains list-related configuration.
type Lists struct {
	// Max caps the number of lists. Zero means the built-in default.
	Max int `toml:"max"`
}

// Load reads ~/.config/trackr/config.toml and applies defaults. A
// missing file yields the default config. TRACKR_STATE_DIR takes
// precedence over the configured state directory.
func Load() (*Config, error) {
	path, err := paths.ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		return nil, err
	}

	cfg.Storage.Backend = strings.TrimSpace(strings.ToLower(cfg.Storage.Backend))
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendFile
	}
	if cfg.Storage.Backend != BackendFile && cfg.Storage.Backend != BackendSQLite {
		return nil, fmt.Errorf("invalid storage backend %q (valid: file, sqlite)", cfg.Storage.Backend)
	}

	if dir := os.Getenv(paths.StateDirEnv); dir != "" {
		cfg.Storage.Dir = dir
	}
	if cfg.Storage.Dir == "" {
		dir, err := paths.DefaultStateDir()
		if err != nil {
			return nil, err
		}
		cfg.Storage.Dir = dir
	}

	return cfg, nil
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, nil
}
