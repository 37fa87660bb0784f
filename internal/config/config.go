// Package config provides the TOML configuration file and XDG path
// helpers. Flags override config values; config values override the
// built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultSessionLength is the queue length used when neither flag nor
// config file sets one.
const DefaultSessionLength = 10

// Config represents the TOML configuration file.
type Config struct {
	Practice PracticeConfig `toml:"practice"`
	Catalog  CatalogConfig  `toml:"catalog"`
}

// PracticeConfig maps session-related settings.
type PracticeConfig struct {
	Length        *int    `toml:"length"`
	Direction     *string `toml:"direction"`
	Tier          *string `toml:"tier"`
	FavorWeak     *bool   `toml:"favor-weak"`
	FavorFrequent *bool   `toml:"favor-frequent"`
	MinDistance   *int    `toml:"min-distance"`
}

// CatalogConfig maps content source overrides.
type CatalogConfig struct {
	Path      *string `toml:"path"`
	Frequency *string `toml:"frequency"`
}

// Load reads a TOML config from the given path. A missing file is not
// an error; the zero Config means "use defaults".
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("stat config: %w", err)
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// DefaultPath returns the default TOML config path.
func DefaultPath() string {
	return filepath.Join(xdgConfigHome(), "vocablo", "config.toml")
}

func xdgConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}
