package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// userHomeDirFn is a variable for testing.
var userHomeDirFn = os.UserHomeDir

// Config holds the on-disk configuration. Every field has a working
// default so a missing file is not an error.
type Config struct {
	ShowHidden bool `yaml:"show_hidden"` // Show dotfiles at startup
	Theme      struct {
		Directory string `yaml:"directory"` // Directory name color
		Symlink   string `yaml:"symlink"`   // Symlink name color
		Selected  string `yaml:"selected"`  // Selected entry color
		Hidden    string `yaml:"hidden"`    // Hidden entry color
		CursorFg  string `yaml:"cursor_fg"` // Cursor row foreground
		CursorBg  string `yaml:"cursor_bg"` // Cursor row background
	} `yaml:"theme"`
}

// Load reads the configuration from the default location
// (~/.config/wend/config.yaml).
func Load() (*Config, error) {
	home, err := userHomeDirFn()
	if err != nil {
		return nil, err
	}
	return LoadFile(filepath.Join(home, ".config", "wend", "config.yaml"))
}

// LoadFile reads the configuration from a specific path. A missing file
// returns the defaults; a malformed file is an error.
func LoadFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{}
}
