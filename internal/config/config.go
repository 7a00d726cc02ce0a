// Package config loads optional user settings for the roll CLI. Settings
// live in ~/.config/roll/config.yaml (overridable via ROLL_CONFIG) and are
// entirely optional: a missing file yields defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// EnvConfigPath overrides the settings file location when set.
const EnvConfigPath = "ROLL_CONFIG"

// Config holds user settings.
type Config struct {
	Colors Colors `mapstructure:"colors"`
}

// Colors overrides the highlight colors for extremal die values. Values
// are ANSI color names such as "BrightRed"; ui.ColorByName resolves them.
// Empty fields keep the built-in defaults.
type Colors struct {
	Low  string `mapstructure:"low"`
	High string `mapstructure:"high"`
}

// Load reads the settings file. A missing file is not an error; a present
// but malformed file is.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if path := os.Getenv(EnvConfigPath); path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "roll"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &cfg, nil
}
