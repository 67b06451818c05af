// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Chart   ChartConfig   `toml:"chart"`
	History HistoryConfig `toml:"history"`
}

// ChartConfig maps chart rendering settings.
type ChartConfig struct {
	Width  *int  `toml:"width"`
	Height *int  `toml:"height"`
	Color  *bool `toml:"color"`
}

// HistoryConfig maps history reporting settings.
type HistoryConfig struct {
	Last   *int `toml:"last"`
	Window *int `toml:"window"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
