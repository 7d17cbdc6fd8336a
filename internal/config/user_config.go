package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UserConfig holds per-user defaults read from ~/.codebird/config.yaml.
// Repository config takes precedence over these.
type UserConfig struct {
	DefaultBranch string `yaml:"defaultBranch,omitempty"`
	Color         string `yaml:"color,omitempty"` // "auto" (default), "always", "never"
}

// LoadUserConfig reads the global user configuration. A missing file yields
// the zero config; CODEBIRD_CONFIG overrides the default location.
func LoadUserConfig() (*UserConfig, error) {
	path := os.Getenv("CODEBIRD_CONFIG")
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return &UserConfig{}, nil
		}
		path = filepath.Join(homeDir, MarkerDir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &UserConfig{}, nil
	}

	var config UserConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse user config %s: %w", path, err)
	}

	return &config, nil
}
