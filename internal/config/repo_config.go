// Package config provides repository configuration management,
// including the repository marker directory and codebird configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"codebird.dev/codebird/internal/errors"
)

const (
	// MarkerDir is the directory that marks a directory tree as a codebird
	// repository and holds its config, state and logs.
	MarkerDir = ".codebird"

	configFileName = "config.json"
	stateFileName  = "state.json"
)

// RepoConfig represents the repository configuration
type RepoConfig struct {
	DefaultBranch *string `json:"defaultBranch,omitempty"`
}

// GetRepoConfig reads the repository configuration. A missing config file
// yields the zero config.
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// GetDefaultBranch returns the configured default branch name, or "main"
func GetDefaultBranch(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.DefaultBranch != nil && *config.DefaultBranch != "" {
		return *config.DefaultBranch, nil
	}
	return "main", nil
}

// SetDefaultBranch updates the default branch name in the config
func SetDefaultBranch(repoRoot string, branchName string) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.DefaultBranch = &branchName

	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath(repoRoot), configJSON, 0600)
}

// IsInitialized checks whether the marker directory exists
func IsInitialized(repoRoot string) bool {
	info, err := os.Stat(filepath.Join(repoRoot, MarkerDir))
	return err == nil && info.IsDir()
}

// InitRepo creates the marker directory and writes the initial config.
// Fails with ErrAlreadyInitialized if the marker already exists.
func InitRepo(repoRoot string, defaultBranch string) error {
	markerPath := filepath.Join(repoRoot, MarkerDir)
	if _, err := os.Stat(markerPath); err == nil {
		return errors.ErrAlreadyInitialized
	}

	if err := os.MkdirAll(markerPath, 0750); err != nil {
		return fmt.Errorf("failed to create %s: %w", MarkerDir, err)
	}

	if defaultBranch == "" {
		defaultBranch = "main"
	}
	return SetDefaultBranch(repoRoot, defaultBranch)
}

// FindRepoRoot walks up from the working directory looking for the marker
// directory. Fails with ErrNotInitialized when none is found.
func FindRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	for {
		if IsInitialized(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.ErrNotInitialized
		}
		dir = parent
	}
}

// StatePath returns the path of the serialized repository state
func StatePath(repoRoot string) string {
	return filepath.Join(repoRoot, MarkerDir, stateFileName)
}

// LogPath returns the path of the rotating debug log file.
// CODEBIRD_LOG_FILE overrides the default location inside the marker dir.
func LogPath(repoRoot string) string {
	if customPath := os.Getenv("CODEBIRD_LOG_FILE"); customPath != "" {
		return customPath
	}
	return filepath.Join(repoRoot, MarkerDir, "logs", "codebird.log")
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, MarkerDir, configFileName)
}
