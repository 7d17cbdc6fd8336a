// Package actions implements the user-facing operations behind each CLI
// command: orchestration over the engine plus console reporting.
package actions

import (
	"fmt"
	"os"

	"codebird.dev/codebird/internal/config"
	"codebird.dev/codebird/internal/engine"
	"codebird.dev/codebird/internal/output"
)

// InitOptions contains options for initializing a repository
type InitOptions struct {
	DefaultBranch string
}

// InitAction initializes a codebird repository in the working directory:
// it creates the marker directory, the config and the initial state document.
func InitAction(splog *output.Splog, opts InitOptions) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	defaultBranch := opts.DefaultBranch
	if defaultBranch == "" {
		userCfg, err := config.LoadUserConfig()
		if err == nil && userCfg.DefaultBranch != "" {
			defaultBranch = userCfg.DefaultBranch
		}
	}
	if defaultBranch == "" {
		defaultBranch = engine.DefaultBranch
	}

	if err := config.InitRepo(workDir, defaultBranch); err != nil {
		return err
	}

	stateStore := engine.NewFileStateStore(config.StatePath(workDir))
	if err := stateStore.Save(engine.DefaultStateFor(defaultBranch)); err != nil {
		return fmt.Errorf("failed to write initial state: %w", err)
	}

	splog.Info("Repository initialized! %s directory created.", config.MarkerDir)
	splog.Info("Default branch is %s.", output.ColorBranchName(defaultBranch, true))
	return nil
}
