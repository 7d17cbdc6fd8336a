// Package cli wires the cobra command tree. Commands are thin: they parse
// arguments and delegate to the actions package.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"codebird.dev/codebird/internal/config"
	"codebird.dev/codebird/internal/output"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "codebird",
		Short:         "CodeBird is a minimal version-control system",
		Long:          "CodeBird is a minimal version-control system: branches, commits and merges over abstract change descriptions.",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			colorMode := "auto"
			if userCfg, err := config.LoadUserConfig(); err == nil && userCfg.Color != "" {
				colorMode = userCfg.Color
			}
			output.ApplyColorMode(colorMode)
		},
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newBranchCmd())
	rootCmd.AddCommand(newSwitchCmd())
	rootCmd.AddCommand(newMergeCmd())

	return rootCmd
}
