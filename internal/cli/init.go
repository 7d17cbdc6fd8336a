package cli

import (
	"github.com/spf13/cobra"

	"codebird.dev/codebird/internal/actions"
	"codebird.dev/codebird/internal/output"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var defaultBranch string

	cmd := &cobra.Command{
		Use:          "init",
		Aliases:      []string{"i"},
		Short:        "Initialize a CodeBird repository in the current directory",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return actions.InitAction(output.NewSplog(), actions.InitOptions{
				DefaultBranch: defaultBranch,
			})
		},
	}

	cmd.Flags().StringVar(&defaultBranch, "default-branch", "", "Name of the initial branch")

	return cmd
}
