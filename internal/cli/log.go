package cli

import (
	"github.com/spf13/cobra"

	"codebird.dev/codebird/internal/actions"
	"codebird.dev/codebird/internal/runtime"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:          "log",
		Aliases:      []string{"l"},
		Short:        "Show the commit history of the current branch",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			return actions.LogAction(ctx, actions.LogOptions{Interactive: interactive})
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the history interactively")

	return cmd
}

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "status",
		Aliases:      []string{"st"},
		Short:        "Show the current branch",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			return actions.StatusAction(ctx)
		},
	}
}
