package cli

import (
	"github.com/spf13/cobra"

	"codebird.dev/codebird/internal/actions"
	"codebird.dev/codebird/internal/runtime"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "commit <file>...",
		Aliases:      []string{"ci"},
		Short:        "Record a commit for the given modified files on the current branch",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			return actions.CommitAction(ctx, actions.CommitOptions{ModifiedFiles: args})
		},
	}
}
