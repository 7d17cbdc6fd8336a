package cli

import (
	"github.com/spf13/cobra"

	"codebird.dev/codebird/internal/actions"
	"codebird.dev/codebird/internal/runtime"
)

// newAddCmd creates the add command
func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "add <file>...",
		Short:        "Track one or more files in the repository",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			for _, fileName := range args {
				if err := actions.AddAction(ctx, actions.AddOptions{FileName: fileName}); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
