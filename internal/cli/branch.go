package cli

import (
	"github.com/spf13/cobra"

	"codebird.dev/codebird/internal/actions"
	"codebird.dev/codebird/internal/runtime"
)

// newBranchCmd creates the branch command
func newBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "branch <name>",
		Aliases:      []string{"create"},
		Short:        "Create a new branch without switching to it",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			return actions.CreateBranchAction(ctx, actions.CreateBranchOptions{BranchName: args[0]})
		},
	}
}

// newSwitchCmd creates the switch command
func newSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "switch [branch]",
		Aliases:      []string{"co"},
		Short:        "Switch to a branch. If no branch is provided, opens an interactive selector.",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			branchName := ""
			if len(args) > 0 {
				branchName = args[0]
			}

			return actions.SwitchBranchAction(ctx, actions.SwitchBranchOptions{BranchName: branchName})
		},
	}
}

// newMergeCmd creates the merge command
func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "merge <branch>",
		Short:        "Merge a branch into the current branch",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			return actions.MergeAction(ctx, actions.MergeOptions{BranchName: args[0]})
		},
	}
}
