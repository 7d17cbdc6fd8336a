package actions

import (
	"fmt"

	"codebird.dev/codebird/internal/output"
	"codebird.dev/codebird/internal/runtime"
	"codebird.dev/codebird/internal/tui"
)

// CreateBranchOptions contains options for creating a branch
type CreateBranchOptions struct {
	BranchName string
}

// CreateBranchAction creates a new empty branch without switching to it
func CreateBranchAction(ctx *runtime.Context, opts CreateBranchOptions) error {
	if err := ctx.Engine.CreateBranch(opts.BranchName); err != nil {
		return err
	}

	ctx.Splog.Info("Branch %s created.", output.ColorBranchName(opts.BranchName, false))
	return nil
}

// SwitchBranchOptions contains options for switching branches
type SwitchBranchOptions struct {
	BranchName string
}

// SwitchBranchAction makes the named branch current. With an empty name it
// opens an interactive selector when a TTY is available.
func SwitchBranchAction(ctx *runtime.Context, opts SwitchBranchOptions) error {
	branchName := opts.BranchName
	if branchName == "" {
		if !output.IsTTY() {
			return fmt.Errorf("branch name required in non-interactive mode")
		}
		selected, err := tui.SelectBranch(ctx.Engine.AllBranchNames(), ctx.Engine.CurrentBranch())
		if err != nil {
			return err
		}
		branchName = selected
	}

	if err := ctx.Engine.SwitchBranch(branchName); err != nil {
		return err
	}

	ctx.Splog.Info("Switched to branch %s", output.ColorBranchName(branchName, true))
	return nil
}
