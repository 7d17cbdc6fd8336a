package actions

import (
	"codebird.dev/codebird/internal/output"
	"codebird.dev/codebird/internal/runtime"
	"codebird.dev/codebird/internal/tui"
)

// LogOptions contains options for showing commit history
type LogOptions struct {
	Interactive bool
}

// LogAction shows the commit history of the current branch, oldest first.
// With Interactive set (and a TTY available) it opens the history browser.
func LogAction(ctx *runtime.Context, opts LogOptions) error {
	currentBranch := ctx.Engine.CurrentBranch()
	commits, err := ctx.Engine.CommitsOf(currentBranch)
	if err != nil {
		return err
	}

	if opts.Interactive && output.IsTTY() {
		return tui.RunLogBrowser(currentBranch, commits)
	}

	ctx.Splog.Info("Commit history for branch %s:", output.ColorBranchName(currentBranch, true))
	if len(commits) == 0 {
		ctx.Splog.Info("%s", output.ColorDim("  (no commits)"))
		return nil
	}

	for _, commit := range commits {
		ctx.Splog.Newline()
		ctx.Splog.Info("Commit:    %s", output.ColorCommitID(commit.ID))
		ctx.Splog.Info("Message:   %s", commit.Message)
		ctx.Splog.Info("Timestamp: %s", commit.Timestamp.Format("2006-01-02 15:04:05"))
		ctx.Splog.Info("Changes:   %s", commit.ChangeDescription)
	}
	return nil
}

// StatusAction shows the current branch name
func StatusAction(ctx *runtime.Context) error {
	ctx.Splog.Info("Currently on branch: %s", output.ColorBranchName(ctx.Engine.CurrentBranch(), true))
	return nil
}
