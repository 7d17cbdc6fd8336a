package actions

import (
	"codebird.dev/codebird/internal/output"
	"codebird.dev/codebird/internal/runtime"
)

// CommitOptions contains options for creating a commit
type CommitOptions struct {
	ModifiedFiles []string
}

// CommitAction records a change event for the given files on the current
// branch. Fails with ErrNoFilesModified when no files are given.
func CommitAction(ctx *runtime.Context, opts CommitOptions) error {
	commit, err := ctx.Engine.Commit(opts.ModifiedFiles)
	if err != nil {
		return err
	}

	ctx.Splog.Info("Commit %s made on branch %s with message: %s",
		output.ColorCommitID(commit.ID),
		output.ColorBranchName(commit.BranchName, true),
		commit.Message)
	return nil
}
