package actions

import (
	goerrors "errors"

	"codebird.dev/codebird/internal/errors"
	"codebird.dev/codebird/internal/output"
	"codebird.dev/codebird/internal/runtime"
	"codebird.dev/codebird/internal/utils"
)

// MergeOptions contains options for merging a branch
type MergeOptions struct {
	BranchName string
}

// MergeAction merges the named branch into the current branch. On conflict it
// prints the report (listing the whole tracked-file registry, which is how the
// conflict report is defined) and leaves both branches untouched.
func MergeAction(ctx *runtime.Context, opts MergeOptions) error {
	if !utils.ContainsString(ctx.Engine.AllBranchNames(), opts.BranchName) {
		return errors.NewBranchNotFoundError(opts.BranchName)
	}

	currentBranch := ctx.Engine.CurrentBranch()
	ctx.Splog.Info("Merging branch %s into %s",
		output.ColorBranchName(opts.BranchName, false),
		output.ColorBranchName(currentBranch, true))

	result, err := ctx.Engine.Merge(opts.BranchName)
	if err != nil {
		var conflictErr *errors.MergeConflictError
		if goerrors.As(err, &conflictErr) {
			printConflictReport(ctx, conflictErr)
		}
		return err
	}

	ctx.Splog.Info("%s", output.ColorSuccess("Merge completed successfully!"))
	ctx.Splog.Info("Appended %d commit(s) from %s to %s.",
		result.AppendedCommits,
		output.ColorBranchName(result.SourceBranch, false),
		output.ColorBranchName(result.TargetBranch, true))
	return nil
}

func printConflictReport(ctx *runtime.Context, conflictErr *errors.MergeConflictError) {
	ctx.Splog.Error("%s", output.ColorConflict("Conflict detected! Merge cannot be completed automatically."))
	if len(conflictErr.TrackedFiles) > 0 {
		ctx.Splog.Info("Please resolve conflicts manually in the following files:")
		for _, file := range conflictErr.TrackedFiles {
			ctx.Splog.Info("  %s", file)
		}
	}
	ctx.Splog.Info("Merge aborted.")
}
