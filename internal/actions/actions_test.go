package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"codebird.dev/codebird/internal/actions"
	"codebird.dev/codebird/internal/engine"
	"codebird.dev/codebird/internal/errors"
	"codebird.dev/codebird/internal/runtime"
)

func newTestContext(t *testing.T) *runtime.Context {
	t.Helper()
	eng, err := engine.NewEngine(engine.Options{})
	require.NoError(t, err)
	return runtime.NewContext(eng)
}

func TestAddAction(t *testing.T) {
	t.Run("tracks a file", func(t *testing.T) {
		ctx := newTestContext(t)
		require.NoError(t, actions.AddAction(ctx, actions.AddOptions{FileName: "a.txt"}))
		require.Equal(t, []string{"a.txt"}, ctx.Engine.TrackedFiles())
	})
}

func TestCommitAction(t *testing.T) {
	t.Run("records a commit on the current branch", func(t *testing.T) {
		ctx := newTestContext(t)
		require.NoError(t, actions.CommitAction(ctx, actions.CommitOptions{ModifiedFiles: []string{"a.txt"}}))

		commits, err := ctx.Engine.CommitsOf("main")
		require.NoError(t, err)
		require.Len(t, commits, 1)
	})

	t.Run("no files fails", func(t *testing.T) {
		ctx := newTestContext(t)
		err := actions.CommitAction(ctx, actions.CommitOptions{})
		require.ErrorIs(t, err, errors.ErrNoFilesModified)
	})
}

func TestCreateAndSwitchBranchActions(t *testing.T) {
	t.Run("create then switch", func(t *testing.T) {
		ctx := newTestContext(t)
		require.NoError(t, actions.CreateBranchAction(ctx, actions.CreateBranchOptions{BranchName: "feature"}))
		require.Equal(t, "main", ctx.Engine.CurrentBranch())

		require.NoError(t, actions.SwitchBranchAction(ctx, actions.SwitchBranchOptions{BranchName: "feature"}))
		require.Equal(t, "feature", ctx.Engine.CurrentBranch())
	})

	t.Run("duplicate create surfaces the engine error", func(t *testing.T) {
		ctx := newTestContext(t)
		require.NoError(t, actions.CreateBranchAction(ctx, actions.CreateBranchOptions{BranchName: "feature"}))
		err := actions.CreateBranchAction(ctx, actions.CreateBranchOptions{BranchName: "feature"})
		require.ErrorIs(t, err, errors.ErrBranchAlreadyExists)
	})
}

func TestMergeAction(t *testing.T) {
	t.Run("clean merge appends commits", func(t *testing.T) {
		ctx := newTestContext(t)
		require.NoError(t, ctx.Engine.CreateBranch("feature"))
		require.NoError(t, ctx.Engine.SwitchBranch("feature"))
		_, err := ctx.Engine.Commit([]string{"f.txt"})
		require.NoError(t, err)
		require.NoError(t, ctx.Engine.SwitchBranch("main"))

		require.NoError(t, actions.MergeAction(ctx, actions.MergeOptions{BranchName: "feature"}))

		commits, err := ctx.Engine.CommitsOf("main")
		require.NoError(t, err)
		require.Len(t, commits, 1)
	})

	t.Run("conflict is surfaced and state untouched", func(t *testing.T) {
		ctx := newTestContext(t)
		require.NoError(t, ctx.Engine.AddFile("shared.txt"))
		_, err := ctx.Engine.Commit([]string{"shared.txt"})
		require.NoError(t, err)
		require.NoError(t, ctx.Engine.CreateBranch("feature"))
		require.NoError(t, ctx.Engine.SwitchBranch("feature"))
		_, err = ctx.Engine.Commit([]string{"shared.txt"})
		require.NoError(t, err)
		require.NoError(t, ctx.Engine.SwitchBranch("main"))

		err = actions.MergeAction(ctx, actions.MergeOptions{BranchName: "feature"})
		require.ErrorIs(t, err, errors.ErrMergeConflict)

		commits, cErr := ctx.Engine.CommitsOf("main")
		require.NoError(t, cErr)
		require.Len(t, commits, 1)
	})

	t.Run("unknown branch fails", func(t *testing.T) {
		ctx := newTestContext(t)
		err := actions.MergeAction(ctx, actions.MergeOptions{BranchName: "ghost"})
		require.ErrorIs(t, err, errors.ErrBranchNotFound)
	})
}
