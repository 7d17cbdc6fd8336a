package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"codebird.dev/codebird/internal/engine"
	"codebird.dev/codebird/internal/errors"
)

func TestFileStateStore(t *testing.T) {
	t.Run("missing file yields the default state", func(t *testing.T) {
		store := engine.NewFileStateStore(filepath.Join(t.TempDir(), "state.json"))
		state, err := store.Load()
		require.NoError(t, err)
		require.Equal(t, "main", state.CurrentBranch)
		require.Contains(t, state.Branches, "main")
	})

	t.Run("save then load round trips", func(t *testing.T) {
		store := engine.NewFileStateStore(filepath.Join(t.TempDir(), "state.json"))

		state := engine.DefaultStateFor("trunk")
		state.TrackedFiles = []string{"a.txt"}
		require.NoError(t, store.Save(state))

		loaded, err := store.Load()
		require.NoError(t, err)
		require.Equal(t, "trunk", loaded.CurrentBranch)
		require.Equal(t, []string{"a.txt"}, loaded.TrackedFiles)
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".codebird", "state.json")
		store := engine.NewFileStateStore(path)
		require.NoError(t, store.Save(engine.DefaultState()))
		_, err := os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("corrupt file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

		_, err := engine.NewFileStateStore(path).Load()
		require.Error(t, err)
	})
}

func TestEnginePersistence(t *testing.T) {
	t.Run("every mutation survives a fresh engine", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.json")

		eng, err := engine.NewEngine(engine.Options{StateStore: engine.NewFileStateStore(path)})
		require.NoError(t, err)

		require.NoError(t, eng.AddFile("a.txt"))
		require.NoError(t, eng.CreateBranch("feature"))
		require.NoError(t, eng.SwitchBranch("feature"))
		_, err = eng.Commit([]string{"a.txt"})
		require.NoError(t, err)

		reloaded, err := engine.NewEngine(engine.Options{StateStore: engine.NewFileStateStore(path)})
		require.NoError(t, err)

		require.Equal(t, "feature", reloaded.CurrentBranch())
		require.Equal(t, []string{"main", "feature"}, reloaded.AllBranchNames())
		require.Equal(t, []string{"a.txt"}, reloaded.TrackedFiles())

		commits, err := reloaded.CommitsOf("feature")
		require.NoError(t, err)
		require.Len(t, commits, 1)
		require.Equal(t, "Modified a.txt", commits[0].ChangeDescription)
		require.NotEmpty(t, commits[0].ID)
	})

	t.Run("failed operations write nothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.json")

		eng, err := engine.NewEngine(engine.Options{StateStore: engine.NewFileStateStore(path)})
		require.NoError(t, err)

		_, err = eng.Commit(nil)
		require.ErrorIs(t, err, errors.ErrNoFilesModified)

		_, statErr := os.Stat(path)
		require.True(t, os.IsNotExist(statErr))
	})

	t.Run("state naming an absent current branch is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.json")
		store := engine.NewFileStateStore(path)

		state := engine.DefaultState()
		state.CurrentBranch = "ghost"
		require.NoError(t, store.Save(state))

		_, err := engine.NewEngine(engine.Options{StateStore: store})
		require.ErrorIs(t, err, errors.ErrBranchNotFound)
	})
}
