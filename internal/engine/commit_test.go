package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"codebird.dev/codebird/internal/engine"
)

func TestNewCommit(t *testing.T) {
	t.Run("captures fields and timestamp", func(t *testing.T) {
		before := time.Now()
		commit := engine.NewCommit("Modified files: a.txt", "Modified a.txt", "main")
		after := time.Now()

		require.Equal(t, "Modified files: a.txt", commit.Message)
		require.Equal(t, "Modified a.txt", commit.ChangeDescription)
		require.Equal(t, "main", commit.BranchName)
		require.False(t, commit.Timestamp.Before(before))
		require.False(t, commit.Timestamp.After(after))
	})

	t.Run("id is a 16 character hex string", func(t *testing.T) {
		commit := engine.NewCommit("msg", "changes", "main")
		require.Len(t, commit.ID, 16)
		require.Regexp(t, "^[0-9a-f]{16}$", commit.ID)
	})

	t.Run("construction never fails for unusual input", func(t *testing.T) {
		commit := engine.NewCommit("", "", "not-yet-existing")
		require.NotEmpty(t, commit.ID)
		require.Equal(t, "not-yet-existing", commit.BranchName)
	})
}
