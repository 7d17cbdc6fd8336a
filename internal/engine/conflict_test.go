package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"codebird.dev/codebird/internal/engine"
)

func TestHasConflict(t *testing.T) {
	t.Run("detects shared change description", func(t *testing.T) {
		require.True(t, engine.HasConflict([]string{"x", "y"}, []string{"y", "z"}))
	})

	t.Run("no conflict for disjoint change sets", func(t *testing.T) {
		require.False(t, engine.HasConflict([]string{"x"}, []string{"y"}))
	})

	t.Run("empty change set never conflicts", func(t *testing.T) {
		require.False(t, engine.HasConflict([]string{}, []string{"y", "z"}))
		require.False(t, engine.HasConflict(nil, []string{"y"}))
		require.False(t, engine.HasConflict([]string{"x"}, nil))
		require.False(t, engine.HasConflict(nil, nil))
	})

	t.Run("comparison is whole-string, not per-file", func(t *testing.T) {
		// Overlapping file names inside differing descriptions do not conflict.
		require.False(t, engine.HasConflict(
			[]string{"Modified a.txt, b.txt"},
			[]string{"Modified a.txt"},
		))
		require.True(t, engine.HasConflict(
			[]string{"Modified a.txt, b.txt"},
			[]string{"Modified a.txt, b.txt"},
		))
	})

	t.Run("symmetric in detection", func(t *testing.T) {
		a := []string{"Modified a.txt"}
		b := []string{"Modified a.txt", "Modified b.txt"}
		require.True(t, engine.HasConflict(a, b))
		require.True(t, engine.HasConflict(b, a))
	})
}
