package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"codebird.dev/codebird/internal/engine"
	"codebird.dev/codebird/internal/tui"
)

func sampleCommits() []engine.Commit {
	return []engine.Commit{
		engine.NewCommit("Modified files: a.txt", "Modified a.txt", "main"),
		engine.NewCommit("Modified files: b.txt", "Modified b.txt", "main"),
	}
}

func TestLogBrowserModel(t *testing.T) {
	t.Run("shows newest commit first", func(t *testing.T) {
		m := tui.NewLogBrowserModel("main", sampleCommits())
		view := m.View()
		require.Contains(t, view, "Commit history for main")

		// The selected (first) entry is the newest commit, with details.
		require.Contains(t, view, "Modified b.txt")
	})

	t.Run("cursor moves with down key", func(t *testing.T) {
		m := tui.NewLogBrowserModel("main", sampleCommits())

		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		view := updated.View()
		require.Contains(t, view, "Modified a.txt")
	})

	t.Run("quit key ends the program", func(t *testing.T) {
		m := tui.NewLogBrowserModel("main", sampleCommits())

		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		require.NotNil(t, cmd)
		require.Empty(t, updated.View())
	})

	t.Run("empty history renders placeholder", func(t *testing.T) {
		m := tui.NewLogBrowserModel("main", nil)
		require.Contains(t, m.View(), "(no commits)")
	})
}
