// Package tui provides the interactive terminal surfaces: the commit history
// browser and branch selection prompts.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"codebird.dev/codebird/internal/engine"
)

type logKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func newLogKeyMap() logKeyMap {
	return logKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous commit"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next commit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type logStyles struct {
	title    lipgloss.Style
	id       lipgloss.Style
	selected lipgloss.Style
	detail   lipgloss.Style
	help     lipgloss.Style
}

// LogBrowserModel is the bubbletea model for browsing commit history
type LogBrowserModel struct {
	branchName string
	commits    []engine.Commit
	cursor     int
	keys       logKeyMap
	styles     logStyles
	quitting   bool
}

// NewLogBrowserModel creates a browser over the given branch history.
// Commits are shown newest first.
func NewLogBrowserModel(branchName string, commits []engine.Commit) LogBrowserModel {
	reversed := make([]engine.Commit, len(commits))
	for i, commit := range commits {
		reversed[len(commits)-1-i] = commit
	}

	return LogBrowserModel{
		branchName: branchName,
		commits:    reversed,
		keys:       newLogKeyMap(),
		styles: logStyles{
			title:    lipgloss.NewStyle().Bold(true),
			id:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			selected: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
			detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			help:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
	}
}

func (m LogBrowserModel) Init() tea.Cmd {
	return nil
}

func (m LogBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.commits)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m LogBrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(fmt.Sprintf("Commit history for %s", m.branchName)))
	b.WriteString("\n\n")

	if len(m.commits) == 0 {
		b.WriteString(m.styles.detail.Render("  (no commits)"))
		b.WriteString("\n")
	}

	for i, commit := range m.commits {
		marker := "  "
		line := fmt.Sprintf("%s %s", m.styles.id.Render(commit.ID), commit.Message)
		if i == m.cursor {
			marker = "▸ "
			line = m.styles.selected.Render(line)
		}
		b.WriteString(marker + line + "\n")

		if i == m.cursor {
			b.WriteString(m.styles.detail.Render(fmt.Sprintf("    %s", commit.Timestamp.Format("2006-01-02 15:04:05"))))
			b.WriteString("\n")
			b.WriteString(m.styles.detail.Render(fmt.Sprintf("    %s", commit.ChangeDescription)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("↑/↓ navigate • q quit"))
	b.WriteString("\n")
	return b.String()
}

// RunLogBrowser runs the interactive commit history browser
func RunLogBrowser(branchName string, commits []engine.Commit) error {
	m := NewLogBrowserModel(branchName, commits)
	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	_, err := p.Run()
	return err
}
