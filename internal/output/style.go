package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	currentBranchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	branchStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	commitIDStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	conflictStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	successStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// ColorsEnabled reports whether styled output should be produced. Colors are
// off when stdout is not a terminal or the terminal reports no color support;
// mode "always"/"never" (from config) forces the decision.
func ColorsEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// ApplyColorMode configures lipgloss rendering for the configured color mode
func ApplyColorMode(mode string) {
	if !ColorsEnabled(mode) {
		lipgloss.SetColorProfile(termenv.Ascii)
	} else if mode == "always" {
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

// IsTTY returns true if we can use a TTY for interactive prompts
func IsTTY() bool {
	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return currentBranchStyle.Render(branchName + " (current)")
	}
	return branchStyle.Render(branchName)
}

// ColorCommitID colors a commit identifier
func ColorCommitID(id string) string {
	return commitIDStyle.Render(id)
}

// ColorConflict colors conflict report text
func ColorConflict(text string) string {
	return conflictStyle.Render(text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return dimStyle.Render(text)
}

// ColorSuccess colors success text
func ColorSuccess(text string) string {
	return successStyle.Render(text)
}
