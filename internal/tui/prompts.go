package tui

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"codebird.dev/codebird/internal/utils"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via CODEBIRD_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (CODEBIRD_NO_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive mode is disabled for testing
func checkInteractiveAllowed() error {
	if os.Getenv("CODEBIRD_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// SelectBranch prompts the user to pick one of the given branches.
// The current branch is preselected.
func SelectBranch(branchNames []string, currentBranch string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	prompt := &survey.Select{
		Message: "Switch to branch",
		Options: branchNames,
	}
	if utils.ContainsString(branchNames, currentBranch) {
		prompt.Default = currentBranch
	}

	var selected string
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", fmt.Errorf("canceled")
	}
	return selected, nil
}
