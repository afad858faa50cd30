// Package prompt abstracts the interactive confirmation provider so the sync
// pipeline can run against a terminal, a scripted test double, or an
// assume-yes policy.
package prompt

import (
	"github.com/AlecAivazis/survey/v2"

	"shipit.dev/shipit/internal/tui"
)

// Prompter collects operator decisions
type Prompter interface {
	// Confirm asks a yes/no question, returning def when the operator
	// just presses enter
	Confirm(message string, def bool) (bool, error)
	// Input asks for a line of text, returning def on empty input
	Input(message, def string) (string, error)
	// Select asks the operator to pick one of the options, returning its index
	Select(message string, options []string) (int, error)
}

// TerminalPrompter asks on the controlling terminal
type TerminalPrompter struct{}

// NewTerminalPrompter creates a TerminalPrompter
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// Confirm asks a yes/no question
func (p *TerminalPrompter) Confirm(message string, def bool) (bool, error) {
	if !tui.IsInteractive() {
		return false, tui.ErrInteractiveDisabled
	}

	answer := def
	q := &survey.Confirm{
		Message: message,
		Default: def,
	}
	if err := survey.AskOne(q, &answer); err != nil {
		return false, err
	}
	return answer, nil
}

// Input asks for a line of text
func (p *TerminalPrompter) Input(message, def string) (string, error) {
	value, err := tui.PromptTextInput(message, def)
	if err != nil {
		return "", err
	}
	if value == "" {
		return def, nil
	}
	return value, nil
}

// Select asks the operator to pick one of the options
func (p *TerminalPrompter) Select(message string, options []string) (int, error) {
	return tui.PromptSelect(message, options)
}
