package prompt

import "fmt"

// AssumeYesPrompter answers every question with its default. Used for the
// --yes flag and non-interactive runs.
type AssumeYesPrompter struct{}

// Confirm returns the default answer
func (p *AssumeYesPrompter) Confirm(_ string, def bool) (bool, error) {
	return def, nil
}

// Input returns the default value
func (p *AssumeYesPrompter) Input(_ string, def string) (string, error) {
	return def, nil
}

// Select returns the first option
func (p *AssumeYesPrompter) Select(_ string, _ []string) (int, error) {
	return 0, nil
}

// ScriptedPrompter replays queued answers. Tests use it to drive the pipeline
// without a terminal; running out of answers is a test bug and returns an error.
type ScriptedPrompter struct {
	Confirms []bool
	Inputs   []string
	Selects  []int

	// Asked records every message shown, in order
	Asked []string
}

// Confirm pops the next queued yes/no answer
func (p *ScriptedPrompter) Confirm(message string, _ bool) (bool, error) {
	p.Asked = append(p.Asked, message)
	if len(p.Confirms) == 0 {
		return false, fmt.Errorf("unexpected confirm prompt: %s", message)
	}
	answer := p.Confirms[0]
	p.Confirms = p.Confirms[1:]
	return answer, nil
}

// Input pops the next queued text answer, falling back to the default when
// the queued answer is empty
func (p *ScriptedPrompter) Input(message, def string) (string, error) {
	p.Asked = append(p.Asked, message)
	if len(p.Inputs) == 0 {
		return "", fmt.Errorf("unexpected input prompt: %s", message)
	}
	answer := p.Inputs[0]
	p.Inputs = p.Inputs[1:]
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Select pops the next queued selection
func (p *ScriptedPrompter) Select(message string, options []string) (int, error) {
	p.Asked = append(p.Asked, message)
	if len(p.Selects) == 0 {
		return 0, fmt.Errorf("unexpected select prompt: %s", message)
	}
	choice := p.Selects[0]
	p.Selects = p.Selects[1:]
	if choice < 0 || choice >= len(options) {
		return 0, fmt.Errorf("scripted selection %d out of range for %d options", choice, len(options))
	}
	return choice, nil
}
