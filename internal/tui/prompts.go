package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ErrInteractiveDisabled is returned when interactive prompts are unavailable,
// either because stdin is not a terminal or SHIPIT_NO_INTERACTIVE is set
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled")

// checkInteractiveAllowed returns an error if interactive prompts cannot be shown
func checkInteractiveAllowed() error {
	if os.Getenv("SHIPIT_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return ErrInteractiveDisabled
	}
	return nil
}

// IsInteractive reports whether prompts can be shown
func IsInteractive() bool {
	return checkInteractiveAllowed() == nil
}

// textInputModel is a simple text input prompt model
type textInputModel struct {
	textInput textinput.Model
	prompt    string
	done      bool
	err       error
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = fmt.Errorf("canceled")
			m.done = true
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() string {
	if m.done {
		return ""
	}
	styleObj := lipgloss.NewStyle().Margin(1, 0)
	return styleObj.Render(fmt.Sprintf("%s\n%s\n\n(Press Enter to submit, Ctrl+C to cancel)", m.prompt, m.textInput.View()))
}

// PromptTextInput prompts the user for text input
func PromptTextInput(prompt, defaultValue string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	ti := textinput.New()
	ti.SetValue(defaultValue)
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 80

	m := textInputModel{
		textInput: ti,
		prompt:    prompt,
	}

	p := tea.NewProgram(m)
	model, err := p.Run()
	if err != nil {
		return "", err
	}

	if m, ok := model.(textInputModel); ok {
		if m.err != nil {
			return "", m.err
		}
		return m.textInput.Value(), nil
	}

	return "", fmt.Errorf("unexpected model type")
}

// selectModel is a selection prompt model
type selectModel struct {
	message  string
	choices  []string
	cursor   int
	selected int
	done     bool
	err      error
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.selected = m.cursor
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = fmt.Errorf("canceled")
			m.done = true
			return m, tea.Quit
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			} else {
				m.cursor = len(m.choices) - 1
			}
		case tea.KeyDown:
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			} else {
				m.cursor = 0
			}
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.message + "\n\n")
	for i, choice := range m.choices {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursor, choice))
	}
	b.WriteString("\n(Press Enter to select, Ctrl+C to cancel)")

	styleObj := lipgloss.NewStyle().Margin(1, 0)
	return styleObj.Render(b.String())
}

// PromptSelect prompts the user to pick one of the choices, returning its index
func PromptSelect(message string, choices []string) (int, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return 0, err
	}
	if len(choices) == 0 {
		return 0, fmt.Errorf("no choices to select from")
	}

	m := selectModel{
		message: message,
		choices: choices,
	}

	p := tea.NewProgram(m)
	model, err := p.Run()
	if err != nil {
		return 0, err
	}

	if m, ok := model.(selectModel); ok {
		if m.err != nil {
			return 0, m.err
		}
		return m.selected, nil
	}

	return 0, fmt.Errorf("unexpected model type")
}
