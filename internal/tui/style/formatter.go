// Package style defines the lipgloss styles used for console output.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	remoteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// Success renders text in the success color
func Success(text string) string {
	return successStyle.Render(text)
}

// Branch renders a branch name
func Branch(name string) string {
	return branchStyle.Render(name)
}

// Remote renders a remote name or URL
func Remote(name string) string {
	return remoteStyle.Render(name)
}

// Dim renders secondary text
func Dim(text string) string {
	return dimStyle.Render(text)
}
