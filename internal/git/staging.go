package git

import (
	"fmt"
	"strings"
)

// StageAll stages all changes including untracked files
func StageAll() error {
	_, err := RunGitCommand("add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// HasStagedChanges checks if there are staged changes
func HasStagedChanges() (bool, error) {
	output, err := RunGitCommand("diff", "--cached", "--shortstat")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// PendingChange describes one staged path from git status
type PendingChange struct {
	Status string
	Path   string
}

// PendingChanges lists staged paths from porcelain status output.
// On an unborn branch every staged file shows up here, which is what the
// first-commit flow needs.
func PendingChanges() ([]PendingChange, error) {
	lines, err := RunGitCommandLines("status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to read status: %w", err)
	}

	var changes []PendingChange
	for _, line := range lines {
		if len(line) < 3 {
			continue
		}
		changes = append(changes, PendingChange{
			Status: strings.TrimSpace(line[:2]),
			Path:   strings.TrimSpace(line[3:]),
		})
	}
	return changes, nil
}
