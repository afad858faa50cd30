package git

import (
	"context"
	"fmt"
	"time"
)

// Commit creates a commit with the given message
func Commit(ctx context.Context, message string) error {
	if _, err := RunGitCommandWithContext(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// ShortSHA returns the abbreviated SHA of the current HEAD commit
func ShortSHA(ctx context.Context) (string, error) {
	sha, err := RunGitCommandWithContext(ctx, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return sha, nil
}

// CountCommitsAhead returns how many commits HEAD is ahead of the given ref.
// Returns the total commit count when the ref does not resolve (new branch).
func CountCommitsAhead(ctx context.Context, ref string) (int, error) {
	output, err := RunGitCommandWithContext(ctx, "rev-list", "--count", ref+"..HEAD")
	if err != nil {
		output, err = RunGitCommandWithContext(ctx, "rev-list", "--count", "HEAD")
		if err != nil {
			return 0, fmt.Errorf("failed to count commits: %w", err)
		}
	}
	var n int
	if _, err := fmt.Sscanf(output, "%d", &n); err != nil {
		return 0, fmt.Errorf("unexpected rev-list output %q: %w", output, err)
	}
	return n, nil
}

// DefaultCommitMessage returns the timestamped fallback message used when the
// operator submits an empty commit message
func DefaultCommitMessage(now time.Time) string {
	return "Sync " + now.Format("2006-01-02 15:04:05")
}
