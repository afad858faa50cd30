package git

import (
	"context"
	"fmt"
)

// GetCurrentBranch returns the name of the branch HEAD points at.
// Works on an unborn branch (fresh init before the first commit).
func GetCurrentBranch(ctx context.Context) (string, error) {
	name, err := RunGitCommandWithContext(ctx, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("not on a branch: %w", err)
	}
	return name, nil
}

// LocalBranchExists reports whether a local branch with the given name exists
func LocalBranchExists(ctx context.Context, name string) (bool, error) {
	_, err := RunGitCommandWithContext(ctx, "show-ref", "--verify", "--quiet", "refs/heads/"+name)
	if err != nil {
		// show-ref exits 1 when the ref is absent
		return false, nil
	}
	return true, nil
}

// RenameCurrentBranch force-renames the current branch, carrying its history
func RenameCurrentBranch(ctx context.Context, name string) error {
	if _, err := RunGitCommandWithContext(ctx, "branch", "-M", name); err != nil {
		return fmt.Errorf("failed to rename branch to %s: %w", name, err)
	}
	return nil
}
