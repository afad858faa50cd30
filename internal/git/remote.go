package git

import (
	"context"
	"fmt"
	"strings"

	shipiterrors "shipit.dev/shipit/internal/errors"
)

// GetRemoteURL returns the fetch URL of the named remote.
// Returns ErrRemoteNotFound when the remote is not configured.
func GetRemoteURL(ctx context.Context, name string) (string, error) {
	url, err := RunGitCommandWithContext(ctx, "remote", "get-url", name)
	if err != nil {
		return "", shipiterrors.ErrRemoteNotFound
	}
	return url, nil
}

// AddRemote configures a new remote
func AddRemote(ctx context.Context, name, url string) error {
	if _, err := RunGitCommandWithContext(ctx, "remote", "add", name, url); err != nil {
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}

// SetRemoteURL overwrites the URL of an existing remote
func SetRemoteURL(ctx context.Context, name, url string) error {
	if _, err := RunGitCommandWithContext(ctx, "remote", "set-url", name, url); err != nil {
		return fmt.Errorf("failed to set URL for remote %s: %w", name, err)
	}
	return nil
}

// RemoteBranchExists reports whether the branch exists on the remote.
// The error return distinguishes an unreachable remote from an absent branch.
func RemoteBranchExists(ctx context.Context, remote, branch string) (bool, error) {
	output, err := RunGitCommandWithContext(ctx, "ls-remote", "--heads", remote, "refs/heads/"+branch)
	if err != nil {
		return false, fmt.Errorf("failed to query remote %s: %w", remote, err)
	}
	return strings.TrimSpace(output) != "", nil
}

// Fetch fetches a single branch from the remote, updating its remote-tracking ref
func Fetch(ctx context.Context, remote, branch string) error {
	if _, err := RunGitCommandWithContext(ctx, "fetch", remote, branch); err != nil {
		return fmt.Errorf("failed to fetch %s/%s: %w", remote, branch, err)
	}
	return nil
}
