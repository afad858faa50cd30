package git

import (
	"context"
	"fmt"
)

// GetUserName returns the configured git user name, or an empty string when unset.
// Reads the full config cascade so a global identity is honored.
func GetUserName(ctx context.Context) string {
	name, err := RunGitCommandWithContext(ctx, "config", "user.name")
	if err != nil {
		// git config exits non-zero for an unset key
		return ""
	}
	return name
}

// GetUserEmail returns the configured git user email, or an empty string when unset
func GetUserEmail(ctx context.Context) string {
	email, err := RunGitCommandWithContext(ctx, "config", "user.email")
	if err != nil {
		return ""
	}
	return email
}

// SetUserName sets user.name in the repository-local config
func SetUserName(ctx context.Context, name string) error {
	if _, err := RunGitCommandWithContext(ctx, "config", "user.name", name); err != nil {
		return fmt.Errorf("failed to set user.name: %w", err)
	}
	return nil
}

// SetUserEmail sets user.email in the repository-local config
func SetUserEmail(ctx context.Context, email string) error {
	if _, err := RunGitCommandWithContext(ctx, "config", "user.email", email); err != nil {
		return fmt.Errorf("failed to set user.email: %w", err)
	}
	return nil
}
