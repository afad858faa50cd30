package git

import (
	"context"

	shipiterrors "shipit.dev/shipit/internal/errors"
)

// PushBranch pushes a branch to the remote, setting the upstream.
// forceWithLease uses --force-with-lease, which refuses to clobber remote
// commits that were never fetched locally. Plain --force is never used.
func PushBranch(ctx context.Context, remote, branch string, forceWithLease bool) error {
	args := []string{"push", "-u", remote}
	if forceWithLease {
		args = append(args, "--force-with-lease")
	}
	args = append(args, branch)

	output, err := defaultRunner.RunCombined(ctx, args...)
	if err != nil {
		return shipiterrors.NewPushError(remote, branch, output, err)
	}
	return nil
}

// PullFastForward fast-forwards the current branch from the remote.
// Fails rather than merging when the branches diverged.
func PullFastForward(ctx context.Context, remote, branch string) error {
	if _, err := RunGitCommandWithContext(ctx, "pull", "--ff-only", remote, branch); err != nil {
		return err
	}
	return nil
}
