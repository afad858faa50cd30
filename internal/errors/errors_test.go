package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushError(t *testing.T) {
	t.Parallel()

	t.Run("matches ErrPushFailed with errors.Is", func(t *testing.T) {
		err := NewPushError("origin", "main", "remote: Repository not found.", errors.New("exit status 128"))
		require.ErrorIs(t, err, ErrPushFailed)
	})

	t.Run("classifies cause from output", func(t *testing.T) {
		err := NewPushError("origin", "main", "remote: Repository not found.", errors.New("exit status 128"))
		require.Equal(t, PushCausePermission, err.Cause)
	})

	t.Run("unwraps to the underlying error", func(t *testing.T) {
		inner := errors.New("exit status 1")
		err := NewPushError("origin", "main", "", inner)
		require.ErrorIs(t, err, inner)
	})

	t.Run("message names remote and branch", func(t *testing.T) {
		err := NewPushError("upstream", "release", "", errors.New("exit status 1"))
		require.Contains(t, err.Error(), "release")
		require.Contains(t, err.Error(), "upstream")
	})
}

func TestGitCommandError(t *testing.T) {
	t.Parallel()

	t.Run("includes stderr in the message", func(t *testing.T) {
		err := NewGitCommandError("git", []string{"push"}, "", "fatal: not a repository", errors.New("exit status 128"))
		require.Contains(t, err.Error(), "fatal: not a repository")
	})

	t.Run("unwraps to the underlying error", func(t *testing.T) {
		inner := errors.New("exit status 128")
		err := NewGitCommandError("git", []string{"status"}, "", "", inner)
		require.ErrorIs(t, err, inner)
	})
}
