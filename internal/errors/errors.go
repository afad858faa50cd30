// Package errors provides sentinel errors and custom error types for the shipit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrGitNotFound indicates that the git executable is not available on PATH
	ErrGitNotFound = errors.New("git executable not found")

	// ErrDirectoryRejected indicates the operator declined to sync an
	// unrecognized project directory
	ErrDirectoryRejected = errors.New("directory check rejected")

	// ErrNothingToCommit indicates that staging produced no pending changes
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrDivergenceUnresolved indicates local and remote branches diverged and
	// the operator did not confirm a resolution
	ErrDivergenceUnresolved = errors.New("divergence unresolved")

	// ErrPushFailed indicates that the push to the remote failed
	ErrPushFailed = errors.New("push failed")

	// ErrRemoteNotFound indicates that the named remote is not configured
	ErrRemoteNotFound = errors.New("remote not found")

	// ErrRemoteURLRequired indicates that no remote URL is configured and none
	// could be collected interactively
	ErrRemoteURLRequired = errors.New("remote URL required")
)

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// PushCause classifies the likely reason a push was rejected
type PushCause int

const (
	// PushCauseUnknown is the fallback when the failure output matched no known pattern
	PushCauseUnknown PushCause = iota
	// PushCauseAuth indicates credential resolution or authentication failed
	PushCauseAuth
	// PushCausePermission indicates the credentials lack write access or the repository does not exist
	PushCausePermission
	// PushCauseConnectivity indicates the remote host could not be reached
	PushCauseConnectivity
	// PushCauseStale indicates a force-with-lease push was rejected because the remote moved
	PushCauseStale
)

// Hint returns operator guidance for the cause
func (c PushCause) Hint() string {
	switch c {
	case PushCauseAuth:
		return "authentication failed: check your credentials (GITHUB_TOKEN, credential helper, or SSH key)"
	case PushCausePermission:
		return "permission denied or repository not found: check the remote URL and your write access"
	case PushCauseConnectivity:
		return "could not reach the remote host: check your network connection and the remote URL"
	case PushCauseStale:
		return "the remote branch changed since it was last fetched: re-run to fetch and reconcile"
	default:
		return "push rejected for an unrecognized reason; inspect the git output above"
	}
}

// PushError represents a failed push with a classified cause
type PushError struct {
	Remote string
	Branch string
	Cause  PushCause
	Output string
	Err    error
}

func (e *PushError) Error() string {
	return fmt.Sprintf("failed to push %s to %s: %s", e.Branch, e.Remote, e.Cause.Hint())
}

// Is returns true if the target error is ErrPushFailed
func (e *PushError) Is(target error) bool {
	return target == ErrPushFailed
}

func (e *PushError) Unwrap() error {
	return e.Err
}

// NewPushError creates a new PushError, classifying the cause from the git output
func NewPushError(remote, branch, output string, err error) *PushError {
	return &PushError{
		Remote: remote,
		Branch: branch,
		Cause:  ClassifyPushOutput(output),
		Output: output,
		Err:    err,
	}
}
