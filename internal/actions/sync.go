// Package actions implements the repository sync pipeline: a fixed, linear
// sequence of guarded steps that stage, commit, and push the working
// directory to a configured remote.
package actions

import (
	"context"

	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/runtime"
)

// Options controls a sync run
type Options struct {
	// Remote and Branch override the configured values when non-empty
	Remote string
	Branch string

	// Message is a pre-supplied commit message, skipping the prompt
	Message string

	// DryRun reports what would happen without mutating anything
	DryRun bool
}

// State is threaded through the pipeline steps
type State struct {
	Remote    string
	Branch    string
	RemoteURL string

	// Changes are the staged paths counted by the status summary
	Changes []git.PendingChange

	// Message is a pre-supplied commit message; empty means prompt
	Message string

	// CommitSHA is the short SHA of the commit created by this run
	CommitSHA string

	// RemoteBranchExists is false when the push will create the branch
	RemoteBranchExists bool

	// ForceWithLease is set only after the operator explicitly confirmed
	// overwriting a diverged remote
	ForceWithLease bool
}

type stepStatus int

const (
	stepContinue stepStatus = iota
	stepStop
	stepFail
)

// StepResult is the outcome of one pipeline step
type StepResult struct {
	status stepStatus
	err    error
}

// Continue proceeds to the next step
func Continue() StepResult {
	return StepResult{status: stepContinue}
}

// Stop ends the run successfully without executing further steps
func Stop() StepResult {
	return StepResult{status: stepStop}
}

// Fail aborts the run with an error
func Fail(err error) StepResult {
	return StepResult{status: stepFail, err: err}
}

// Step is one named stage of the pipeline
type Step struct {
	Name string
	Run  func(ctx context.Context, run *runtime.Context, st *State) StepResult
}

// pipeline is the fixed step sequence. Order matters: every step may rely on
// the preconditions established by the ones before it.
func pipeline() []Step {
	return []Step{
		{Name: "check-tool", Run: checkTool},
		{Name: "check-project-dir", Run: checkProjectDir},
		{Name: "ensure-repository", Run: ensureRepository},
		{Name: "ensure-identity", Run: ensureIdentity},
		{Name: "write-ignore-file", Run: writeIgnoreFile},
		{Name: "ensure-remote", Run: ensureRemote},
		{Name: "stage-all", Run: stageAll},
		{Name: "summarize", Run: summarize},
		{Name: "commit", Run: commit},
		{Name: "resolve-branch", Run: resolveBranch},
		{Name: "classify-divergence", Run: classifyDivergence},
		{Name: "push", Run: push},
		{Name: "open-browser", Run: openBrowserStep},
	}
}

// Action runs the full sync pipeline. A nil return means success or a
// graceful, operator-declined stop; a non-nil return maps to exit status 1.
func Action(ctx context.Context, run *runtime.Context, opts Options) error {
	git.SetWorkingDir(run.WorkDir)
	run.DryRun = opts.DryRun

	st := &State{
		Remote: run.Config.Remote.Name,
		Branch: run.Config.Branch,
	}
	if opts.Remote != "" {
		st.Remote = opts.Remote
	}
	if opts.Branch != "" {
		st.Branch = opts.Branch
	}
	st.Message = opts.Message

	for _, step := range pipeline() {
		run.Splog.Debug("step %s", step.Name)
		result := step.Run(ctx, run, st)
		switch result.status {
		case stepStop:
			return nil
		case stepFail:
			return result.err
		}
	}
	return nil
}
