package actions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/runtime"
	"shipit.dev/shipit/internal/tui"
	"shipit.dev/shipit/internal/tui/style"
)

// stageAll stages every working-directory change, including untracked files
func stageAll(_ context.Context, run *runtime.Context, _ *State) StepResult {
	if run.DryRun {
		run.Splog.Info("[dry-run] would stage all changes")
		return Continue()
	}
	if err := git.StageAll(); err != nil {
		return Fail(err)
	}
	return Continue()
}

// summarize counts pending changes. A clean tree ends the run successfully
// without committing or pushing.
func summarize(_ context.Context, run *runtime.Context, st *State) StepResult {
	if run.DryRun && !git.IsRepository(run.WorkDir) {
		run.Splog.Info("[dry-run] repository does not exist yet; every file would be committed and pushed")
		return Stop()
	}

	changes, err := git.PendingChanges()
	if err != nil {
		return Fail(err)
	}
	st.Changes = changes

	if len(changes) == 0 {
		run.Splog.Info("Working tree clean, nothing to commit.")
		return Stop()
	}

	run.Splog.Info("%d file(s) staged for commit", len(changes))
	for _, c := range changes {
		run.Splog.Debug("  %s %s", c.Status, c.Path)
	}
	return Continue()
}

// commit prompts for a message, falling back to a timestamped default on
// empty input or when no terminal is available
func commit(ctx context.Context, run *runtime.Context, st *State) StepResult {
	if run.DryRun {
		run.Splog.Info("[dry-run] would commit %d file(s)", len(st.Changes))
		return Continue()
	}

	message := st.Message
	if message == "" {
		fallback := git.DefaultCommitMessage(time.Now())
		answer, err := run.Prompter.Input("Commit message:", fallback)
		switch {
		case errors.Is(err, tui.ErrInteractiveDisabled):
			message = fallback
		case err != nil:
			return Fail(err)
		default:
			message = answer
		}
	}

	if err := git.Commit(ctx, message); err != nil {
		return Fail(err)
	}

	sha, err := git.ShortSHA(ctx)
	if err != nil {
		return Fail(err)
	}
	st.CommitSHA = sha
	run.Splog.Info("Committed %s %s", style.Dim(sha), message)
	return Continue()
}

// resolveBranch ensures HEAD is the target branch. A fresh branch name
// force-renames the current branch so the new commit travels with it. When the
// target exists elsewhere, silently switching would strand the commit just
// made, so that case fails with guidance instead.
func resolveBranch(ctx context.Context, run *runtime.Context, st *State) StepResult {
	current, err := git.GetCurrentBranch(ctx)
	if err != nil {
		return Fail(err)
	}
	if current == st.Branch {
		return Continue()
	}

	if run.DryRun {
		run.Splog.Info("[dry-run] would move from branch %s to %s", current, st.Branch)
		return Continue()
	}

	exists, err := git.LocalBranchExists(ctx, st.Branch)
	if err != nil {
		return Fail(err)
	}
	if exists {
		return Fail(fmt.Errorf(
			"on branch %s but target branch %s already exists; check out %s and re-run to avoid stranding the new commit",
			current, st.Branch, st.Branch))
	}

	if err := git.RenameCurrentBranch(ctx, st.Branch); err != nil {
		return Fail(err)
	}
	run.Splog.Info("Renamed branch %s to %s", current, style.Branch(st.Branch))
	return Continue()
}
