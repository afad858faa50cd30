package actions

import (
	"context"
	"errors"
	"fmt"

	shipiterrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/github"
	"shipit.dev/shipit/internal/runtime"
	"shipit.dev/shipit/internal/tui/style"
)

// classifyDivergence fetches the remote branch and classifies the local
// branch against it. When the remote repository or branch does not exist yet
// the check is skipped entirely and the push creates the branch.
func classifyDivergence(ctx context.Context, run *runtime.Context, st *State) StepResult {
	exists, err := git.RemoteBranchExists(ctx, st.Remote, st.Branch)
	if err != nil {
		// Unreachable remote: let the push surface the real failure
		run.Splog.Debug("could not query remote %s: %v", st.Remote, err)
		return Continue()
	}
	if !exists {
		run.Splog.Debug("branch %s does not exist on %s yet", st.Branch, st.Remote)
		return Continue()
	}
	st.RemoteBranchExists = true

	if err := git.Fetch(ctx, st.Remote, st.Branch); err != nil {
		run.Splog.Warn("fetch from %s failed, skipping divergence check: %v", st.Remote, err)
		return Continue()
	}

	divergence, err := git.ClassifyDivergence(run.WorkDir, st.Remote, st.Branch)
	if err != nil {
		return Fail(err)
	}
	run.Splog.Debug("branch %s is %s", st.Branch, divergence)

	switch divergence {
	case git.UpToDate, git.NeedsPush:
		return Continue()

	case git.NeedsPull:
		run.Splog.Info("Local branch is behind %s/%s, fast-forwarding...", st.Remote, st.Branch)
		if run.DryRun {
			run.Splog.Info("[dry-run] would pull --ff-only from %s", st.Remote)
			return Continue()
		}
		if err := git.PullFastForward(ctx, st.Remote, st.Branch); err != nil {
			return Fail(fmt.Errorf("fast-forward pull failed: %w", err))
		}
		return Continue()
	}

	return resolveDiverged(run, st)
}

// resolveDiverged handles the diverged case. Force-pushing is a distinct,
// separately confirmed operation, never folded into the normal push prompt.
func resolveDiverged(run *runtime.Context, st *State) StepResult {
	run.Splog.Warn("local and remote %s have diverged since their common ancestor", style.Branch(st.Branch))

	choice, err := run.Prompter.Select(
		fmt.Sprintf("How should the divergence with %s/%s be resolved?", st.Remote, st.Branch),
		[]string{
			"Abort and reconcile manually (recommended)",
			"Force-push local history, overwriting the remote",
		})
	if err != nil || choice == 0 {
		run.Splog.Info("Aborted. Reconcile with: git pull --rebase %s %s", st.Remote, st.Branch)
		return Fail(shipiterrors.ErrDivergenceUnresolved)
	}

	ok, err := run.Prompter.Confirm(
		fmt.Sprintf("Really overwrite %s/%s with your local history? Remote commits will be lost.", st.Remote, st.Branch),
		false)
	if err != nil || !ok {
		run.Splog.Info("Aborted. Reconcile with: git pull --rebase %s %s", st.Remote, st.Branch)
		return Fail(shipiterrors.ErrDivergenceUnresolved)
	}

	st.ForceWithLease = true
	return Continue()
}

// push asks for final confirmation and pushes. Declining is a graceful stop;
// a failed push reports its classified cause and fails the run, leaving local
// commits intact.
func push(ctx context.Context, run *runtime.Context, st *State) StepResult {
	if run.DryRun {
		run.Splog.Info("[dry-run] would push %s to %s", st.Branch, st.Remote)
		return Continue()
	}

	verb := "Push"
	if st.ForceWithLease {
		verb = "Force-push"
	}
	ok, err := run.Prompter.Confirm(fmt.Sprintf("%s %s to %s?", verb, st.Branch, st.Remote), true)
	if err != nil || !ok {
		run.Splog.Info("Push skipped; your commit is safe locally.")
		return Stop()
	}

	ahead, err := git.CountCommitsAhead(ctx, st.Remote+"/"+st.Branch)
	if err != nil {
		ahead = 0
	}

	if err := git.PushBranch(ctx, st.Remote, st.Branch, st.ForceWithLease); err != nil {
		reportPushFailure(ctx, run, st, err)
		return Fail(err)
	}

	if st.RemoteBranchExists {
		run.Splog.Info("%s Pushed %d commit(s) to %s/%s",
			style.Success("✔"), ahead, style.Remote(st.Remote), style.Branch(st.Branch))
	} else {
		run.Splog.Info("%s Created %s/%s with %d commit(s)",
			style.Success("✔"), style.Remote(st.Remote), style.Branch(st.Branch), ahead)
	}
	return Continue()
}

// reportPushFailure prints the classified hint and, when a GitHub token is
// available, checks whether the repository exists at all
func reportPushFailure(ctx context.Context, run *runtime.Context, st *State, err error) {
	var pushErr *shipiterrors.PushError
	if !errors.As(err, &pushErr) {
		run.Splog.Error("push failed: %v", err)
		return
	}

	if pushErr.Output != "" {
		run.Splog.Debug("%s", pushErr.Output)
	}
	run.Splog.Error("%s", pushErr.Cause.Hint())

	// Auth and permission failures often really mean "repo does not exist";
	// the API can disambiguate when credentials are available.
	if pushErr.Cause != shipiterrors.PushCauseAuth && pushErr.Cause != shipiterrors.PushCausePermission {
		return
	}
	client, cerr := github.NewClient(ctx, st.RemoteURL)
	if cerr != nil {
		return
	}
	exists, cerr := client.RepoExists(ctx)
	if cerr != nil {
		return
	}
	owner, repo := client.OwnerRepo()
	if !exists {
		run.Splog.Tip("%s/%s does not exist (or your token cannot see it); create it on GitHub first", owner, repo)
	} else {
		run.Splog.Tip("%s/%s exists; check that your token has write access", owner, repo)
	}
}

// openBrowserStep opens the repository page after a successful push.
// Strictly best-effort: any failure is ignored.
func openBrowserStep(_ context.Context, run *runtime.Context, st *State) StepResult {
	if !run.Config.Browser.Open || run.DryRun {
		return Continue()
	}

	info, err := github.ParseGitHubRemoteURL(st.RemoteURL)
	if err != nil {
		run.Splog.Debug("remote is not a GitHub URL, skipping browser open")
		return Continue()
	}

	if err := openBrowser(info.WebURL()); err != nil {
		run.Splog.Debug("failed to open browser: %v", err)
	}
	return Continue()
}
