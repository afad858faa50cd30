package actions

import (
	"context"
	"errors"
	"fmt"

	"shipit.dev/shipit/internal/config"
	shipiterrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/runtime"
	"shipit.dev/shipit/internal/tui/style"
)

// ensureRepository creates a local repository only when none exists
func ensureRepository(ctx context.Context, run *runtime.Context, st *State) StepResult {
	if git.IsRepository(run.WorkDir) {
		run.Splog.Debug("repository already initialized")
		enableRepoLog(run)
		return Continue()
	}

	if run.DryRun {
		run.Splog.Info("[dry-run] would initialize a repository on branch %s", st.Branch)
		return Continue()
	}

	if err := git.InitRepository(ctx, run.WorkDir, st.Branch); err != nil {
		return Fail(err)
	}
	run.Splog.Info("Initialized empty repository on branch %s", style.Branch(st.Branch))
	enableRepoLog(run)
	return Continue()
}

// enableRepoLog routes the file log to the repository root. WorkDir may be a
// subdirectory of an existing repository and must never grow a .git of its own.
func enableRepoLog(run *runtime.Context) {
	root, err := git.GetRepoRoot()
	if err != nil {
		return
	}
	run.EnableFileLog(root)
}

// ensureIdentity prompts for user.name and user.email only when unset.
// A pre-existing identity is never touched.
func ensureIdentity(ctx context.Context, run *runtime.Context, _ *State) StepResult {
	name := git.GetUserName(ctx)
	email := git.GetUserEmail(ctx)
	if name != "" && email != "" {
		run.Splog.Debug("identity already configured: %s <%s>", name, email)
		return Continue()
	}

	if run.DryRun {
		run.Splog.Info("[dry-run] would configure the missing git identity")
		return Continue()
	}

	if name == "" {
		answer, err := run.Prompter.Input("Git user.name is not set. Your name:", "")
		if err != nil {
			return Fail(fmt.Errorf("git identity is not configured: %w", err))
		}
		if answer == "" {
			return Fail(fmt.Errorf("git identity is not configured; set user.name with git config"))
		}
		if err := git.SetUserName(ctx, answer); err != nil {
			return Fail(err)
		}
	}

	if email == "" {
		answer, err := run.Prompter.Input("Git user.email is not set. Your email:", "")
		if err != nil {
			return Fail(fmt.Errorf("git identity is not configured: %w", err))
		}
		if answer == "" {
			return Fail(fmt.Errorf("git identity is not configured; set user.email with git config"))
		}
		if err := git.SetUserEmail(ctx, answer); err != nil {
			return Fail(err)
		}
	}

	return Continue()
}

// writeIgnoreFile overwrites .gitignore with the configured template.
// The file is fully replaced, never merged with existing content.
func writeIgnoreFile(_ context.Context, run *runtime.Context, _ *State) StepResult {
	if !run.Config.Ignore.Write {
		run.Splog.Debug("ignore file writing disabled")
		return Continue()
	}

	patterns := run.Config.Ignore.Patterns
	if len(patterns) == 0 {
		patterns = config.DefaultIgnorePatterns
	}

	if run.DryRun {
		run.Splog.Info("[dry-run] would overwrite %s with %d patterns", config.IgnoreFileName, len(patterns))
		return Continue()
	}

	if err := config.WriteIgnoreFile(run.WorkDir, patterns); err != nil {
		return Fail(fmt.Errorf("failed to write %s: %w", config.IgnoreFileName, err))
	}
	run.Splog.Debug("wrote %s", config.IgnoreFileName)
	return Continue()
}

// ensureRemote adds the configured remote when absent. When the remote exists
// with a different URL, overwriting requires confirmation; declining keeps the
// remote untouched and ends the run gracefully.
func ensureRemote(ctx context.Context, run *runtime.Context, st *State) StepResult {
	existing, err := git.GetRemoteURL(ctx, st.Remote)
	switch {
	case errors.Is(err, shipiterrors.ErrRemoteNotFound):
		url := run.Config.Remote.URL
		if url == "" {
			url, err = run.Prompter.Input(fmt.Sprintf("URL for remote %s:", st.Remote), "")
			if err != nil || url == "" {
				run.Splog.Error("no URL configured for remote %s; set remote.url in %s.toml", st.Remote, config.FileName)
				return Fail(shipiterrors.ErrRemoteURLRequired)
			}
		}
		if run.DryRun {
			run.Splog.Info("[dry-run] would add remote %s -> %s", st.Remote, url)
			st.RemoteURL = url
			return Continue()
		}
		if err := git.AddRemote(ctx, st.Remote, url); err != nil {
			return Fail(err)
		}
		run.Splog.Info("Added remote %s %s", style.Remote(st.Remote), style.Dim(url))
		st.RemoteURL = url
		return Continue()

	case err != nil:
		return Fail(err)
	}

	want := run.Config.Remote.URL
	if want == "" || want == existing {
		st.RemoteURL = existing
		return Continue()
	}

	run.Splog.Warn("remote %s points at %s, configuration wants %s", st.Remote, existing, want)
	ok, err := run.Prompter.Confirm(fmt.Sprintf("Overwrite remote %s with %s?", st.Remote, want), false)
	if err != nil || !ok {
		run.Splog.Info("Keeping remote %s as %s; nothing was changed.", st.Remote, existing)
		return Stop()
	}

	if run.DryRun {
		run.Splog.Info("[dry-run] would set remote %s -> %s", st.Remote, want)
		st.RemoteURL = want
		return Continue()
	}

	if err := git.SetRemoteURL(ctx, st.Remote, want); err != nil {
		return Fail(err)
	}
	run.Splog.Info("Updated remote %s %s", style.Remote(st.Remote), style.Dim(want))
	st.RemoteURL = want
	return Continue()
}
