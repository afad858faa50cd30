package actions

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/github"
	"shipit.dev/shipit/internal/runtime"
	"shipit.dev/shipit/internal/tui"
)

// Doctor performs environment checks and reports what a sync run would find.
// Returns an error when any check fails hard (currently only a missing git).
func Doctor(ctx context.Context, run *runtime.Context) error {
	splog := run.Splog
	git.SetWorkingDir(run.WorkDir)
	var failures int

	splog.Info("Environment:")

	gitVersion, err := git.Version(ctx)
	if err != nil {
		splog.Error("  git is not installed or not in PATH")
		failures++
	} else {
		splog.Info("  ✅ %s", gitVersion)
	}

	ghVersion, err := git.RunGHCommandWithContext(ctx, "--version")
	if err != nil {
		splog.Warn("  GitHub CLI (gh) is not installed; token lookup falls back to GITHUB_TOKEN only")
	} else {
		parts := strings.Fields(ghVersion)
		if len(parts) > 2 {
			splog.Info("  ✅ gh %s", parts[2])
		} else {
			splog.Info("  ✅ %s", ghVersion)
		}
	}

	if tui.IsInteractive() {
		splog.Info("  ✅ interactive terminal")
	} else {
		splog.Warn("  stdin is not a terminal; prompts are disabled (use --yes)")
	}

	splog.Newline()
	splog.Info("Configuration:")

	configPath := filepath.Join(run.WorkDir, config.FileName+".toml")
	if _, err := os.Stat(configPath); err == nil {
		splog.Info("  ✅ %s", configPath)
	} else {
		splog.Info("  no %s.toml; using defaults and SHIPIT_* environment", config.FileName)
	}
	splog.Info("  remote %s -> %s", run.Config.Remote.Name, orUnset(run.Config.Remote.URL))
	splog.Info("  branch %s", run.Config.Branch)

	splog.Newline()
	splog.Info("Repository:")

	if git.IsRepository(run.WorkDir) {
		splog.Info("  ✅ git repository")
		name := git.GetUserName(ctx)
		email := git.GetUserEmail(ctx)
		if name != "" && email != "" {
			splog.Info("  ✅ identity %s <%s>", name, email)
		} else {
			splog.Warn("  git identity incomplete; sync will prompt for it")
		}
	} else {
		splog.Info("  not yet a repository; sync will initialize one")
	}

	remoteURL := run.Config.Remote.URL
	if remoteURL != "" {
		if client, err := github.NewClient(ctx, remoteURL); err != nil {
			splog.Warn("  GitHub API unavailable: %v", err)
		} else if exists, err := client.RepoExists(ctx); err != nil {
			splog.Warn("  GitHub API check failed: %v", err)
		} else if exists {
			owner, repo := client.OwnerRepo()
			splog.Info("  ✅ %s/%s exists on GitHub", owner, repo)
		} else {
			owner, repo := client.OwnerRepo()
			splog.Warn("  %s/%s not found on GitHub; the first push needs the repository created", owner, repo)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d check(s) failed", failures)
	}
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
