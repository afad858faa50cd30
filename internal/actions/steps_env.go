package actions

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	shipiterrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/runtime"
	"shipit.dev/shipit/internal/tui/style"
)

// checkTool verifies the git executable is available. Nothing else can run
// without it.
func checkTool(_ context.Context, run *runtime.Context, _ *State) StepResult {
	if !git.IsGitInstalled() {
		run.Splog.Error("git is not installed or not in PATH")
		return Fail(shipiterrors.ErrGitNotFound)
	}
	return Continue()
}

// checkProjectDir heuristically verifies the working directory looks like a
// project root by checking for marker files. An unrecognized directory needs
// explicit confirmation before anything is staged from it.
func checkProjectDir(_ context.Context, run *runtime.Context, _ *State) StepResult {
	for _, marker := range run.Config.Project.Markers {
		if _, err := os.Stat(filepath.Join(run.WorkDir, marker)); err == nil {
			run.Splog.Debug("found project marker %s", marker)
			return Continue()
		}
	}

	run.Splog.Warn("%s does not contain any of: %s",
		run.WorkDir, strings.Join(run.Config.Project.Markers, ", "))

	ok, err := run.Prompter.Confirm("This directory does not look like a project root. Sync it anyway?", false)
	if err != nil || !ok {
		run.Splog.Info("Aborted. Run shipit from your project root, or add a marker to %s",
			style.Dim("project.markers"))
		return Fail(shipiterrors.ErrDirectoryRejected)
	}
	return Continue()
}
