// Package runtime provides the context type that carries the logger, config,
// and prompter through the sync pipeline. This avoids passing multiple
// parameters through every step.
package runtime

import (
	"path/filepath"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/prompt"
	"shipit.dev/shipit/internal/tui"
)

// Context provides access to configuration and output for pipeline steps
type Context struct {
	Splog    *tui.Splog
	Config   *config.Config
	Prompter prompt.Prompter

	// WorkDir is the project directory being synced
	WorkDir string

	// DryRun disables every mutating step
	DryRun bool
}

// NewContext creates a context for the given project directory
func NewContext(workDir string, cfg *config.Config, prompter prompt.Prompter) *Context {
	return &Context{
		Splog:    tui.NewSplog(),
		Config:   cfg,
		Prompter: prompter,
		WorkDir:  workDir,
	}
}

// EnableFileLog switches the logger to one that also writes a rotating file
// log under the repository's .git directory. Call once the repository exists.
func (c *Context) EnableFileLog(repoRoot string) {
	splog, err := tui.NewSplogWithConfig(filepath.Join(repoRoot, ".git", "shipit.log"))
	if err != nil {
		// Keep console-only logging when the file cannot be opened
		return
	}
	c.Splog = splog
}
