// Package cli wires the cobra command tree for shipit.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/actions"
	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/prompt"
	"shipit.dev/shipit/internal/runtime"
)

// NewRootCmd creates the root cobra command. Running shipit with no
// subcommand performs a sync of the current directory.
func NewRootCmd(version, commit, date string) *cobra.Command {
	var (
		remote  string
		branch  string
		message string
		yes     bool
		dryRun  bool
	)

	rootCmd := &cobra.Command{
		Use:   "shipit",
		Short: "Shipit uploads the current project directory to a GitHub remote",
		Long: `Shipit walks a fixed checklist (init, identity, ignore file, remote,
stage, commit, divergence check, push), confirming every risky step, and
uploads the current project directory to a configured GitHub remote.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := newRunContext(yes)
			if err != nil {
				return err
			}
			return actions.Action(cmd.Context(), run, actions.Options{
				Remote:  remote,
				Branch:  branch,
				Message: message,
				DryRun:  dryRun,
			})
		},
	}

	rootCmd.Flags().StringVar(&remote, "remote", "", "Override the configured remote name")
	rootCmd.Flags().StringVar(&branch, "branch", "", "Override the configured target branch")
	rootCmd.Flags().StringVarP(&message, "message", "m", "", "Commit message (skips the prompt)")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "Answer every confirmation with its default")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report what would happen without changing anything")

	rootCmd.AddCommand(newDoctorCmd(&yes))
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// newRunContext builds the pipeline context for the current directory
func newRunContext(assumeYes bool) (*runtime.Context, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Load(wd)
	if err != nil {
		return nil, err
	}

	// Without --yes, a non-interactive run keeps the terminal prompter: its
	// ErrInteractiveDisabled makes risky steps stop instead of assuming consent.
	var prompter prompt.Prompter = prompt.NewTerminalPrompter()
	if assumeYes {
		prompter = &prompt.AssumeYesPrompter{}
	}

	return runtime.NewContext(wd, cfg, prompter), nil
}
