package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/tui"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to determine working directory: %w", err)
			}

			cfg, err := config.Load(wd)
			if err != nil {
				return err
			}

			splog := tui.NewSplog()
			splog.Info("remote.name: %s", cfg.Remote.Name)
			splog.Info("remote.url: %s", orEmpty(cfg.Remote.URL))
			splog.Info("branch: %s", cfg.Branch)
			splog.Info("ignore.write: %t", cfg.Ignore.Write)
			splog.Info("browser.open: %t", cfg.Browser.Open)
			splog.Info("project.markers: %v", cfg.Project.Markers)
			return nil
		},
	}

	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

// newConfigInitCmd creates the config init subcommand
func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file to the current directory",
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to determine working directory: %w", err)
			}

			path, err := config.WriteStarter(wd)
			if err != nil {
				return err
			}

			splog := tui.NewSplog()
			splog.Info("Wrote %s", filepath.Base(path))
			splog.Tip("Edit it, then run `shipit` to sync this directory.")
			return nil
		},
	}
}

func orEmpty(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
