package cli

import (
	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/actions"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd(yes *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment, configuration, and repository state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := newRunContext(*yes)
			if err != nil {
				return err
			}
			return actions.Doctor(cmd.Context(), run)
		},
	}
}
