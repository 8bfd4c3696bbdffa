package main

import (
	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/paradise-calc/paradise/internal/tui"
	"github.com/spf13/cobra"
)

func newPlanCmd(opts *options) *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Enter a plan in a form, then project it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := tui.RunPlanForm(opts.prefs.LastInput.Input())
			if err != nil {
				return err
			}
			return opts.project(cmd, input, domain.PlanScenarioName, save)
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "Record the run in the history database")
	return cmd
}
