package main

import (
	"fmt"

	"github.com/paradise-calc/paradise/internal/config"
	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(opts *options) *cobra.Command {
	var (
		in   inputFlags
		save bool
		name string
	)
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a single plan from flags or the last-used values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := in.resolve(cmd, opts.prefs.LastInput.Input())
			if err != nil {
				return err
			}
			return opts.project(cmd, input, name, save)
		},
	}
	in.register(cmd)
	cmd.Flags().BoolVar(&save, "save", false, "Record the run in the history database")
	cmd.Flags().StringVar(&name, "name", domain.PlanScenarioName, "Name to record the run under")
	return cmd
}

// project runs one input, remembers it and optionally records it.
func (o *options) project(cmd *cobra.Command, in domain.ProjectionInput, name string, save bool) error {
	results, err := o.report(cmd, domain.ConfigurationFromInput(in))
	if err != nil {
		return err
	}

	if err := config.RememberInput(in); err != nil {
		o.logger(cmd).Warnf("could not save last-used input: %v", err)
	}

	if save || o.prefs.General.SaveHistory {
		id, err := recordRun(cmd.Context(), name, results.Plan)
		if err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "  saved run #%d\n", id)
	}
	return nil
}
