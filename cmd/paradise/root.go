package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paradise-calc/paradise/internal/calculation"
	"github.com/paradise-calc/paradise/internal/config"
	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/paradise-calc/paradise/internal/output"
	"github.com/paradise-calc/paradise/internal/store"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	format    string
	outputDir string
	verbose   bool

	prefs config.Preferences
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "paradise",
		Short:        "Financial independence projection calculator",
		Long:         "Project when passive income from your assets covers your target monthly spending.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			prefs, err := config.LoadPreferences()
			if err != nil {
				return err
			}
			opts.prefs = prefs
			if !config.PreferencesExist() {
				opts.logger(cmd).Debugf("no preferences at %s, using defaults", config.PreferencesPath())
			}
			if !cmd.Flags().Changed("format") && prefs.General.DefaultFormat != "" {
				opts.format = prefs.General.DefaultFormat
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "console",
		fmt.Sprintf("Report format (%s)", strings.Join(output.AvailableFormatterNames(), ", ")))
	root.PersistentFlags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Write the report to a timestamped file in this directory")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log projection details to stderr")

	root.AddCommand(
		newProjectCmd(opts),
		newCompareCmd(opts),
		newSweepCmd(opts),
		newSolveCmd(opts),
		newInitCmd(),
		newHistoryCmd(opts),
		newServeCmd(opts),
		newWhatIfCmd(opts),
		newPlanCmd(opts),
	)
	return root
}

func (o *options) logger(cmd *cobra.Command) calculation.Logger {
	return calculation.NewStdLogger(cmd.ErrOrStderr(), o.verbose)
}

func (o *options) engine(cmd *cobra.Command) *calculation.CalculationEngine {
	ce := calculation.NewCalculationEngine()
	ce.SetLogger(o.logger(cmd))
	ce.Debug = o.verbose
	return ce
}

// report runs the configuration and writes it to stdout, or to a file when
// --output-dir is set.
func (o *options) report(cmd *cobra.Command, cfg *domain.Configuration) (*domain.ScenarioComparison, error) {
	results, err := o.engine(cmd).RunScenarios(cmd.Context(), cfg)
	if err != nil {
		return nil, err
	}
	if err := o.write(cmd.OutOrStdout(), results); err != nil {
		return nil, err
	}
	return results, nil
}

func (o *options) write(w io.Writer, results *domain.ScenarioComparison) error {
	if o.outputDir == "" {
		return output.WriteReport(w, results, o.format)
	}
	if err := os.MkdirAll(o.outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	files, err := output.GenerateReport(results, o.format, o.outputDir)
	for _, f := range files {
		fmt.Fprintf(w, "  wrote %s\n", f)
	}
	return err
}

// recordRun appends the plan's outcome to the run history.
func recordRun(ctx context.Context, name string, summary domain.ScenarioSummary) (int64, error) {
	st, err := store.Open(config.HistoryPath())
	if err != nil {
		return 0, err
	}
	defer st.Close()
	return st.SaveRun(ctx, name, summary.Input, summary)
}
