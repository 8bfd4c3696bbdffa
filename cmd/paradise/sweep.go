package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/paradise-calc/paradise/internal/calculation"
	"github.com/paradise-calc/paradise/internal/cli"
	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/paradise-calc/paradise/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newSweepCmd(opts *options) *cobra.Command {
	var (
		in       inputFlags
		param    string
		from, to float64
		steps    int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Vary one input across a range and report paradise age per value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := in.resolve(cmd, opts.prefs.LastInput.Input())
			if err != nil {
				return err
			}
			p := domain.SensitivityParameter{
				Name:     param,
				MinValue: decimal.NewFromFloat(from),
				MaxValue: decimal.NewFromFloat(to),
				Steps:    steps,
			}
			results, err := calculation.Sweep(input, p)
			if err != nil {
				return err
			}
			if output.NormalizeFormatName(opts.format) == "json" {
				return writeJSON(cmd.OutOrStdout(), struct {
					Parameter string                     `json:"parameter"`
					Results   []domain.SensitivityResult `json:"results"`
				}{param, results})
			}
			fmt.Fprint(cmd.OutOrStdout(), renderSweep(param, results))
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().StringVar(&param, "param", domain.ParamAnnualReturnRate, "Input to vary")
	cmd.Flags().Float64Var(&from, "min", 4, "First value")
	cmd.Flags().Float64Var(&to, "max", 10, "Last value")
	cmd.Flags().IntVar(&steps, "steps", 7, "Number of values")
	return cmd
}

func renderSweep(param string, results []domain.SensitivityResult) string {
	t := cli.Table{
		Title:   "민감도 분석: " + param,
		Headers: []string{"값", "도달 나이", "남은 기간", "최종 자산"},
	}
	for _, r := range results {
		age, years := cli.NotAchievable, "-"
		if r.ParadiseReached {
			age, years = cli.FormatAge(r.ParadiseAge), cli.FormatYearsMonths(r.YearsUntilParadise)
		}
		t.Rows = append(t.Rows, []string{r.Value.String(), age, years, cli.FormatWon(r.FinalAssets)})
	}
	return cli.RenderTable(t)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
