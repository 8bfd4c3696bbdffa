package main

import (
	"errors"
	"fmt"

	"github.com/paradise-calc/paradise/internal/calculation"
	"github.com/paradise-calc/paradise/internal/cli"
	"github.com/paradise-calc/paradise/internal/output"
	"github.com/spf13/cobra"
)

func newSolveCmd(opts *options) *cobra.Command {
	var (
		in        inputFlags
		targetAge int
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the monthly saving that reaches paradise by an age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := in.resolve(cmd, opts.prefs.LastInput.Input())
			if err != nil {
				return err
			}
			res, err := calculation.RequiredMonthlySaving(input, targetAge)
			if errors.Is(err, calculation.ErrTargetUnreachable) {
				return fmt.Errorf("%d세까지 %s: %w", targetAge, cli.NotAchievable, err)
			}
			if err != nil {
				return err
			}
			if output.NormalizeFormatName(opts.format) == "json" {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprint(cmd.OutOrStdout(), cli.RenderTitle("목표 나이 역산")+"\n\n")
			fmt.Fprint(cmd.OutOrStdout(), cli.RenderKeyValues([][2]string{
				{"목표 나이", cli.FormatAge(res.TargetAge)},
				{"필요 월 저축액", cli.FormatWonDecimal(res.MonthlySaving)},
				{"도달 나이", cli.FormatAge(res.Point.Age)},
				{"도달 시 자산", cli.FormatWon(res.Point.TotalAssets)},
				{"월 패시브 인컴", cli.FormatWon(res.Point.PassiveIncome)},
			}))
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().IntVar(&targetAge, "by", 55, "Age by which paradise should be reached")
	return cmd
}
