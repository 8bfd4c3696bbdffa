package main

import (
	"fmt"

	"github.com/paradise-calc/paradise/internal/cli"
	"github.com/paradise-calc/paradise/internal/config"
	"github.com/paradise-calc/paradise/internal/output"
	"github.com/paradise-calc/paradise/internal/store"
	"github.com/spf13/cobra"
)

func newHistoryCmd(opts *options) *cobra.Command {
	var (
		limit    int
		deleteID int64
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List or delete recorded runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := store.Open(config.HistoryPath())
			if err != nil {
				return err
			}
			defer st.Close()

			if cmd.Flags().Changed("delete") {
				if err := st.DeleteRun(cmd.Context(), deleteID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  deleted run #%d\n", deleteID)
				return nil
			}

			if !cmd.Flags().Changed("limit") {
				limit = opts.prefs.General.HistoryLimit
			}
			runs, err := st.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if output.NormalizeFormatName(opts.format) == "json" {
				return writeJSON(cmd.OutOrStdout(), runs)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderHistory(runs))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Number of runs to show (0 for all)")
	cmd.Flags().Int64Var(&deleteID, "delete", 0, "Delete the run with this id")
	return cmd
}

func renderHistory(runs []store.RunRecord) string {
	if len(runs) == 0 {
		return "  기록된 실행이 없습니다\n"
	}
	t := cli.Table{
		Title:   "실행 기록",
		Headers: []string{"#", "이름", "일시", "입력", "도달 나이", "최종 자산"},
	}
	for _, r := range runs {
		age := cli.NotAchievable
		if r.ParadiseReached {
			age = cli.FormatAge(r.ParadiseAge)
		}
		t.Rows = append(t.Rows, []string{
			fmt.Sprint(r.ID),
			r.Name,
			r.CreatedAt.Format("2006-01-02 15:04"),
			describe(r.Input),
			age,
			cli.FormatWon(r.FinalAssets),
		})
	}
	return cli.RenderTable(t)
}
