package output

import (
	"bytes"
	"fmt"

	"github.com/paradise-calc/paradise/internal/calculation"
	"github.com/paradise-calc/paradise/internal/cli"
	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/paradise-calc/paradise/pkg/money"
)

// TableFormatter renders the plan year by year, cut at paradise plus the chart
// buffer, with an asset bar per year.
type TableFormatter struct{}

func (t TableFormatter) Name() string { return "table" }

func (t TableFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	plan := results.Plan
	window := calculation.ChartWindow(plan.Projection)

	table := cli.Table{
		Title:   fmt.Sprintf("%s 연도별 자산", plan.Name),
		Headers: []string{"나이", "경과", "총 자산", "월 패시브 인컴", "자유"},
	}
	labels := make([]string, len(window))
	values := make([]int64, len(window))
	marks := make([]bool, len(window))
	for i, p := range window {
		mark := ""
		if p.IsParadise {
			mark = "✓"
		}
		table.Rows = append(table.Rows, []string{
			cli.FormatAge(p.Age),
			fmt.Sprintf("%d년", p.Year),
			cli.FormatWon(p.TotalAssets),
			cli.FormatWon(p.PassiveIncome),
			mark,
		})
		labels[i] = cli.FormatAge(p.Age)
		values[i] = p.TotalAssets
		marks[i] = p.IsParadise
	}
	buf.WriteString(cli.RenderTable(table))

	if len(window) > 0 {
		buf.WriteString("\n")
		buf.WriteString(cli.RenderBars(labels, values, marks, 40))
		last := window[len(window)-1]
		fmt.Fprintf(&buf, "  %s  %s\n", cli.Muted("최대"), money.NewMoneyFromInt(last.TotalAssets).FormatCompact())
	}

	if plan.ParadiseReached {
		fmt.Fprintf(&buf, "\n  %s\n", cli.Good(fmt.Sprintf("%s에 경제적 자유 달성 (%s)",
			cli.FormatAge(plan.ParadiseAge), cli.FormatYearsMonths(plan.YearsUntilParadise))))
	} else {
		fmt.Fprintf(&buf, "\n  %s\n", cli.Bad(cli.NotAchievable))
	}
	return buf.Bytes(), nil
}
