package output

import (
	"bytes"
	"fmt"

	"github.com/paradise-calc/paradise/internal/cli"
	"github.com/paradise-calc/paradise/internal/domain"
)

// ConsoleFormatter renders the KPI board: one row per scenario, the comparison
// insight and the 4% rule guideline.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	shared := results.Shared

	buf.WriteString(cli.RenderTitle("경제적 자유 시뮬레이션"))
	buf.WriteString("\n")
	buf.WriteString(cli.RenderKeyValues([][2]string{
		{"현재 나이", cli.FormatAge(shared.CurrentAge)},
		{"물가상승률", cli.FormatPercent(shared.InflationRate)},
		{"목표 월 생활비", cli.FormatWonDecimal(shared.TargetMonthlySpending)},
	}))
	buf.WriteString("\n")

	t := cli.Table{
		Title:   "시나리오 요약",
		Headers: []string{"시나리오", "수익률", "도달 나이", "남은 기간", "도달 시 자산", "월 패시브 인컴", "최종 자산"},
	}
	for _, sc := range allScenarios(results) {
		t.Rows = append(t.Rows, scenarioRow(sc))
	}
	buf.WriteString(cli.RenderTable(t))
	buf.WriteString("\n")

	if cmp := results.Comparison; cmp != nil && len(cmp.Points) > 0 {
		fmt.Fprintf(&buf, "  %s vs %s: %s 기준 자산 차이 %s\n",
			cmp.NameA, cmp.NameB, cli.FormatAge(cmp.Insight.Age), cli.FormatGap(cmp.Insight.Gap))
		fmt.Fprintf(&buf, "  %s 시점 자산 차이 %s\n", cli.FormatAge(cmp.Target.Age), cli.FormatGap(cmp.Target.Gap))
	}
	fmt.Fprintf(&buf, "  4%% 규칙 기준 필요 자산: %s\n", cli.FormatWonDecimal(results.FourPercentRuleAssets))

	if rec := AnalyzeScenarios(results); rec.ScenarioName != "" {
		line := fmt.Sprintf("가장 빠른 도달: %s (%s)", rec.ScenarioName, cli.FormatAge(rec.ParadiseAge))
		if rec.YearsSooner > 0 {
			line += fmt.Sprintf(", 계획보다 %d년 빠름", rec.YearsSooner)
		}
		fmt.Fprintf(&buf, "  %s\n", cli.Good(line))
	} else {
		fmt.Fprintf(&buf, "  %s\n", cli.Bad("100세까지 목표에 도달하는 시나리오가 없습니다"))
	}

	for _, sc := range allScenarios(results) {
		if sc.EndedEarly {
			fmt.Fprintf(&buf, "  %s\n", cli.Warn(fmt.Sprintf("%s: 자산이 계산 한도를 넘어 %s에서 중단됨", sc.Name, cli.FormatAge(sc.FinalAge))))
		}
	}

	if len(results.Assumptions) > 0 {
		buf.WriteString("\n  " + cli.Muted("Assumptions") + "\n")
		for _, a := range results.Assumptions {
			fmt.Fprintf(&buf, "  - %s\n", a)
		}
	}
	return buf.Bytes(), nil
}

func scenarioRow(sc domain.ScenarioSummary) []string {
	row := []string{sc.Name, cli.FormatPercent(sc.Input.AnnualReturnRate)}
	if sc.ParadiseReached {
		row = append(row,
			cli.FormatAge(sc.ParadiseAge),
			cli.FormatYearsMonths(sc.YearsUntilParadise),
			cli.FormatWon(sc.ParadiseAssets),
			cli.FormatWon(sc.ParadisePassiveIncome),
		)
	} else {
		row = append(row, cli.NotAchievable, "-", "-", "-")
	}
	return append(row, cli.FormatWon(sc.FinalAssets))
}
