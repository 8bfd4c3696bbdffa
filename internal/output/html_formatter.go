package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/paradise-calc/paradise/internal/calculation"
	"github.com/paradise-calc/paradise/internal/cli"
	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/paradise-calc/paradise/pkg/money"
)

// HTMLFormatter produces a standalone summary card with the scenario table and
// the plan's chart window.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"won":     cli.FormatWon,
	"wonDec":  cli.FormatWonDecimal,
	"age":     cli.FormatAge,
	"years":   cli.FormatYearsMonths,
	"pct":     cli.FormatPercent,
	"gap":     cli.FormatGap,
	"compact": func(n int64) string { return money.NewMoneyFromInt(n).FormatCompact() },
	"barPct": func(v, peak int64) int64 {
		if peak <= 0 || v <= 0 {
			return 0
		}
		return v * 100 / peak
	},
}).Parse(htmlTemplateSource))

type htmlReport struct {
	*domain.ScenarioComparison
	All            []domain.ScenarioSummary
	Window         []domain.ProjectionPoint
	Peak           int64
	Recommendation Recommendation
	NotAchievable  string
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	window := calculation.ChartWindow(results.Plan.Projection)
	var peak int64
	for _, p := range window {
		peak = max(peak, p.TotalAssets)
	}

	data := htmlReport{
		ScenarioComparison: results,
		All:                allScenarios(results),
		Window:             window,
		Peak:               peak,
		Recommendation:     AnalyzeScenarios(results),
		NotAchievable:      cli.NotAchievable,
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
