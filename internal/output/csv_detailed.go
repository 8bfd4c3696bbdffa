package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/paradise-calc/paradise/internal/domain"
)

// CSVDetailedExporter provides the full yearly projection per scenario.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Age", "Year", "TotalAssets", "PassiveIncome", "IsParadise"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := allScenarios(results)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		for _, p := range sc.Projection {
			row := []string{
				sc.Name,
				intToString(p.Age),
				intToString(p.Year),
				int64ToString(p.TotalAssets),
				int64ToString(p.PassiveIncome),
				boolToString(p.IsParadise),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
