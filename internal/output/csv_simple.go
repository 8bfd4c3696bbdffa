package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/paradise-calc/paradise/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "AnnualReturnRate", "InitialCapital", "MonthlySaving", "ParadiseReached", "ParadiseAge", "YearsUntilParadise", "MonthsUntilParadise", "ParadiseAssets", "ParadisePassiveIncome", "FinalAge", "FinalAssets"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := allScenarios(results)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		row := []string{
			sc.Name,
			sc.Input.AnnualReturnRate.String(),
			sc.Input.InitialCapital.String(),
			sc.Input.MonthlySaving.String(),
			boolToString(sc.ParadiseReached),
		}
		// Unreached paradise is left blank, never zero.
		if sc.ParadiseReached {
			row = append(row,
				intToString(sc.ParadiseAge),
				intToString(sc.YearsUntilParadise),
				intToString(sc.MonthsUntilParadise),
				int64ToString(sc.ParadiseAssets),
				int64ToString(sc.ParadisePassiveIncome),
			)
		} else {
			row = append(row, "", "", "", "", "")
		}
		row = append(row, intToString(sc.FinalAge), int64ToString(sc.FinalAssets))
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
