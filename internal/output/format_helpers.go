package output

import (
	"strconv"

	"github.com/paradise-calc/paradise/internal/domain"
)

func intToString(i int) string { return strconv.Itoa(i) }

func int64ToString(i int64) string { return strconv.FormatInt(i, 10) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// allScenarios returns the plan followed by the alternates.
func allScenarios(results *domain.ScenarioComparison) []domain.ScenarioSummary {
	return append([]domain.ScenarioSummary{results.Plan}, results.Scenarios...)
}
