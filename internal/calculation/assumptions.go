package calculation

import (
	"fmt"

	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/shopspring/decimal"
)

var minInflation = decimal.NewFromInt(-100)

// GenerateAssumptions lists the modeling assumptions of a configuration, with the
// real return each scenario implies.
func GenerateAssumptions(config *domain.Configuration) []string {
	inflation := config.Shared.InflationRate.InexactFloat64()
	lines := []string{
		fmt.Sprintf("Inflation: %.1f%% annually; all amounts are in today's money", inflation),
		"Savings are added at the start of each month, before that month's growth",
		"Monthly passive income = assets x real monthly rate",
		fmt.Sprintf("Projection runs to age %d or until assets exceed 10^15", MaxAge),
	}
	all := append([]domain.ScenarioParams{config.PlanParams()}, config.Scenarios...)
	for _, p := range all {
		realRate := RealAnnualRate(p.AnnualReturnRate.InexactFloat64(), inflation)
		lines = append(lines, fmt.Sprintf("%s: %.1f%% nominal = %.2f%% real annual return", p.Name, p.AnnualReturnRate.InexactFloat64(), realRate*100))
	}
	return lines
}
