package output

import (
	"sort"

	"github.com/paradise-calc/paradise/internal/domain"
)

// Recommendation names the scenario that reaches paradise first.
type Recommendation struct {
	ScenarioName string
	ParadiseAge  int
	// YearsSooner is how many years earlier than the plan it gets there. It is
	// zero when the plan itself is best or never reaches paradise.
	YearsSooner int
}

// AnalyzeScenarios picks the earliest-paradise scenario, plan included. Ties go to
// the plan, then to the alphabetically first name. The zero Recommendation means
// no scenario reaches paradise.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	var reached []domain.ScenarioSummary
	if results.Plan.ParadiseReached {
		reached = append(reached, results.Plan)
	}
	for _, sc := range results.Scenarios {
		if sc.ParadiseReached {
			reached = append(reached, sc)
		}
	}
	if len(reached) == 0 {
		return Recommendation{}
	}

	planName := results.Plan.Name
	sort.SliceStable(reached, func(i, j int) bool {
		a, b := reached[i], reached[j]
		if a.ParadiseAge != b.ParadiseAge {
			return a.ParadiseAge < b.ParadiseAge
		}
		if (a.Name == planName) != (b.Name == planName) {
			return a.Name == planName
		}
		return a.Name < b.Name
	})

	best := reached[0]
	rec := Recommendation{ScenarioName: best.Name, ParadiseAge: best.ParadiseAge}
	if results.Plan.ParadiseReached {
		rec.YearsSooner = results.Plan.ParadiseAge - best.ParadiseAge
	}
	return rec
}
