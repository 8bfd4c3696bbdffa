package calculation

import (
	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// ParadiseBufferYears is how many years past paradise a chart window keeps.
	ParadiseBufferYears = 2
	// FallbackTargetAge is the comparison age used when the plan never reaches paradise.
	FallbackTargetAge = 70
)

// ParadiseIndex returns the index of the first paradise point, or -1.
func ParadiseIndex(points []domain.ProjectionPoint) int {
	for i, p := range points {
		if p.IsParadise {
			return i
		}
	}
	return -1
}

// FirstParadisePoint returns the first point whose passive income meets the target.
// The boolean is false when the target is not achievable within the series.
func FirstParadisePoint(points []domain.ProjectionPoint) (domain.ProjectionPoint, bool) {
	if i := ParadiseIndex(points); i >= 0 {
		return points[i], true
	}
	return domain.ProjectionPoint{}, false
}

// YearsUntilParadise returns the paradise age minus currentAge.
func YearsUntilParadise(points []domain.ProjectionPoint, currentAge int) (int, bool) {
	p, ok := FirstParadisePoint(points)
	if !ok {
		return 0, false
	}
	return p.Age - currentAge, true
}

// MonthsUntilParadise is YearsUntilParadise expressed in months.
func MonthsUntilParadise(points []domain.ProjectionPoint, currentAge int) (int, bool) {
	years, ok := YearsUntilParadise(points, currentAge)
	return years * MonthsPerYear, ok
}

// FinalPoint returns the last point of the series.
func FinalPoint(points []domain.ProjectionPoint) (domain.ProjectionPoint, bool) {
	if len(points) == 0 {
		return domain.ProjectionPoint{}, false
	}
	return points[len(points)-1], true
}

// ChartWindow trims a series to paradise plus ParadiseBufferYears. A series that
// never reaches paradise is returned whole.
func ChartWindow(points []domain.ProjectionPoint) []domain.ProjectionPoint {
	return points[:windowEnd(ParadiseIndex(points), len(points))]
}

func windowEnd(paradiseIdx, n int) int {
	if paradiseIdx < 0 {
		return n
	}
	return min(paradiseIdx+1+ParadiseBufferYears, n)
}

// CompareScenarios zips two series by index. Entries missing from b are reported as
// zero assets and not paradise.
func CompareScenarios(a, b []domain.ProjectionPoint) []domain.ComparisonPoint {
	merged := make([]domain.ComparisonPoint, len(a))
	for i, pa := range a {
		cp := domain.ComparisonPoint{
			Age:         pa.Age,
			AssetsA:     pa.TotalAssets,
			IsParadiseA: pa.IsParadise,
		}
		if i < len(b) {
			cp.AssetsB = b[i].TotalAssets
			cp.IsParadiseB = b[i].IsParadise
		}
		merged[i] = cp
	}
	return merged
}

// TrimComparison applies the chart window of the main plan to a merged series.
func TrimComparison(merged []domain.ComparisonPoint, main []domain.ProjectionPoint) []domain.ComparisonPoint {
	return merged[:windowEnd(ParadiseIndex(main), len(merged))]
}

// AssetGap reports the A-B asset gap at the last point of a merged series.
func AssetGap(merged []domain.ComparisonPoint) domain.GapInsight {
	if len(merged) == 0 {
		return domain.GapInsight{}
	}
	last := merged[len(merged)-1]
	return domain.GapInsight{Age: last.Age, Gap: last.AssetsA - last.AssetsB}
}

// SummaryTargetIndex picks the index at which two scenarios are compared on a
// summary card: the main plan's paradise index, otherwise the index of
// FallbackTargetAge. The result is clamped to [0, length-1]; it is -1 only when
// length is 0.
func SummaryTargetIndex(main []domain.ProjectionPoint, currentAge, length int) int {
	if length <= 0 {
		return -1
	}
	idx := ParadiseIndex(main)
	if idx < 0 {
		idx = max(FallbackTargetAge-currentAge, 0)
	}
	return min(idx, length-1)
}

// FourPercentRuleAssets is the asset level whose 4% annual withdrawal covers the
// monthly target (target * 12 * 25).
func FourPercentRuleAssets(targetMonthly decimal.Decimal) decimal.Decimal {
	return targetMonthly.Mul(decimal.NewFromInt(MonthsPerYear * 25))
}

// Summarize derives the scenario KPIs from a projection.
func Summarize(name string, in domain.ProjectionInput, points []domain.ProjectionPoint) domain.ScenarioSummary {
	s := domain.ScenarioSummary{
		Name:       name,
		Input:      in,
		Projection: points,
	}
	if p, ok := FirstParadisePoint(points); ok {
		s.ParadiseReached = true
		s.ParadiseAge = p.Age
		s.YearsUntilParadise = p.Age - in.CurrentAge
		s.MonthsUntilParadise = s.YearsUntilParadise * MonthsPerYear
		s.ParadiseAssets = p.TotalAssets
		s.ParadisePassiveIncome = p.PassiveIncome
	}
	if last, ok := FinalPoint(points); ok {
		s.FinalAge = last.Age
		s.FinalAssets = last.TotalAssets
		s.EndedEarly = last.Age < MaxAge
	}
	return s
}
