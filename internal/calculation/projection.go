package calculation

import (
	"math"

	"github.com/paradise-calc/paradise/internal/domain"
)

const (
	// MaxAge is the last simulated age, inclusive.
	MaxAge = 100
	// MonthsPerYear is the number of compounding steps per simulated year.
	MonthsPerYear = 12
	// AssetCeiling stops the simulation once year-end assets exceed it.
	AssetCeiling = 1e15
)

// RealAnnualRate removes inflation from a nominal annual return using the Fisher
// relation. Both arguments are percentages; the result is a fraction.
// inflationPct must not be -100.
func RealAnnualRate(nominalPct, inflationPct float64) float64 {
	return (1+nominalPct/100)/(1+inflationPct/100) - 1
}

// RealMonthlyRate de-annualizes a real annual rate geometrically, so that twelve
// monthly steps compound to exactly one year.
func RealMonthlyRate(realAnnual float64) float64 {
	return math.Pow(1+realAnnual, 1.0/MonthsPerYear) - 1
}

// Project simulates the input year by year from CurrentAge to MaxAge.
//
// Each month adds the saving and then applies the real monthly rate. At year end
// the monthly passive income is assets * real monthly rate; the year is paradise
// when that income meets the target. Reaching paradise does not stop the loop;
// the series ends at MaxAge or right after the first year whose assets exceed
// AssetCeiling.
//
// Project does not validate its input. InflationRate == -100 yields undefined
// (Inf/NaN) results and must be rejected by the caller.
func Project(in domain.ProjectionInput) []domain.ProjectionPoint {
	saving := in.MonthlySaving.InexactFloat64()
	target := in.TargetMonthlySpending.InexactFloat64()
	monthly := RealMonthlyRate(RealAnnualRate(in.AnnualReturnRate.InexactFloat64(), in.InflationRate.InexactFloat64()))
	growth := 1 + monthly

	var points []domain.ProjectionPoint
	if in.CurrentAge <= MaxAge {
		points = make([]domain.ProjectionPoint, 0, MaxAge-in.CurrentAge+1)
	}

	assets := in.InitialCapital.InexactFloat64()
	for age := in.CurrentAge; age <= MaxAge; age++ {
		for month := 0; month < MonthsPerYear; month++ {
			assets = (assets + saving) * growth
		}
		passive := assets * monthly

		points = append(points, domain.ProjectionPoint{
			Age:           age,
			Year:          age - in.CurrentAge,
			TotalAssets:   floorInt64(assets),
			PassiveIncome: floorInt64(passive),
			IsParadise:    passive >= target,
		})

		if assets > AssetCeiling {
			break
		}
	}
	return points
}

// floorInt64 floors x and saturates at the int64 bounds. The year that crosses
// AssetCeiling can grow past math.MaxInt64 before the loop stops. NaN maps to 0.
func floorInt64(x float64) int64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt64:
		return math.MaxInt64
	case x <= math.MinInt64:
		return math.MinInt64
	}
	return int64(math.Floor(x))
}
