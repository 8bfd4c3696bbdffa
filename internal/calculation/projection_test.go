package calculation

import (
	"math"
	"sync"
	"testing"

	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// defaultInput mirrors the calculator's out-of-the-box plan.
func defaultInput() domain.ProjectionInput {
	return domain.ProjectionInput{
		InitialCapital:        dec(100_000_000),
		MonthlySaving:         dec(3_000_000),
		AnnualReturnRate:      dec(7),
		InflationRate:         dec(2.5),
		TargetMonthlySpending: dec(5_000_000),
		CurrentAge:            35,
	}
}

func TestRealMonthlyRateCompoundsToAnnual(t *testing.T) {
	tests := []struct {
		name      string
		nominal   float64
		inflation float64
	}{
		{"typical", 7, 2.5},
		{"aggressive", 10, 2.5},
		{"negative real", 1, 10},
		{"deflation", 3, -1},
		{"zero real", 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			annual := RealAnnualRate(tt.nominal, tt.inflation)
			monthly := RealMonthlyRate(annual)
			compounded := 1.0
			for i := 0; i < MonthsPerYear; i++ {
				compounded *= 1 + monthly
			}
			assert.InDelta(t, 1+annual, compounded, 1e-12)
		})
	}
}

func TestRealAnnualRateFisher(t *testing.T) {
	assert.InDelta(t, 1.07/1.025-1, RealAnnualRate(7, 2.5), 1e-15)
	assert.Equal(t, 0.0, RealAnnualRate(5, 5))
	assert.Less(t, RealAnnualRate(1, 10), 0.0)
}

func TestProjectKnownFirstYear(t *testing.T) {
	// 1.01^12 - 1 nominal with no inflation gives a 1% real monthly rate.
	in := domain.ProjectionInput{
		MonthlySaving:    dec(100),
		AnnualReturnRate: dec((math.Pow(1.01, 12) - 1) * 100),
		InflationRate:    decimal.Zero,
		CurrentAge:       40,
	}
	points := Project(in)
	require.NotEmpty(t, points)

	// Annuity due: 100 * ((1.01^12 - 1) / 0.01) * 1.01 = 1280.93
	assert.Equal(t, int64(1280), points[0].TotalAssets)
	assert.Equal(t, int64(12), points[0].PassiveIncome)
	assert.Equal(t, 40, points[0].Age)
	assert.Equal(t, 0, points[0].Year)
}

func TestProjectDeterministic(t *testing.T) {
	in := defaultInput()
	assert.Equal(t, Project(in), Project(in))
}

func TestProjectMonotonicAgeAndBoundedLength(t *testing.T) {
	for _, age := range []int{0, 18, 35, 64, 99, 100} {
		in := defaultInput()
		in.CurrentAge = age
		points := Project(in)

		require.NotEmpty(t, points)
		assert.LessOrEqual(t, len(points), MaxAge-age+1)
		assert.Equal(t, age, points[0].Age)
		for i := 1; i < len(points); i++ {
			assert.Equal(t, points[i-1].Age+1, points[i].Age)
			assert.Equal(t, points[i].Age-age, points[i].Year)
		}
		// Without hitting the ceiling the series runs to MaxAge.
		assert.Equal(t, MaxAge, points[len(points)-1].Age)
	}
}

func TestProjectPastMaxAgeIsEmpty(t *testing.T) {
	in := defaultInput()
	in.CurrentAge = MaxAge + 1
	assert.Empty(t, Project(in))
}

func TestProjectZeroRealRateIdentity(t *testing.T) {
	in := domain.ProjectionInput{
		InitialCapital:        dec(123_456_789),
		AnnualReturnRate:      dec(3),
		InflationRate:         dec(3),
		TargetMonthlySpending: dec(1),
		CurrentAge:            30,
	}
	for _, p := range Project(in) {
		assert.Equal(t, int64(123_456_789), p.TotalAssets, "age %d", p.Age)
		assert.Equal(t, int64(0), p.PassiveIncome)
		assert.False(t, p.IsParadise)
	}
}

func TestProjectPureAccumulation(t *testing.T) {
	in := domain.ProjectionInput{
		MonthlySaving: dec(1_000_000),
		CurrentAge:    30,
	}
	points := Project(in)
	require.Len(t, points, MaxAge-30+1)
	assert.Equal(t, int64(12_000_000), points[0].TotalAssets)
	assert.Equal(t, int64(24_000_000), points[1].TotalAssets)
}

func TestProjectParadiseThreshold(t *testing.T) {
	in := defaultInput()
	points := Project(in)
	idx := ParadiseIndex(points)
	require.GreaterOrEqual(t, idx, 0, "default plan should reach paradise")

	target := in.TargetMonthlySpending.IntPart()
	assert.GreaterOrEqual(t, points[idx].PassiveIncome, target)
	for _, p := range points[:idx] {
		assert.Less(t, p.PassiveIncome, target)
		assert.False(t, p.IsParadise)
	}
	// The loop keeps going after paradise.
	assert.Equal(t, MaxAge, points[len(points)-1].Age)
	assert.True(t, points[len(points)-1].IsParadise)
}

func TestProjectScenarioComparison(t *testing.T) {
	base := domain.ProjectionInput{
		InitialCapital:        dec(100_000_000),
		MonthlySaving:         dec(3_000_000),
		InflationRate:         dec(2.5),
		TargetMonthlySpending: dec(5_000_000),
		CurrentAge:            35,
	}
	a, b := base, base
	a.AnnualReturnRate = dec(10)
	b.AnnualReturnRate = dec(4)

	pa, pb := Project(a), Project(b)
	require.Equal(t, len(pa), len(pb))
	for i := range pa {
		require.Equal(t, pa[i].Age, pb[i].Age)
		assert.GreaterOrEqual(t, pa[i].TotalAssets, pb[i].TotalAssets)
		if pa[i].Age > base.CurrentAge {
			assert.Greater(t, pa[i].TotalAssets, pb[i].TotalAssets, "age %d", pa[i].Age)
		}
	}
}

func TestProjectNegativeRealRateDecay(t *testing.T) {
	in := domain.ProjectionInput{
		InitialCapital:        dec(100_000_000),
		AnnualReturnRate:      dec(1),
		InflationRate:         dec(10),
		TargetMonthlySpending: dec(5_000_000),
		CurrentAge:            35,
	}
	points := Project(in)
	require.Len(t, points, MaxAge-35+1)
	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i].TotalAssets, points[i-1].TotalAssets)
	}
	for _, p := range points {
		assert.LessOrEqual(t, p.PassiveIncome, int64(0))
		assert.False(t, p.IsParadise)
	}
	_, ok := FirstParadisePoint(points)
	assert.False(t, ok)
}

func TestProjectStopsAtAssetCeiling(t *testing.T) {
	// 100% real return doubles assets every year: 2e14, 4e14, 8e14, 1.6e15.
	in := domain.ProjectionInput{
		InitialCapital:        dec(1e14),
		AnnualReturnRate:      dec(100),
		InflationRate:         decimal.Zero,
		TargetMonthlySpending: dec(5_000_000),
		CurrentAge:            30,
	}
	points := Project(in)
	require.Len(t, points, 4)
	assert.Equal(t, 33, points[3].Age)
	assert.Greater(t, points[3].TotalAssets, int64(AssetCeiling))
	assert.LessOrEqual(t, points[2].TotalAssets, int64(AssetCeiling))

	s := Summarize("ceiling", in, points)
	assert.True(t, s.EndedEarly)
	assert.Equal(t, 33, s.FinalAge)
}

func TestProjectConcurrentCallsAreIndependent(t *testing.T) {
	want := Project(defaultInput())

	var wg sync.WaitGroup
	results := make([][]domain.ProjectionPoint, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Project(defaultInput())
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
	results[0][0].TotalAssets = -1
	assert.NotEqual(t, int64(-1), results[1][0].TotalAssets)
}

func TestProjectSaturatesPastInt64(t *testing.T) {
	in := defaultInput()
	in.AnnualReturnRate = dec(100_000_000)

	points := Project(in)
	require.Len(t, points, 2, "stops after the year that crosses the ceiling")
	last := points[len(points)-1]
	assert.Equal(t, int64(math.MaxInt64), last.TotalAssets)
	assert.Equal(t, int64(math.MaxInt64), last.PassiveIncome)
	target := in.TargetMonthlySpending.IntPart()
	for _, p := range points {
		assert.GreaterOrEqual(t, p.TotalAssets, int64(0), "age %d", p.Age)
		assert.Equal(t, p.PassiveIncome >= target, p.IsParadise, "age %d", p.Age)
	}

	in = defaultInput()
	in.InitialCapital = dec(0)
	in.MonthlySaving = dec(-1e17)
	in.AnnualReturnRate = dec(100_000_000)
	points = Project(in)
	last = points[len(points)-1]
	assert.Equal(t, int64(math.MinInt64), last.TotalAssets)
	assert.False(t, last.IsParadise)
}

func TestFloorInt64(t *testing.T) {
	assert.Equal(t, int64(3), floorInt64(3.9))
	assert.Equal(t, int64(-4), floorInt64(-3.1))
	assert.Equal(t, int64(math.MaxInt64), floorInt64(1e30))
	assert.Equal(t, int64(math.MinInt64), floorInt64(-1e30))
	assert.Equal(t, int64(math.MaxInt64), floorInt64(math.Inf(1)))
	assert.Equal(t, int64(0), floorInt64(math.NaN()))
}
