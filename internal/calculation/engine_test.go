package calculation

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Shared: domain.SharedAssumptions{
			InflationRate:         dec(2.5),
			TargetMonthlySpending: dec(5_000_000),
			CurrentAge:            35,
		},
		Plan: domain.ScenarioParams{
			InitialCapital:   dec(100_000_000),
			MonthlySaving:    dec(3_000_000),
			AnnualReturnRate: dec(7),
		},
		Scenarios: []domain.ScenarioParams{
			{Name: "aggressive", InitialCapital: dec(100_000_000), MonthlySaving: dec(3_000_000), AnnualReturnRate: dec(10)},
			{Name: "stable", InitialCapital: dec(100_000_000), MonthlySaving: dec(3_000_000), AnnualReturnRate: dec(4)},
		},
	}
}

func TestRunScenarios(t *testing.T) {
	engine := NewCalculationEngine()
	results, err := engine.RunScenarios(context.Background(), testConfiguration())
	require.NoError(t, err)

	assert.Equal(t, domain.PlanScenarioName, results.Plan.Name)
	require.Len(t, results.Scenarios, 2)
	assert.Equal(t, "aggressive", results.Scenarios[0].Name)
	assert.Equal(t, "stable", results.Scenarios[1].Name)

	agg, stable := results.Scenarios[0], results.Scenarios[1]
	require.True(t, agg.ParadiseReached)
	require.True(t, results.Plan.ParadiseReached)
	assert.Less(t, agg.ParadiseAge, results.Plan.ParadiseAge)
	if stable.ParadiseReached {
		assert.Greater(t, stable.ParadiseAge, results.Plan.ParadiseAge)
	}

	assert.True(t, results.FourPercentRuleAssets.Equal(dec(1_500_000_000)))
	assert.NotEmpty(t, results.Assumptions)

	cmp := results.Comparison
	require.NotNil(t, cmp)
	assert.Equal(t, "aggressive", cmp.NameA)
	assert.Equal(t, "stable", cmp.NameB)
	// Cut at the plan's paradise age plus the two-year buffer.
	require.NotEmpty(t, cmp.Points)
	assert.Equal(t, results.Plan.ParadiseAge+ParadiseBufferYears, cmp.Points[len(cmp.Points)-1].Age)
	assert.Equal(t, cmp.Points[len(cmp.Points)-1].Age, cmp.Insight.Age)
	assert.Greater(t, cmp.Insight.Gap, int64(0))
	assert.Equal(t, results.Plan.ParadiseAge, cmp.Target.Age)
	assert.Greater(t, cmp.Target.Gap, int64(0))
}

func TestRunScenariosWithoutAlternates(t *testing.T) {
	cfg := testConfiguration()
	cfg.Scenarios = nil
	results, err := NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	assert.Empty(t, results.Scenarios)
	assert.Nil(t, results.Comparison)
}

func TestRunScenarioRejectsUndefinedRealRate(t *testing.T) {
	cfg := testConfiguration()
	cfg.Shared.InflationRate = dec(-100)
	_, err := NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "greater than -100%")
}

func TestRunScenarioHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCalculationEngine().RunScenario(ctx, testConfiguration(), testConfiguration().Plan)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComparePairTargetFallsBackToAge70(t *testing.T) {
	cfg := testConfiguration()
	cfg.Shared.TargetMonthlySpending = dec(1e12)
	results, err := NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)

	require.False(t, results.Plan.ParadiseReached)
	require.NotNil(t, results.Comparison)
	assert.Equal(t, 70, results.Comparison.Target.Age)
	// No cutoff when the plan never gets there.
	assert.Equal(t, MaxAge, results.Comparison.Insight.Age)
}

func TestEngineLogging(t *testing.T) {
	var buf bytes.Buffer
	engine := NewCalculationEngine()
	engine.SetLogger(NewStdLogger(&buf, true))
	engine.Debug = true

	_, err := engine.RunScenario(context.Background(), testConfiguration(), testConfiguration().Scenarios[0])
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "INFO scenario aggressive reaches paradise")
	assert.Contains(t, out, "DEBUG aggressive age=35")

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

func TestStdLoggerSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(&buf, false)
	l.Debugf("hidden %d", 1)
	l.Warnf("shown %d", 2)
	assert.False(t, strings.Contains(buf.String(), "hidden"))
	assert.Contains(t, buf.String(), "WARN shown 2")
}
