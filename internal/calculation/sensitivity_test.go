package calculation

import (
	"testing"

	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepReturnRate(t *testing.T) {
	results, err := Sweep(defaultInput(), domain.SensitivityParameter{
		Name:     domain.ParamAnnualReturnRate,
		MinValue: dec(4),
		MaxValue: dec(10),
		Steps:    4,
	})
	require.NoError(t, err)
	require.Len(t, results, 4)

	wantValues := []float64{4, 6, 8, 10}
	for i, r := range results {
		assert.True(t, r.Value.Equal(dec(wantValues[i])), "value %d: %s", i, r.Value)
	}
	// A higher return never delays paradise.
	for i := 1; i < len(results); i++ {
		require.True(t, results[i].ParadiseReached)
		if results[i-1].ParadiseReached {
			assert.LessOrEqual(t, results[i].YearsUntilParadise, results[i-1].YearsUntilParadise)
		}
		assert.Greater(t, results[i].FinalAssets, results[i-1].FinalAssets)
	}
}

func TestSweepSingleStep(t *testing.T) {
	results, err := Sweep(defaultInput(), domain.SensitivityParameter{
		Name:     domain.ParamMonthlySaving,
		MinValue: dec(1_000_000),
		MaxValue: dec(9_000_000),
		Steps:    1,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Value.Equal(dec(1_000_000)))
}

func TestSweepErrors(t *testing.T) {
	tests := []struct {
		name  string
		param domain.SensitivityParameter
		want  string
	}{
		{"no steps", domain.SensitivityParameter{Name: domain.ParamMonthlySaving, MinValue: dec(0), MaxValue: dec(1), Steps: 0}, "steps must be at least 1"},
		{"inverted range", domain.SensitivityParameter{Name: domain.ParamMonthlySaving, MinValue: dec(2), MaxValue: dec(1), Steps: 2}, "greater than max value"},
		{"unknown field", domain.SensitivityParameter{Name: "salary", MinValue: dec(0), MaxValue: dec(1), Steps: 2}, "unknown sweep parameter"},
		{"undefined real rate", domain.SensitivityParameter{Name: domain.ParamInflationRate, MinValue: dec(-100), MaxValue: dec(0), Steps: 2}, "not greater than -100%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sweep(defaultInput(), tt.param)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
