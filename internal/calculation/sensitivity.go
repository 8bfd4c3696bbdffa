package calculation

import (
	"fmt"

	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/shopspring/decimal"
)

// Sweep projects the base input once per value of p, spread evenly from MinValue to
// MaxValue inclusive. A single step uses MinValue.
func Sweep(base domain.ProjectionInput, p domain.SensitivityParameter) ([]domain.SensitivityResult, error) {
	if p.Steps < 1 {
		return nil, fmt.Errorf("sweep %s: steps must be at least 1, got %d", p.Name, p.Steps)
	}
	if p.MinValue.GreaterThan(p.MaxValue) {
		return nil, fmt.Errorf("sweep %s: min value %s is greater than max value %s", p.Name, p.MinValue, p.MaxValue)
	}

	stride := decimal.Zero
	if p.Steps > 1 {
		stride = p.MaxValue.Sub(p.MinValue).Div(decimal.NewFromInt(int64(p.Steps - 1)))
	}

	results := make([]domain.SensitivityResult, 0, p.Steps)
	for i := 0; i < p.Steps; i++ {
		value := p.MinValue.Add(stride.Mul(decimal.NewFromInt(int64(i))))
		if i == p.Steps-1 && p.Steps > 1 {
			value = p.MaxValue
		}
		in, err := withParameter(base, p.Name, value)
		if err != nil {
			return nil, err
		}
		if in.InflationRate.LessThanOrEqual(minInflation) {
			return nil, fmt.Errorf("sweep %s: inflation rate %s%% is not greater than -100%%", p.Name, in.InflationRate)
		}

		s := Summarize(p.Name, in, Project(in))
		results = append(results, domain.SensitivityResult{
			Value:              value,
			ParadiseReached:    s.ParadiseReached,
			ParadiseAge:        s.ParadiseAge,
			YearsUntilParadise: s.YearsUntilParadise,
			FinalAge:           s.FinalAge,
			FinalAssets:        s.FinalAssets,
		})
	}
	return results, nil
}

func withParameter(in domain.ProjectionInput, name string, value decimal.Decimal) (domain.ProjectionInput, error) {
	switch name {
	case domain.ParamAnnualReturnRate:
		in.AnnualReturnRate = value
	case domain.ParamInflationRate:
		in.InflationRate = value
	case domain.ParamMonthlySaving:
		in.MonthlySaving = value
	case domain.ParamInitialCapital:
		in.InitialCapital = value
	case domain.ParamTargetMonthlySpending:
		in.TargetMonthlySpending = value
	default:
		return in, fmt.Errorf("unknown sweep parameter %q", name)
	}
	return in, nil
}
