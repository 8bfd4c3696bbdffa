package calculation

import (
	"context"
	"fmt"
	"sync"

	"github.com/paradise-calc/paradise/internal/domain"
)

// CalculationEngine orchestrates projections for a configuration's plan and scenarios.
type CalculationEngine struct {
	Debug  bool // Log every projected year at debug level
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunScenario projects one scenario of a configuration and derives its summary.
func (ce *CalculationEngine) RunScenario(ctx context.Context, config *domain.Configuration, params domain.ScenarioParams) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// Guarded here because Project itself does not validate.
	if config.Shared.InflationRate.LessThanOrEqual(minInflation) {
		return nil, fmt.Errorf("scenario %q: inflation rate must be greater than -100%%, got %s%%",
			params.Name, config.Shared.InflationRate.String())
	}

	in := config.InputFor(params)
	points := Project(in)
	summary := Summarize(params.Name, in, points)

	if ce.Debug {
		for _, p := range points {
			ce.Logger.Debugf("%s age=%d assets=%d passive=%d paradise=%t", params.Name, p.Age, p.TotalAssets, p.PassiveIncome, p.IsParadise)
		}
	}
	if summary.ParadiseReached {
		ce.Logger.Infof("scenario %s reaches paradise at age %d (%d years)", params.Name, summary.ParadiseAge, summary.YearsUntilParadise)
	} else {
		ce.Logger.Infof("scenario %s does not reach paradise by age %d", params.Name, summary.FinalAge)
	}
	if summary.EndedEarly {
		ce.Logger.Warnf("scenario %s stopped at age %d: assets exceeded the projection ceiling", params.Name, summary.FinalAge)
	}
	return &summary, nil
}

// RunScenarios projects the plan and every scenario concurrently, then compares the
// first two scenarios using the plan's chart window.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	all := append([]domain.ScenarioParams{config.PlanParams()}, config.Scenarios...)
	summaries := make([]domain.ScenarioSummary, len(all))
	errs := make([]error, len(all))

	var wg sync.WaitGroup
	for i, params := range all {
		wg.Add(1)
		go func(i int, params domain.ScenarioParams) {
			defer wg.Done()
			s, err := ce.RunScenario(ctx, config, params)
			if err != nil {
				errs[i] = err
				return
			}
			summaries[i] = *s
		}(i, params)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("RunScenario failed: %w", err)
		}
	}

	comparison := &domain.ScenarioComparison{
		Shared:                config.Shared,
		Plan:                  summaries[0],
		Scenarios:             summaries[1:],
		FourPercentRuleAssets: FourPercentRuleAssets(config.Shared.TargetMonthlySpending),
		Assumptions:           GenerateAssumptions(config),
	}
	if len(comparison.Scenarios) >= 2 {
		comparison.Comparison = ComparePair(comparison.Plan, comparison.Scenarios[0], comparison.Scenarios[1])
	}
	return comparison, nil
}

// ComparePair zips scenarios a and b, trims the result to the plan's chart window
// and computes the visible gap and the summary-card target gap.
func ComparePair(plan, a, b domain.ScenarioSummary) *domain.PairComparison {
	full := CompareScenarios(a.Projection, b.Projection)
	visible := TrimComparison(full, plan.Projection)

	pc := &domain.PairComparison{
		NameA:   a.Name,
		NameB:   b.Name,
		Points:  visible,
		Insight: AssetGap(visible),
	}
	if idx := SummaryTargetIndex(plan.Projection, plan.Input.CurrentAge, len(full)); idx >= 0 {
		pc.Target = domain.GapInsight{Age: full[idx].Age, Gap: full[idx].AssetsA - full[idx].AssetsB}
	}
	return pc
}
