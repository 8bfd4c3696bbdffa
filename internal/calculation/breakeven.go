package calculation

import (
	"errors"
	"fmt"

	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrTargetUnreachable is returned when no monthly saving reaches paradise by the
// requested age, e.g. because the real return is not positive.
var ErrTargetUnreachable = errors.New("target not reachable")

// BreakEvenResult is the smallest monthly saving that reaches paradise by an age.
type BreakEvenResult struct {
	TargetAge     int                    `json:"target_age"`
	MonthlySaving decimal.Decimal        `json:"monthly_saving"`
	Point         domain.ProjectionPoint `json:"point"`
	Iterations    int                    `json:"iterations"`
}

// RequiredMonthlySaving searches for the smallest monthly saving (to the nearest
// currency unit) with which the input reaches paradise at or before targetAge.
// The input's own MonthlySaving is ignored.
func RequiredMonthlySaving(in domain.ProjectionInput, targetAge int) (*BreakEvenResult, error) {
	if targetAge < in.CurrentAge || targetAge > MaxAge {
		return nil, fmt.Errorf("target age %d must be between current age %d and %d", targetAge, in.CurrentAge, MaxAge)
	}
	if in.InflationRate.LessThanOrEqual(minInflation) {
		return nil, fmt.Errorf("inflation rate must be greater than -100%%, got %s%%", in.InflationRate)
	}

	reachedWith := func(saving float64) (domain.ProjectionPoint, bool) {
		trial := in
		trial.MonthlySaving = decimal.NewFromFloat(saving)
		p, ok := FirstParadisePoint(Project(trial))
		return p, ok && p.Age <= targetAge
	}

	if p, ok := reachedWith(0); ok {
		return &BreakEvenResult{TargetAge: targetAge, MonthlySaving: decimal.Zero, Point: p}, nil
	}

	// Grow the upper bound until it reaches the target.
	const maxIterations = 200
	hi := 1000.0
	iterations := 0
	for ; iterations < maxIterations; iterations++ {
		if _, ok := reachedWith(hi); ok {
			break
		}
		hi *= 2
		if hi > AssetCeiling {
			return nil, fmt.Errorf("%w by age %d", ErrTargetUnreachable, targetAge)
		}
	}

	lo := 0.0
	for ; iterations < maxIterations && hi-lo > 1; iterations++ {
		mid := lo + (hi-lo)/2
		if _, ok := reachedWith(mid); ok {
			hi = mid
		} else {
			lo = mid
		}
	}

	saving := decimal.NewFromFloat(hi).Ceil()
	p, ok := reachedWith(saving.InexactFloat64())
	if !ok {
		return nil, fmt.Errorf("%w by age %d", ErrTargetUnreachable, targetAge)
	}
	return &BreakEvenResult{TargetAge: targetAge, MonthlySaving: saving, Point: p, Iterations: iterations}, nil
}
