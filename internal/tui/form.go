package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/paradise-calc/paradise/internal/config"
	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/paradise-calc/paradise/pkg/money"
	"github.com/shopspring/decimal"
)

// PlanForm holds the text a user types into the plan form. Amounts accept
// separators and 억/만 suffixes.
type PlanForm struct {
	InitialCapital        string
	MonthlySaving         string
	AnnualReturnRate      string
	InflationRate         string
	TargetMonthlySpending string
	CurrentAge            string
}

// NewPlanForm pre-fills the form from in.
func NewPlanForm(in domain.ProjectionInput) *PlanForm {
	return &PlanForm{
		InitialCapital:        money.NewMoneyFromDecimal(in.InitialCapital).FormatGrouped(),
		MonthlySaving:         money.NewMoneyFromDecimal(in.MonthlySaving).FormatGrouped(),
		AnnualReturnRate:      in.AnnualReturnRate.String(),
		InflationRate:         in.InflationRate.String(),
		TargetMonthlySpending: money.NewMoneyFromDecimal(in.TargetMonthlySpending).FormatGrouped(),
		CurrentAge:            strconv.Itoa(in.CurrentAge),
	}
}

func validateAmount(s string) error {
	_, err := money.Parse(s)
	return err
}

func validateRate(s string) error {
	_, err := parseRate(s)
	return err
}

func validateAge(s string) error {
	_, err := parseAge(s)
	return err
}

func parseRate(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid rate %q", s)
	}
	return v, nil
}

func parseAge(s string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || age < config.MinAge || age > config.MaxAge {
		return 0, fmt.Errorf("age must be a whole number between %d and %d", config.MinAge, config.MaxAge)
	}
	return age, nil
}

// Form builds the huh form bound to f's fields.
func (f *PlanForm) Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("초기 자본 (원)").Description("예: 100,000,000 또는 1억").
				Value(&f.InitialCapital).Validate(validateAmount),
			huh.NewInput().Title("월 저축액 (원)").Description("예: 3,000,000 또는 300만").
				Value(&f.MonthlySaving).Validate(validateAmount),
			huh.NewInput().Title("연 수익률 (%)").
				Value(&f.AnnualReturnRate).Validate(validateRate),
		),
		huh.NewGroup(
			huh.NewInput().Title("물가상승률 (%)").
				Value(&f.InflationRate).Validate(validateRate),
			huh.NewInput().Title("목표 월 생활비 (원)").
				Value(&f.TargetMonthlySpending).Validate(validateAmount),
			huh.NewInput().Title("현재 나이").
				Value(&f.CurrentAge).Validate(validateAge),
		),
	)
}

// Input converts the typed values and validates the result.
func (f *PlanForm) Input() (domain.ProjectionInput, error) {
	var in domain.ProjectionInput

	for _, a := range []struct {
		text string
		dst  *decimal.Decimal
	}{
		{f.InitialCapital, &in.InitialCapital},
		{f.MonthlySaving, &in.MonthlySaving},
		{f.TargetMonthlySpending, &in.TargetMonthlySpending},
	} {
		m, err := money.Parse(a.text)
		if err != nil {
			return in, err
		}
		*a.dst = m.Decimal
	}

	var err error
	if in.AnnualReturnRate, err = parseRate(f.AnnualReturnRate); err != nil {
		return in, err
	}
	if in.InflationRate, err = parseRate(f.InflationRate); err != nil {
		return in, err
	}
	if in.CurrentAge, err = parseAge(f.CurrentAge); err != nil {
		return in, err
	}

	if err := config.ValidateInput(&in); err != nil {
		return in, err
	}
	return in, nil
}

// RunPlanForm shows the form pre-filled with defaults and returns the entered input.
func RunPlanForm(defaults domain.ProjectionInput) (domain.ProjectionInput, error) {
	f := NewPlanForm(defaults)
	if err := f.Form().Run(); err != nil {
		return domain.ProjectionInput{}, err
	}
	return f.Input()
}
