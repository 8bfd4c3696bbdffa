package domain

import (
	"github.com/shopspring/decimal"
)

// PlanScenarioName is the name given to the configuration's own plan.
const PlanScenarioName = "plan"

// SharedAssumptions are the fields every scenario of a configuration shares.
type SharedAssumptions struct {
	InflationRate         decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	TargetMonthlySpending decimal.Decimal `yaml:"target_monthly_spending" json:"target_monthly_spending"`
	CurrentAge            int             `yaml:"current_age" json:"current_age"`
}

// ScenarioParams are the per-scenario overrides.
type ScenarioParams struct {
	Name             string          `yaml:"name" json:"name"`
	InitialCapital   decimal.Decimal `yaml:"initial_capital" json:"initial_capital"`
	MonthlySaving    decimal.Decimal `yaml:"monthly_saving" json:"monthly_saving"`
	AnnualReturnRate decimal.Decimal `yaml:"annual_return_rate" json:"annual_return_rate"`
}

// Configuration is a plan file: shared assumptions, the user's own plan and any
// number of named alternate scenarios evaluated against the same assumptions.
type Configuration struct {
	Shared    SharedAssumptions `yaml:"shared" json:"shared"`
	Plan      ScenarioParams    `yaml:"plan" json:"plan"`
	Scenarios []ScenarioParams  `yaml:"scenarios" json:"scenarios"`
}

// InputFor merges the shared assumptions with a scenario's overrides.
func (c *Configuration) InputFor(p ScenarioParams) ProjectionInput {
	return ProjectionInput{
		InitialCapital:        p.InitialCapital,
		MonthlySaving:         p.MonthlySaving,
		AnnualReturnRate:      p.AnnualReturnRate,
		InflationRate:         c.Shared.InflationRate,
		TargetMonthlySpending: c.Shared.TargetMonthlySpending,
		CurrentAge:            c.Shared.CurrentAge,
	}
}

// PlanParams returns the plan with its name defaulted.
func (c *Configuration) PlanParams() ScenarioParams {
	p := c.Plan
	if p.Name == "" {
		p.Name = PlanScenarioName
	}
	return p
}

// ConfigurationFromInput wraps a single input as a configuration with no alternates.
func ConfigurationFromInput(in ProjectionInput) *Configuration {
	return &Configuration{
		Shared: SharedAssumptions{
			InflationRate:         in.InflationRate,
			TargetMonthlySpending: in.TargetMonthlySpending,
			CurrentAge:            in.CurrentAge,
		},
		Plan: ScenarioParams{
			Name:             PlanScenarioName,
			InitialCapital:   in.InitialCapital,
			MonthlySaving:    in.MonthlySaving,
			AnnualReturnRate: in.AnnualReturnRate,
		},
	}
}
