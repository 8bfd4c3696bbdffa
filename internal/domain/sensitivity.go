package domain

import (
	"github.com/shopspring/decimal"
)

// Sweepable parameter names.
const (
	ParamAnnualReturnRate      = "annual_return_rate"
	ParamInflationRate         = "inflation_rate"
	ParamMonthlySaving         = "monthly_saving"
	ParamInitialCapital        = "initial_capital"
	ParamTargetMonthlySpending = "target_monthly_spending"
)

// SensitivityParameter describes a one-dimensional sweep over an input field.
type SensitivityParameter struct {
	Name     string          `yaml:"name" json:"name"`
	MinValue decimal.Decimal `yaml:"min_value" json:"min_value"`
	MaxValue decimal.Decimal `yaml:"max_value" json:"max_value"`
	Steps    int             `yaml:"steps" json:"steps"`
}

// SensitivityResult is the outcome for one swept value.
type SensitivityResult struct {
	Value              decimal.Decimal `json:"value"`
	ParadiseReached    bool            `json:"paradise_reached"`
	ParadiseAge        int             `json:"paradise_age,omitempty"`
	YearsUntilParadise int             `json:"years_until_paradise,omitempty"`
	FinalAge           int             `json:"final_age"`
	FinalAssets        int64           `json:"final_assets"`
}
