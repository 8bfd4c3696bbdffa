package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionInput holds the six scalar parameters of a single projection.
// Rates are percentages: 7 means 7% per year.
type ProjectionInput struct {
	InitialCapital        decimal.Decimal `yaml:"initial_capital" json:"initial_capital"`
	MonthlySaving         decimal.Decimal `yaml:"monthly_saving" json:"monthly_saving"`
	AnnualReturnRate      decimal.Decimal `yaml:"annual_return_rate" json:"annual_return_rate"`
	InflationRate         decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	TargetMonthlySpending decimal.Decimal `yaml:"target_monthly_spending" json:"target_monthly_spending"`
	CurrentAge            int             `yaml:"current_age" json:"current_age"`
}

// ProjectionPoint is one simulated year. Amounts are in real (inflation-adjusted)
// terms and floored to whole currency units.
type ProjectionPoint struct {
	Age           int   `json:"age"`
	Year          int   `json:"year"`
	TotalAssets   int64 `json:"total_assets"`
	PassiveIncome int64 `json:"passive_income"`
	IsParadise    bool  `json:"is_paradise"`
}

// ScenarioSummary provides the key metrics of a single projected scenario.
type ScenarioSummary struct {
	Name  string          `json:"name"`
	Input ProjectionInput `json:"input"`

	// Paradise metrics are only meaningful when ParadiseReached is true.
	ParadiseReached       bool  `json:"paradise_reached"`
	ParadiseAge           int   `json:"paradise_age,omitempty"`
	YearsUntilParadise    int   `json:"years_until_paradise,omitempty"`
	MonthsUntilParadise   int   `json:"months_until_paradise,omitempty"`
	ParadiseAssets        int64 `json:"paradise_assets,omitempty"`
	ParadisePassiveIncome int64 `json:"paradise_passive_income,omitempty"`

	FinalAge    int   `json:"final_age"`
	FinalAssets int64 `json:"final_assets"`
	// EndedEarly is set when the series stopped at the asset ceiling before age 100.
	EndedEarly bool `json:"ended_early"`

	Projection []ProjectionPoint `json:"projection"`
}

// ComparisonPoint zips two scenario series at the same age.
type ComparisonPoint struct {
	Age         int   `json:"age"`
	AssetsA     int64 `json:"assets_a"`
	AssetsB     int64 `json:"assets_b"`
	IsParadiseA bool  `json:"is_paradise_a"`
	IsParadiseB bool  `json:"is_paradise_b"`
}

// GapInsight is the asset difference between two scenarios at one age.
type GapInsight struct {
	Age int   `json:"age"`
	Gap int64 `json:"gap"`
}

// PairComparison compares the first two configured scenarios.
type PairComparison struct {
	NameA  string            `json:"name_a"`
	NameB  string            `json:"name_b"`
	Points []ComparisonPoint `json:"points"`
	// Insight is taken at the last point of Points.
	Insight GapInsight `json:"insight"`
	// Target is the summary-card comparison age: the plan's paradise age, or 70.
	Target GapInsight `json:"target"`
}

// ScenarioComparison is the full result of running a configuration.
type ScenarioComparison struct {
	Shared    SharedAssumptions `json:"shared"`
	Plan      ScenarioSummary   `json:"plan"`
	Scenarios []ScenarioSummary `json:"scenarios"`
	// Comparison is nil when fewer than two scenarios are configured.
	Comparison *PairComparison `json:"comparison,omitempty"`
	// FourPercentRuleAssets is the asset level at which the 4% rule would cover the target.
	FourPercentRuleAssets decimal.Decimal `json:"four_percent_rule_assets"`
	Assumptions           []string        `json:"assumptions"`
}

// Scenario returns the summary with the given name.
func (sc *ScenarioComparison) Scenario(name string) (ScenarioSummary, bool) {
	for _, s := range sc.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return ScenarioSummary{}, false
}
