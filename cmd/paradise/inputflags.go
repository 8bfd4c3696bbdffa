package main

import (
	"fmt"
	"strings"

	"github.com/paradise-calc/paradise/internal/config"
	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/paradise-calc/paradise/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// inputFlags are the six projection inputs as command-line flags. Unset flags fall
// back to the last-used values from preferences.
type inputFlags struct {
	capital   string
	saving    string
	target    string
	rate      float64
	inflation float64
	age       int
}

func (f *inputFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.capital, "capital", "", "Initial capital in won (1억, 100,000,000)")
	fl.StringVar(&f.saving, "saving", "", "Monthly saving in won")
	fl.StringVar(&f.target, "target", "", "Target monthly spending in won")
	fl.Float64Var(&f.rate, "return", 0, "Expected annual return, percent")
	fl.Float64Var(&f.inflation, "inflation", 0, "Annual inflation, percent")
	fl.IntVar(&f.age, "age", 0, "Current age")
}

// resolve overlays the flags the user set onto base and validates the result.
func (f *inputFlags) resolve(cmd *cobra.Command, base domain.ProjectionInput) (domain.ProjectionInput, error) {
	in := base
	fl := cmd.Flags()

	amounts := []struct {
		flag string
		text string
		dst  *decimal.Decimal
	}{
		{"capital", f.capital, &in.InitialCapital},
		{"saving", f.saving, &in.MonthlySaving},
		{"target", f.target, &in.TargetMonthlySpending},
	}
	for _, a := range amounts {
		if !fl.Changed(a.flag) {
			continue
		}
		m, err := money.Parse(a.text)
		if err != nil {
			return in, fmt.Errorf("--%s: %w", a.flag, err)
		}
		*a.dst = m.Decimal
	}
	if fl.Changed("return") {
		in.AnnualReturnRate = decimal.NewFromFloat(f.rate)
	}
	if fl.Changed("inflation") {
		in.InflationRate = decimal.NewFromFloat(f.inflation)
	}
	if fl.Changed("age") {
		in.CurrentAge = f.age
	}

	if err := config.ValidateInput(&in); err != nil {
		return in, err
	}
	return in, nil
}

// describe is a one-line summary of an input for history listings.
func describe(in domain.ProjectionInput) string {
	return strings.Join([]string{
		money.NewMoneyFromDecimal(in.InitialCapital).FormatCompact(),
		money.NewMoneyFromDecimal(in.MonthlySaving).FormatCompact() + "/월",
		in.AnnualReturnRate.String() + "%",
	}, " ")
}
