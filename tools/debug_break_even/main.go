package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/paradise-calc/paradise/internal/calculation"
	"github.com/paradise-calc/paradise/internal/config"
	"github.com/paradise-calc/paradise/internal/domain"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <config-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	res, err := calc.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	if err != nil {
		panic(err)
	}
	all := append([]domain.ScenarioSummary{res.Plan}, res.Scenarios...)

	// Find the minimum projection length across scenarios
	minLen := -1
	for _, s := range all {
		if minLen == -1 || len(s.Projection) < minLen {
			minLen = len(s.Projection)
		}
	}
	if minLen <= 0 {
		fmt.Println("no projection data")
		return
	}

	header := "Index,Age,Year"
	for _, s := range all {
		header += fmt.Sprintf(",%s_Assets,%s_Passive,%s_Paradise", s.Name, s.Name, s.Name)
	}
	fmt.Println(header)

	for idx := 0; idx < minLen; idx++ {
		first := all[0].Projection[idx]
		row := fmt.Sprintf("%d,%d,%d", idx, first.Age, first.Year)
		for _, s := range all {
			pt := s.Projection[idx]
			row += fmt.Sprintf(",%d,%d,%t", pt.TotalAssets, pt.PassiveIncome, pt.IsParadise)
		}
		fmt.Println(row)
	}

	if res.Comparison != nil {
		fmt.Printf("\nGap %s-%s at %d: %d (target age %d: %d)\n", res.Comparison.NameA, res.Comparison.NameB,
			res.Comparison.Insight.Age, res.Comparison.Insight.Gap, res.Comparison.Target.Age, res.Comparison.Target.Gap)
	}

	// Saving needed to reach paradise five years before the plan does.
	plan := res.Plan
	if plan.ParadiseReached && plan.ParadiseAge-5 >= plan.Input.CurrentAge {
		be, err := calc.RequiredMonthlySaving(plan.Input, plan.ParadiseAge-5)
		fmt.Printf("\nBreakEven: %+v, err=%v\n", be, err)
	}
}
