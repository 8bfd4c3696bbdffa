package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paradise-calc/paradise/internal/calculation"
	"github.com/paradise-calc/paradise/internal/config"
	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/paradise-calc/paradise/internal/output"
	"github.com/paradise-calc/paradise/internal/store"
)

func runExample(t *testing.T) *domain.ScenarioComparison {
	t.Helper()
	cfg, err := config.NewInputParser().LoadFromFile(exampleConfig)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	results, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return results
}

func TestGenerateAllReports(t *testing.T) {
	results := runExample(t)
	dir := t.TempDir()

	files, err := output.GenerateReport(results, "all", dir)
	if err != nil {
		t.Fatalf("GenerateReport error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(files))
	}
	for _, f := range files {
		fi, err := os.Stat(f)
		if err != nil {
			t.Fatalf("expected %s to exist: %v", f, err)
		}
		if fi.Size() == 0 {
			t.Fatalf("expected non-empty %s", f)
		}
	}
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	out := filepath.Join(t.TempDir(), "plan.yaml")
	if err := config.SaveConfiguration(parser.CreateExampleConfiguration(), out); err != nil {
		t.Fatalf("SaveConfiguration error: %v", err)
	}
	cfg, err := parser.LoadFromFile(out)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	var sb strings.Builder
	results, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := output.WriteReport(&sb, results, "summary"); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	if !strings.Contains(sb.String(), "55세") {
		t.Fatalf("console report missing plan paradise age:\n%s", sb.String())
	}
}

func TestHistoryRecordsPlan(t *testing.T) {
	results := runExample(t)
	st, err := store.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer st.Close()

	ctx := context.Background()
	id, err := st.SaveRun(ctx, results.Plan.Name, results.Plan.Input, results.Plan)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	rec, err := st.GetRun(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !rec.ParadiseReached || rec.ParadiseAge != 55 || rec.YearsUntilParadise != 20 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if !rec.Input.InitialCapital.Equal(results.Plan.Input.InitialCapital) {
		t.Fatalf("input not preserved: %s", rec.Input.InitialCapital)
	}
}
