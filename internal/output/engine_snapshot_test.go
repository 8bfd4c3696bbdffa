package output

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/goccy/go-json"
	"github.com/paradise-calc/paradise/internal/calculation"
	"github.com/paradise-calc/paradise/internal/config"
)

type snapshotScenario struct {
	Name            string `json:"name"`
	ParadiseReached bool   `json:"paradise_reached"`
	ParadiseAge     int    `json:"paradise_age"`
	YearsUntil      int    `json:"years_until_paradise"`
	FinalAge        int    `json:"final_age"`
}

type engineSnapshot struct {
	Scenarios []snapshotScenario `json:"scenarios"`
}

// TestEngineSnapshot pins the paradise ages of the example plan file.
func TestEngineSnapshot(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile("../../example_config.yaml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	res, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run scenarios: %v", err)
	}

	var have engineSnapshot
	for _, sc := range allScenarios(res) {
		have.Scenarios = append(have.Scenarios, snapshotScenario{
			Name:            sc.Name,
			ParadiseReached: sc.ParadiseReached,
			ParadiseAge:     sc.ParadiseAge,
			YearsUntil:      sc.YearsUntilParadise,
			FinalAge:        sc.FinalAge,
		})
	}

	goldenPath := filepath.Join("testdata", "engine_snapshot.golden.json")
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		data, _ := json.MarshalIndent(have, "", "  ")
		if err := os.WriteFile(goldenPath, append(data, '\n'), 0644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}
	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	var want engineSnapshot
	if err := json.Unmarshal(golden, &want); err != nil {
		t.Fatalf("parse golden: %v", err)
	}
	if !reflect.DeepEqual(have, want) {
		t.Fatalf("engine snapshot drift; run UPDATE_GOLDEN=1 to accept\n--- have ---\n%+v\n--- want ---\n%+v", have, want)
	}
}
