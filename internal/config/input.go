package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidInput is wrapped by every ValidationError.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError reports a single invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Message }

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

const (
	MinAge = 0
	MaxAge = 100
)

var minRate = decimal.NewFromInt(-100)

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a configuration from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a configuration document.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the shared assumptions, the plan and every scenario
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ValidateShared(&config.Shared); err != nil {
		return err
	}

	if err := validateScenario("plan", &config.Plan); err != nil {
		return err
	}

	seen := map[string]bool{domain.PlanScenarioName: true}
	if config.Plan.Name != "" {
		seen[config.Plan.Name] = true
	}
	for i, scenario := range config.Scenarios {
		field := fmt.Sprintf("scenarios[%d]", i)
		if scenario.Name == "" {
			return invalid(field+".name", "scenario name is required")
		}
		if seen[scenario.Name] {
			return invalid(field+".name", "duplicate scenario name %q", scenario.Name)
		}
		seen[scenario.Name] = true

		if err := validateScenario(field, &scenario); err != nil {
			return err
		}
	}

	return nil
}

// ValidateShared checks the fields every scenario shares.
func ValidateShared(shared *domain.SharedAssumptions) error {
	if shared.CurrentAge < MinAge || shared.CurrentAge > MaxAge {
		return invalid("current_age", "must be between %d and %d, got %d", MinAge, MaxAge, shared.CurrentAge)
	}
	// -100% inflation makes the real rate undefined.
	if shared.InflationRate.LessThanOrEqual(minRate) {
		return invalid("inflation_rate", "must be greater than -100%%, got %s%%", shared.InflationRate)
	}
	if shared.TargetMonthlySpending.LessThan(decimal.Zero) {
		return invalid("target_monthly_spending", "cannot be negative")
	}
	return nil
}

// validateScenario checks per-scenario fields. Monthly saving is not checked:
// negative values model withdrawals.
func validateScenario(field string, scenario *domain.ScenarioParams) error {
	if scenario.InitialCapital.LessThan(decimal.Zero) {
		return invalid(field+".initial_capital", "cannot be negative")
	}
	if scenario.AnnualReturnRate.LessThanOrEqual(minRate) {
		return invalid(field+".annual_return_rate", "must be greater than -100%%, got %s%%", scenario.AnnualReturnRate)
	}
	return nil
}

// ValidateInput validates a single projection input.
func ValidateInput(in *domain.ProjectionInput) error {
	cfg := domain.ConfigurationFromInput(*in)
	if err := ValidateShared(&cfg.Shared); err != nil {
		return err
	}
	return validateScenario("input", &cfg.Plan)
}

// CreateExampleConfiguration returns the calculator defaults: a 7% plan compared
// against an aggressive 10% and a stable 4% scenario.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	config := domain.ConfigurationFromInput(DefaultInput())
	for _, alt := range []struct {
		name string
		rate int64
	}{{"aggressive", 10}, {"stable", 4}} {
		params := config.Plan
		params.Name = alt.name
		params.AnnualReturnRate = decimal.NewFromInt(alt.rate)
		config.Scenarios = append(config.Scenarios, params)
	}
	return config
}

// SaveConfiguration writes a configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
