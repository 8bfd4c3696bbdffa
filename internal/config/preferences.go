package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/shopspring/decimal"
)

const appName = "paradise"

// Preferences holds everything paradise remembers between runs.
type Preferences struct {
	General   GeneralPreferences `toml:"general"`
	LastInput LastInput          `toml:"last_input"`
}

// GeneralPreferences holds output defaults.
type GeneralPreferences struct {
	DefaultFormat string `toml:"default_format"`
	SaveHistory   bool   `toml:"save_history"`
	HistoryLimit  int    `toml:"history_limit"`
}

// LastInput is the most recently used projection input.
type LastInput struct {
	InitialCapital        float64 `toml:"initial_capital"`
	MonthlySaving         float64 `toml:"monthly_saving"`
	AnnualReturnRate      float64 `toml:"annual_return_rate"`
	InflationRate         float64 `toml:"inflation_rate"`
	TargetMonthlySpending float64 `toml:"target_monthly_spending"`
	CurrentAge            int     `toml:"current_age"`
}

// DefaultInput returns the calculator's starting values: 1억 capital, 300만 saved a
// month at 7% with 2.5% inflation, targeting 500만 a month from age 35.
func DefaultInput() domain.ProjectionInput {
	return domain.ProjectionInput{
		InitialCapital:        decimal.NewFromInt(100_000_000),
		MonthlySaving:         decimal.NewFromInt(3_000_000),
		AnnualReturnRate:      decimal.NewFromInt(7),
		InflationRate:         decimal.NewFromFloat(2.5),
		TargetMonthlySpending: decimal.NewFromInt(5_000_000),
		CurrentAge:            35,
	}
}

// DefaultPreferences returns the preferences used when no file exists.
func DefaultPreferences() Preferences {
	return Preferences{
		General: GeneralPreferences{
			DefaultFormat: "console",
			HistoryLimit:  20,
		},
		LastInput: LastInputFrom(DefaultInput()),
	}
}

// LastInputFrom converts a projection input for storage.
func LastInputFrom(in domain.ProjectionInput) LastInput {
	return LastInput{
		InitialCapital:        in.InitialCapital.InexactFloat64(),
		MonthlySaving:         in.MonthlySaving.InexactFloat64(),
		AnnualReturnRate:      in.AnnualReturnRate.InexactFloat64(),
		InflationRate:         in.InflationRate.InexactFloat64(),
		TargetMonthlySpending: in.TargetMonthlySpending.InexactFloat64(),
		CurrentAge:            in.CurrentAge,
	}
}

// Input converts the stored values back to a projection input.
func (l LastInput) Input() domain.ProjectionInput {
	return domain.ProjectionInput{
		InitialCapital:        decimal.NewFromFloat(l.InitialCapital),
		MonthlySaving:         decimal.NewFromFloat(l.MonthlySaving),
		AnnualReturnRate:      decimal.NewFromFloat(l.AnnualReturnRate),
		InflationRate:         decimal.NewFromFloat(l.InflationRate),
		TargetMonthlySpending: decimal.NewFromFloat(l.TargetMonthlySpending),
		CurrentAge:            l.CurrentAge,
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// DataDir returns the XDG-compliant data directory holding the run history.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", appName)
}

// PreferencesPath returns the full path to the preferences file.
func PreferencesPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// HistoryPath returns the full path to the history database.
func HistoryPath() string {
	return filepath.Join(DataDir(), "history.db")
}

// LoadPreferences reads the preferences file, returning defaults if it doesn't exist.
func LoadPreferences() (Preferences, error) {
	prefs := DefaultPreferences()

	data, err := os.ReadFile(PreferencesPath())
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("reading preferences: %w", err)
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("parsing preferences: %w", err)
	}

	return prefs, nil
}

// SavePreferences writes the preferences to disk.
func SavePreferences(prefs Preferences) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(PreferencesPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating preferences file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(prefs)
}

// RememberInput stores in as the last-used input, keeping the other preferences.
func RememberInput(in domain.ProjectionInput) error {
	prefs, err := LoadPreferences()
	if err != nil {
		return err
	}
	prefs.LastInput = LastInputFrom(in)
	return SavePreferences(prefs)
}

// PreferencesExist returns true if a preferences file exists on disk.
func PreferencesExist() bool {
	_, err := os.Stat(PreferencesPath())
	return err == nil
}
