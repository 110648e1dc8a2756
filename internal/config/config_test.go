package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.ForecastMonths != 24 {
		t.Errorf("ForecastMonths = %d, want 24", cfg.General.ForecastMonths)
	}
	if cfg.Company.Name != "BlackRoad OS, Inc." {
		t.Errorf("Company.Name = %q", cfg.Company.Name)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[general]
output_dir = "out"
forecast_months = 12

[company]
name = "Acme"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want out", cfg.General.OutputDir)
	}
	if cfg.General.ForecastMonths != 12 {
		t.Errorf("ForecastMonths = %d, want 12", cfg.General.ForecastMonths)
	}
	if cfg.Company.Name != "Acme" {
		t.Errorf("Company.Name = %q, want Acme", cfg.Company.Name)
	}
	// Unset keys keep their defaults.
	if cfg.General.InputDir != "." {
		t.Errorf("InputDir = %q, want .", cfg.General.InputDir)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[general]\nforecast_months = 12\n")
	t.Setenv("FINANCE_FORECAST_MONTHS", "36")
	t.Setenv("FINANCE_OUTPUT_DIR", "/tmp/reports")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.ForecastMonths != 36 {
		t.Errorf("ForecastMonths = %d, want 36", cfg.General.ForecastMonths)
	}
	if cfg.General.OutputDir != "/tmp/reports" {
		t.Errorf("OutputDir = %q", cfg.General.OutputDir)
	}
}

func TestLoad_RejectsNonPositiveHorizon(t *testing.T) {
	path := writeConfig(t, "[general]\nforecast_months = 0\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for forecast_months = 0")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "[general\nforecast_months = ")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDefaultScenarioModel_PlansCoverEveryPeriod(t *testing.T) {
	for _, s := range DefaultScenarioModel.Streams {
		for _, p := range model.Periods() {
			if _, ok := s.Plan[p]; !ok {
				t.Errorf("stream %s has no plan for %s", s.Key, p.Key())
			}
		}
		for _, sc := range model.Scenarios {
			if _, ok := s.Scenarios[sc]; !ok {
				t.Errorf("stream %s has no %s projection", s.Key, sc)
			}
		}
	}
	for _, p := range model.Periods() {
		if _, ok := DefaultScenarioModel.AnnualExpenses[p]; !ok {
			t.Errorf("no expense reference for %s", p.Key())
		}
	}
}
