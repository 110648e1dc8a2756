// Package config holds user configuration and the compiled-in scenario model.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all finance configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Company CompanyConfig `toml:"company"`
	Deck    DeckConfig    `toml:"deck"`
}

// GeneralConfig holds input/output locations and the forecast horizon.
type GeneralConfig struct {
	InputDir       string `toml:"input_dir" env:"FINANCE_INPUT_DIR"`
	OutputDir      string `toml:"output_dir" env:"FINANCE_OUTPUT_DIR"`
	ForecastMonths int    `toml:"forecast_months" env:"FINANCE_FORECAST_MONTHS"`
}

// CompanyConfig holds the identity printed on every report.
type CompanyConfig struct {
	Name      string `toml:"name" env:"FINANCE_COMPANY_NAME"`
	Copyright string `toml:"copyright"`
	Founder   string `toml:"founder"`
	Title     string `toml:"title"`
	Email     string `toml:"email"`
	Website   string `toml:"website"`
	LinkedIn  string `toml:"linkedin"`
	GitHub    string `toml:"github"`
	Location  string `toml:"location"`
}

// DeckConfig holds presentation-only text.
type DeckConfig struct {
	Title    string `toml:"title"`
	Tagline  string `toml:"tagline"`
	Subtitle string `toml:"subtitle"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			InputDir:       ".",
			OutputDir:      ".",
			ForecastMonths: 24,
		},
		Company: CompanyConfig{
			Name:      "BlackRoad OS, Inc.",
			Copyright: "© 2023-2025 BlackRoad OS, Inc.",
			Founder:   "Alexa Louise Amundson",
			Title:     "Founder & Chief Architect",
			Email:     "blackroad.systems@gmail.com",
			Website:   "https://blackroad.io",
			LinkedIn:  "https://linkedin.com/in/alexaamundson",
			GitHub:    "https://github.com/blackboxprogramming",
			Location:  "Lakeville, Minnesota",
		},
		Deck: DeckConfig{
			Title:    "BlackRoad OS",
			Tagline:  "The road isn't made. It's remembered.",
			Subtitle: "AI Infrastructure & Multi-Agent Orchestration",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finance")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finance")
}

// Path returns the full path to the default config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file at path (Path() when empty), then applies a
// local .env file and FINANCE_* environment overrides. A missing config file
// yields defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = Path()
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is user-supplied config location
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("loading .env: %w", err)
	}
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}

	if cfg.General.ForecastMonths <= 0 {
		return cfg, fmt.Errorf("forecast_months must be positive, got %d", cfg.General.ForecastMonths)
	}
	return cfg, nil
}

// Exists returns true if a config file exists at path (Path() when empty).
func Exists(path string) bool {
	if path == "" {
		path = Path()
	}
	_, err := os.Stat(path)
	return err == nil
}
