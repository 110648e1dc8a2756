package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/cli"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	path := flagConfig
	if path == "" {
		path = config.Path()
	}
	status := "using defaults (no config file)"
	if config.Exists(path) {
		status = "loaded"
	}

	fmt.Printf("  Config file: %s\n", path)
	fmt.Printf("  Status: %s\n\n", status)

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "General",
		Headers: []string{"Setting", "Value"},
		Rows: [][]string{
			{"Input directory", cfg.General.InputDir},
			{"Output directory", cfg.General.OutputDir},
			{"Forecast months", strconv.Itoa(cfg.General.ForecastMonths)},
		},
	}))
	fmt.Println()

	c := cfg.Company
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Company",
		Headers: []string{"Setting", "Value"},
		Rows: [][]string{
			{"Name", c.Name},
			{"Copyright", c.Copyright},
			{"Founder", c.Founder},
			{"Title", c.Title},
			{"Email", c.Email},
			{"Website", c.Website},
			{"LinkedIn", c.LinkedIn},
			{"GitHub", c.GitHub},
			{"Location", c.Location},
		},
	}))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Deck",
		Headers: []string{"Setting", "Value"},
		Rows: [][]string{
			{"Title", cfg.Deck.Title},
			{"Tagline", cfg.Deck.Tagline},
			{"Subtitle", cfg.Deck.Subtitle},
		},
	}))
	fmt.Println()
	return nil
}
