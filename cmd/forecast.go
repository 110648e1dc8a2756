package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/cli"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/forecast"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/pipeline"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Monthly forecast and quarterly targets from the saved projections",
	RunE:  runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(st, nil)
	if err != nil {
		return err
	}
	entries := snap.Data.MonthlyForecast
	if len(entries) == 0 {
		fmt.Println("\n  The saved forecast is empty.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTHLY FORECAST  %s to %s", entries[0].Month, entries[len(entries)-1].Month)))
	fmt.Println()

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := []string{e.Month}
		for _, sc := range model.Scenarios {
			f := e.Scenario(sc)
			row = append(row, cli.FormatCurrency(f.Revenue), cli.FormatCurrency(f.Profit))
		}
		rows = append(rows, row)
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Cons. Rev", "Cons. Profit", "Real. Rev", "Real. Profit", "Opt. Rev", "Opt. Profit"},
		Rows:    rows,
	}))

	descs, err := forecast.Describe(entries)
	if err != nil {
		return err
	}
	fmt.Println()
	statRows := make([][]string, 0, len(descs))
	for _, d := range descs {
		series := make([]float64, 0, len(entries))
		for _, e := range entries {
			series = append(series, float64(e.Scenario(d.Scenario).Revenue))
		}
		statRows = append(statRows, []string{
			d.Scenario.Title(),
			cli.FormatCurrency(d.TotalRevenue),
			cli.FormatCurrency(int64(d.MeanRevenue)),
			cli.FormatPercent(d.GrowthPct),
			cli.RenderSparkline(series),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Horizon",
		Headers: []string{"Scenario", "Revenue", "Mean/mo", "Growth/mo", "Trend"},
		Rows:    statRows,
	}))

	printQuarters(entries)
	return nil
}

// printQuarters prints the quarterly roll-up. A forecast that does not split
// into whole quarters gets a warning instead of a table.
func printQuarters(entries []model.MonthlyForecastEntry) {
	fmt.Println()
	quarters, err := pipeline.Quarters(entries)
	if err != nil {
		fmt.Println(cli.RenderWarning(fmt.Sprintf("quarterly targets skipped: %v", err)))
		fmt.Println()
		return
	}
	qRows := make([][]string, 0, len(quarters))
	for _, q := range quarters {
		row := []string{q.Quarter}
		for _, sc := range model.Scenarios {
			row = append(row, cli.FormatCurrency(q.Scenario(sc).Revenue))
		}
		qRows = append(qRows, row)
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Quarterly targets",
		Headers: []string{"Quarter", "Conservative", "Realistic", "Optimistic"},
		Rows:    qRows,
	}))
	fmt.Println()
}
