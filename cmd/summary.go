package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/cli"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summary of the saved projections",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(st, nil)
	if err != nil {
		return err
	}
	cur := snap.Data.Projections.CurrentState
	sum := snap.Data.Summary

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FINANCIAL SUMMARY  %s", snap.Metadata.UpdatedAt.Format("2006-01-02"))))
	fmt.Println()

	rows := [][]string{
		{"Historical revenue", cli.FormatCurrency(cur.HistoricalRevenue.TotalAllTime)},
		{"Cash position", cli.FormatCurrency(cur.CashPosition)},
		{"Total assets", cli.FormatCurrency(cur.Assets.Total)},
		{"Monthly burn", cli.FormatCurrency(cur.CurrentMonthlyBurn)},
		{"Runway", cur.RunwayMonths},
		{"---"},
		{"Year 1 range", cli.FormatCurrencyRange(sum.Year1Range.Min, sum.Year1Range.Max)},
		{"Year 1 likely", cli.FormatCurrency(sum.Year1Range.Likely)},
		{"Year 3 range", cli.FormatCurrencyRange(sum.Year3Range.Min, sum.Year3Range.Max)},
		{"Year 3 likely", cli.FormatCurrency(sum.Year3Range.Likely)},
		{"---"},
		{"Profitability", sum.Profitability},
		{"First revenue", sum.TimeToFirstRevenue},
		{"Sustainability", sum.TimeToSustainability},
		{"Full-time", sum.TimeToFullTime},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	printProjections(snap)
	return nil
}
