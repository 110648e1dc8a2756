package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/cli"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
)

var projectionsCmd = &cobra.Command{
	Use:   "projections",
	Short: "Generate revenue projections and the monthly forecast",
	RunE:  runProjections,
}

func init() {
	rootCmd.AddCommand(projectionsCmd)
}

func runProjections(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	snap, err := generate(cmd.Context(), st)
	if err != nil {
		return err
	}
	printProjections(snap)
	return nil
}

// printProjections prints the scenario totals and the path to full-time.
func printProjections(snap *model.ReportSnapshot) {
	p := snap.Data.Projections

	fmt.Println()
	fmt.Println(cli.RenderTitle("REVENUE PROJECTIONS"))
	fmt.Println()

	rows := make([][]string, 0, len(model.Periods()))
	for _, period := range model.Periods() {
		t, _ := p.Totals(period)
		r, _ := p.Profit(period)
		rows = append(rows, []string{
			period.Title(),
			cli.FormatCurrency(t.TotalAnnual),
			cli.FormatCurrency(t.MonthlyAverage),
			cli.FormatCurrency(r.Profit),
			cli.FormatPercent(r.MarginPct),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Period", "Annual", "Monthly", "Profit", "Margin"},
		Rows:    rows,
	}))

	for _, m := range p.Milestones {
		if m.RequiredMRR == nil {
			continue
		}
		fmt.Println()
		fmt.Println("  Path to full-time")
		fmt.Println(cli.RenderKeyValue("Required MRR", cli.FormatCurrency(*m.RequiredMRR), 16))
		if m.SafetyBuffer != nil {
			fmt.Println(cli.RenderKeyValue("Safety buffer", cli.FormatCurrency(*m.SafetyBuffer), 16))
		}
		fmt.Println(cli.RenderKeyValue("Target date", m.TargetDate.String(), 16))
	}
	fmt.Println()
}
