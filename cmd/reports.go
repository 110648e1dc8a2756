package cmd

import (
	"github.com/spf13/cobra"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/report"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Render CSV, Markdown, HTML and JSON reports from the saved projections",
	RunE:  runReports,
}

func init() {
	rootCmd.AddCommand(reportsCmd)
}

func runReports(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	inputs, err := loadInputs()
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(st, &inputs.Inputs)
	if err != nil {
		return err
	}

	reportResults(report.Run(cmd.Context(), st, reportInput(snap, inputs), report.ReportTargets(), log))
	return nil
}
