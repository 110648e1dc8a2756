package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/report"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/source"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Render the investor pitch deck",
	RunE:  runDeck,
}

func init() {
	rootCmd.AddCommand(deckCmd)
}

// runDeck renders the deck even without saved projections; every figure
// then takes its declared fallback.
func runDeck(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	inputs, err := loadInputs()
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(st, &inputs.Inputs)
	switch {
	case errors.Is(err, source.ErrMissingInput):
		log.Warnw("projections not found, deck uses fallback figures", "error", err)
	case err != nil:
		return err
	}

	reportResults(report.Run(cmd.Context(), st, reportInput(snap, inputs), report.DeckTargets(), log))
	return nil
}
