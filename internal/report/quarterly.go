package report

import (
	"fmt"
	"time"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/pipeline"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/store"
)

// QuarterlySource tags quarterly_targets.json with its input.
const QuarterlySource = "monthly_forecast"

// QuarterlyDocument is quarterly_targets.json.
type QuarterlyDocument struct {
	QuarterlyTargets []model.QuarterlyAggregate `json:"quarterly_targets"`
	Metadata         QuarterlyMetadata          `json:"metadata"`
}

type QuarterlyMetadata struct {
	GeneratedAt time.Time `json:"generated_at"`
	Source      string    `json:"source"`
}

// QuarterlyTargets writes the quarterly roll-up of the snapshot forecast.
type QuarterlyTargets struct{}

func (QuarterlyTargets) Name() string { return "quarterly_targets" }
func (QuarterlyTargets) File() string { return "quarterly_targets.json" }

func (QuarterlyTargets) Render(in Input) (Rendered, error) {
	snap, err := requireSnapshot(in)
	if err != nil {
		return Rendered{}, err
	}
	quarters, err := pipeline.Quarters(snap.Data.MonthlyForecast)
	if err != nil {
		return Rendered{}, err
	}
	data, err := store.MarshalJSON(QuarterlyDocument{
		QuarterlyTargets: quarters,
		Metadata:         QuarterlyMetadata{GeneratedAt: in.GeneratedAt.UTC(), Source: QuarterlySource},
	})
	if err != nil {
		return Rendered{}, fmt.Errorf("encoding quarterly targets: %w", err)
	}
	return Rendered{Data: data}, nil
}
