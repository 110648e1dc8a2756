package forecast

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
)

// Description summarizes one scenario's monthly revenue over the horizon.
type Description struct {
	Scenario      model.Scenario
	TotalRevenue  int64
	TotalProfit   int64
	MeanRevenue   float64
	MedianRevenue float64
	FirstRevenue  int64
	LastRevenue   int64
	// GrowthPct is the compound month-over-month revenue growth in percent.
	GrowthPct float64
}

// Describe computes per-scenario statistics over entries, in scenario order.
func Describe(entries []model.MonthlyForecastEntry) ([]Description, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("describe: empty forecast")
	}
	out := make([]Description, 0, len(model.Scenarios))
	for _, sc := range model.Scenarios {
		d := Description{Scenario: sc}
		revenue := make(stats.Float64Data, 0, len(entries))
		for _, e := range entries {
			f := e.Scenario(sc)
			revenue = append(revenue, float64(f.Revenue))
			d.TotalRevenue += f.Revenue
			d.TotalProfit += f.Profit
		}
		d.FirstRevenue = entries[0].Scenario(sc).Revenue
		d.LastRevenue = entries[len(entries)-1].Scenario(sc).Revenue

		var err error
		if d.MeanRevenue, err = revenue.Mean(); err != nil {
			return nil, fmt.Errorf("%s mean: %w", sc, err)
		}
		if d.MedianRevenue, err = revenue.Median(); err != nil {
			return nil, fmt.Errorf("%s median: %w", sc, err)
		}
		if len(entries) > 1 && d.FirstRevenue > 0 {
			ratios := make(stats.Float64Data, 0, len(entries)-1)
			for i := 1; i < len(revenue); i++ {
				if revenue[i-1] <= 0 {
					ratios = nil
					break
				}
				ratios = append(ratios, revenue[i]/revenue[i-1])
			}
			if len(ratios) > 0 {
				g, err := ratios.GeometricMean()
				if err != nil {
					return nil, fmt.Errorf("%s growth: %w", sc, err)
				}
				d.GrowthPct = (g - 1) * 100
			}
		}
		out = append(out, d)
	}
	return out, nil
}
