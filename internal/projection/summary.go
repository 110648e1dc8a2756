package projection

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/config"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
)

// Summarize condenses projections into the headline ranges and timeline.
func Summarize(p model.Projections, outlook config.Outlook) (model.Summary, error) {
	y1, err := yearRange(p, model.Year1)
	if err != nil {
		return model.Summary{}, err
	}
	y3, err := yearRange(p, model.Year3)
	if err != nil {
		return model.Summary{}, err
	}
	profit, err := profitabilityLine(p)
	if err != nil {
		return model.Summary{}, err
	}
	return model.Summary{
		Year1Range:           y1,
		Year3Range:           y3,
		Profitability:        profit,
		TimeToFirstRevenue:   outlook.TimeToFirstRevenue,
		TimeToSustainability: outlook.TimeToSustainability,
		TimeToFullTime:       outlook.TimeToFullTime,
	}, nil
}

// yearRange takes min and max across scenarios; likely is the realistic total.
func yearRange(p model.Projections, y model.Year) (model.Range, error) {
	vals := make(stats.Float64Data, 0, len(model.Scenarios))
	var likely int64
	for _, sc := range model.Scenarios {
		t, ok := p.Totals(model.Period{Year: y, Scenario: sc})
		if !ok {
			return model.Range{}, fmt.Errorf("no totals for year %d %s", y, sc)
		}
		vals = append(vals, float64(t.TotalAnnual))
		if sc == model.Realistic {
			likely = t.TotalAnnual
		}
	}
	lo, err := vals.Min()
	if err != nil {
		return model.Range{}, fmt.Errorf("year %d min: %w", y, err)
	}
	hi, err := vals.Max()
	if err != nil {
		return model.Range{}, fmt.Errorf("year %d max: %w", y, err)
	}
	return model.Range{Min: int64(lo), Likely: likely, Max: int64(hi)}, nil
}

func profitabilityLine(p model.Projections) (string, error) {
	margins := make(stats.Float64Data, 0, len(p.Profitability))
	for _, period := range model.Periods() {
		if r, ok := p.Profit(period); ok {
			margins = append(margins, r.MarginPct)
		}
	}
	lo, err := margins.Min()
	if err != nil {
		return "", fmt.Errorf("margin range: %w", err)
	}
	hi, err := margins.Max()
	if err != nil {
		return "", fmt.Errorf("margin range: %w", err)
	}
	return fmt.Sprintf("High margins (%d-%d%%) due to low overhead",
		int(math.Floor(lo)), int(math.Ceil(hi))), nil
}
