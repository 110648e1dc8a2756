package report

import (
	"fmt"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/cli"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
)

type monthlyRow struct {
	Month    string `csv:"Month"`
	Scenario string `csv:"Scenario"`
	Revenue  int64  `csv:"Revenue"`
	Expenses int64  `csv:"Expenses"`
	Profit   int64  `csv:"Profit"`
	Margin   string `csv:"Margin %"`
}

// MonthlyForecastCSV writes one row per (month, scenario).
type MonthlyForecastCSV struct{}

func (MonthlyForecastCSV) Name() string { return "monthly_forecast_csv" }
func (MonthlyForecastCSV) File() string { return "monthly_forecast.csv" }

func (MonthlyForecastCSV) Render(in Input) (Rendered, error) {
	snap, err := requireSnapshot(in)
	if err != nil {
		return Rendered{}, err
	}
	rows := make([]monthlyRow, 0, len(snap.Data.MonthlyForecast)*len(model.Scenarios))
	for _, m := range snap.Data.MonthlyForecast {
		for _, sc := range model.Scenarios {
			f := m.Scenario(sc)
			rows = append(rows, monthlyRow{
				Month:    m.Month,
				Scenario: sc.Title(),
				Revenue:  f.Revenue,
				Expenses: f.Expenses,
				Profit:   f.Profit,
				Margin:   fmt.Sprintf("%.1f", f.MarginPct()),
			})
		}
	}
	return marshalCSV(rows)
}

type streamRow struct {
	Stream            string `csv:"Stream"`
	Year1Conservative int64  `csv:"Year 1 Conservative"`
	Year1Realistic    int64  `csv:"Year 1 Realistic"`
	Year1Optimistic   int64  `csv:"Year 1 Optimistic"`
	Year3Conservative int64  `csv:"Year 3 Conservative"`
	Year3Realistic    int64  `csv:"Year 3 Realistic"`
	Year3Optimistic   int64  `csv:"Year 3 Optimistic"`
}

// RevenueStreamsCSV writes each stream's amount for every period.
type RevenueStreamsCSV struct{}

func (RevenueStreamsCSV) Name() string { return "revenue_streams_csv" }
func (RevenueStreamsCSV) File() string { return "revenue_streams.csv" }

func (RevenueStreamsCSV) Render(in Input) (Rendered, error) {
	snap, err := requireSnapshot(in)
	if err != nil {
		return Rendered{}, err
	}
	p := snap.Data.Projections
	rows := make([]streamRow, 0, len(model.StreamKeys))
	for _, key := range model.StreamKeys {
		var cells [6]int64
		for i, period := range model.Periods() {
			t, ok := p.Totals(period)
			if !ok {
				return Rendered{}, fmt.Errorf("snapshot has no totals for %s", period.Key())
			}
			cells[i] = t.Breakdown[key]
		}
		rows = append(rows, streamRow{
			Stream:            streamLabel(key),
			Year1Conservative: cells[0],
			Year1Realistic:    cells[1],
			Year1Optimistic:   cells[2],
			Year3Conservative: cells[3],
			Year3Realistic:    cells[4],
			Year3Optimistic:   cells[5],
		})
	}
	return marshalCSV(rows)
}

type milestoneRow struct {
	Milestone  string `csv:"Milestone"`
	TargetDate string `csv:"Target Date"`
	Amount     string `csv:"Amount"`
	Source     string `csv:"Source/Requirements"`
}

// MilestonesCSV writes one row per milestone in snapshot order.
type MilestonesCSV struct{}

func (MilestonesCSV) Name() string { return "milestones_csv" }
func (MilestonesCSV) File() string { return "milestones.csv" }

func (MilestonesCSV) Render(in Input) (Rendered, error) {
	snap, err := requireSnapshot(in)
	if err != nil {
		return Rendered{}, err
	}
	rows := make([]milestoneRow, 0, len(snap.Data.Projections.Milestones))
	for _, m := range snap.Data.Projections.Milestones {
		rows = append(rows, milestoneRow{
			Milestone:  cli.FormatTitle(m.Name),
			TargetDate: m.TargetDate.String(),
			Amount:     cli.FormatCurrency(m.PrimaryAmount()),
			Source:     milestoneRequirement(m),
		})
	}
	return marshalCSV(rows)
}

// milestoneRequirement is the source text, or the buffer needed on top of
// the required MRR when no source is given.
func milestoneRequirement(m model.Milestone) string {
	if m.Source != "" {
		return m.Source
	}
	var buffer int64
	if m.SafetyBuffer != nil {
		buffer = *m.SafetyBuffer
	}
	return "MRR + " + cli.FormatCurrency(buffer) + " buffer"
}

func streamLabel(key string) string {
	if key == "" {
		return ""
	}
	return strings.ToUpper(key[:1]) + key[1:]
}

func marshalCSV(rows any) (Rendered, error) {
	data, err := gocsv.MarshalBytes(rows)
	if err != nil {
		return Rendered{}, fmt.Errorf("encoding csv: %w", err)
	}
	return Rendered{Data: data}, nil
}
