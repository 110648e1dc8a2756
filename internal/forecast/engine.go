package forecast

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
)

// DefaultMonths is the forecast horizon when none is configured.
const DefaultMonths = 24

// MonthLayout formats entry labels.
const MonthLayout = "2006-01"

// Engine yields a fixed-length monthly forecast. It keeps no state between
// iterations, so every range over Entries yields the same sequence.
type Engine struct {
	curves Curves
	months int
	start  time.Time
}

// New validates curves and returns an engine for months entries starting at
// the calendar month containing start.
func New(curves Curves, months int, start time.Time) (*Engine, error) {
	if months <= 0 {
		return nil, fmt.Errorf("forecast horizon must be positive, got %d", months)
	}
	var errs []error
	for _, sc := range model.Scenarios {
		c, ok := curves[sc]
		if !ok || c.Revenue == nil {
			errs = append(errs, fmt.Errorf("no revenue curve for %s", sc))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &Engine{curves: curves, months: months, start: MonthStart(start)}, nil
}

// MonthStart truncates t to the first instant of its month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Len is the number of entries the engine yields.
func (e *Engine) Len() int { return e.months }

// Start is the first day of the first forecast month.
func (e *Engine) Start() time.Time { return e.start }

// Entry computes the 1-based month m.
func (e *Engine) Entry(m int) model.MonthlyForecastEntry {
	return model.MonthlyForecastEntry{
		Month:        e.start.AddDate(0, m-1, 0).Format(MonthLayout),
		MonthNum:     m,
		Conservative: e.curves[model.Conservative].Figures(m),
		Realistic:    e.curves[model.Realistic].Figures(m),
		Optimistic:   e.curves[model.Optimistic].Figures(m),
	}
}

// Entries lazily yields every month in order.
func (e *Engine) Entries() iter.Seq[model.MonthlyForecastEntry] {
	return func(yield func(model.MonthlyForecastEntry) bool) {
		for m := 1; m <= e.months; m++ {
			if !yield(e.Entry(m)) {
				return
			}
		}
	}
}

// Collect materializes the whole forecast.
func (e *Engine) Collect() []model.MonthlyForecastEntry {
	out := make([]model.MonthlyForecastEntry, 0, e.months)
	for entry := range e.Entries() {
		out = append(out, entry)
	}
	return out
}
