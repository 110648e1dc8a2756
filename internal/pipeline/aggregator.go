// Package pipeline runs a generation: it builds the snapshot from the
// projection generator and forecast engine, rolls the forecast up into
// quarters and loads the optional inputs the renderers read.
package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/forecast"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
)

// MonthsPerQuarter is the fixed quarter size.
const MonthsPerQuarter = 3

// ErrInsufficientData matches every InsufficientDataError.
var ErrInsufficientData = errors.New("insufficient forecast data")

// InsufficientDataError reports a quarter without three forecast months.
// Quarter is 1-based.
type InsufficientDataError struct {
	Quarter int
	Have    int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("quarter %d needs %d months, have %d", e.Quarter, MonthsPerQuarter, e.Have)
}

// Is matches ErrInsufficientData.
func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

// Quarters partitions entries into consecutive groups of three and sums each
// scenario. A forecast whose length is not a multiple of three fails rather
// than producing a short final quarter.
func Quarters(entries []model.MonthlyForecastEntry) ([]model.QuarterlyAggregate, error) {
	if rem := len(entries) % MonthsPerQuarter; rem != 0 {
		return nil, &InsufficientDataError{Quarter: len(entries)/MonthsPerQuarter + 1, Have: rem}
	}
	out := make([]model.QuarterlyAggregate, 0, len(entries)/MonthsPerQuarter)
	for q := 0; q < len(entries)/MonthsPerQuarter; q++ {
		agg, err := Quarter(entries, q)
		if err != nil {
			return nil, err
		}
		out = append(out, agg)
	}
	return out, nil
}

// Quarter sums the q-th (0-based) group of three entries. Labels count
// forecast quarters from the first entry: Q1..Q4 of its year, then the next.
func Quarter(entries []model.MonthlyForecastEntry, q int) (model.QuarterlyAggregate, error) {
	if q < 0 {
		return model.QuarterlyAggregate{}, fmt.Errorf("quarter index %d out of range", q)
	}
	lo := q * MonthsPerQuarter
	hi := lo + MonthsPerQuarter
	if hi > len(entries) {
		have := max(len(entries)-lo, 0)
		return model.QuarterlyAggregate{}, &InsufficientDataError{Quarter: q + 1, Have: have}
	}

	startYear, err := startYear(entries)
	if err != nil {
		return model.QuarterlyAggregate{}, err
	}

	agg := model.QuarterlyAggregate{
		Quarter: fmt.Sprintf("Q%d_%d", q%4+1, startYear+q/4),
		Months:  make([]string, 0, MonthsPerQuarter),
	}
	for i, e := range entries[lo:hi] {
		if e.MonthNum != lo+i+1 {
			return model.QuarterlyAggregate{}, fmt.Errorf("forecast month %d out of sequence at position %d", e.MonthNum, lo+i+1)
		}
		agg.Months = append(agg.Months, e.Month)
		agg.Conservative = agg.Conservative.Add(e.Conservative)
		agg.Realistic = agg.Realistic.Add(e.Realistic)
		agg.Optimistic = agg.Optimistic.Add(e.Optimistic)
	}
	return agg, nil
}

func startYear(entries []model.MonthlyForecastEntry) (int, error) {
	if len(entries) == 0 {
		return 0, &InsufficientDataError{Quarter: 1}
	}
	t, err := time.Parse(forecast.MonthLayout, entries[0].Month)
	if err != nil {
		return 0, fmt.Errorf("parsing forecast month %q: %w", entries[0].Month, err)
	}
	return t.Year(), nil
}
