package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
)

var jan2025 = time.Date(2025, time.January, 17, 15, 4, 0, 0, time.UTC)

func newEngine(t *testing.T, months int) *Engine {
	t.Helper()
	e, err := New(DefaultCurves(), months, jan2025)
	require.NoError(t, err)
	return e
}

func TestEngine_ConservativeLinear(t *testing.T) {
	entries := newEngine(t, 3).Collect()
	require.Len(t, entries, 3)

	want := []model.Figures{
		{Revenue: 1500, Expenses: 160, Profit: 1340},
		{Revenue: 2000, Expenses: 170, Profit: 1830},
		{Revenue: 2500, Expenses: 180, Profit: 2320},
	}
	for i, e := range entries {
		require.Equal(t, want[i], e.Conservative, "month %d", i+1)
	}
}

func TestEngine_RealisticAndOptimisticTruncate(t *testing.T) {
	e := newEngine(t, 4)

	// 2000 + 4*1500 + 4^1.5*100 = 8800
	require.Equal(t, int64(8800), e.Entry(4).Realistic.Revenue)
	// 2000 + 2*1500 + 2^1.5*100 = 5282.84...
	require.Equal(t, int64(5282), e.Entry(2).Realistic.Revenue)
	// 5000 * 1.15 = 5750
	require.Equal(t, int64(5750), e.Entry(1).Optimistic.Revenue)
	// 5000 * 1.15^2 = 6612.5
	require.Equal(t, int64(6612), e.Entry(2).Optimistic.Revenue)
	require.Equal(t, int64(1600), e.Entry(2).Optimistic.Expenses)
}

func TestEngine_ProfitInvariant(t *testing.T) {
	for entry := range newEngine(t, DefaultMonths).Entries() {
		for _, sc := range model.Scenarios {
			f := entry.Scenario(sc)
			require.Equal(t, f.Revenue-f.Expenses, f.Profit, "%s %s", entry.Month, sc)
		}
	}
}

func TestEngine_MonthLabels(t *testing.T) {
	entries := newEngine(t, 14).Collect()
	require.Equal(t, "2025-01", entries[0].Month)
	require.Equal(t, "2025-12", entries[11].Month)
	require.Equal(t, "2026-02", entries[13].Month)
	for i, e := range entries {
		require.Equal(t, i+1, e.MonthNum)
	}
}

func TestEngine_MonthEndStart(t *testing.T) {
	start := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	e, err := New(DefaultCurves(), 2, start)
	require.NoError(t, err)
	require.Equal(t, "2025-02", e.Entry(2).Month)
}

func TestEngine_Restartable(t *testing.T) {
	e := newEngine(t, DefaultMonths)
	first := e.Collect()
	second := e.Collect()
	require.Equal(t, first, second)

	var early []model.MonthlyForecastEntry
	for entry := range e.Entries() {
		early = append(early, entry)
		if len(early) == 5 {
			break
		}
	}
	require.Equal(t, first[:5], early)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(DefaultCurves(), 0, jan2025)
	require.Error(t, err)

	curves := DefaultCurves()
	delete(curves, model.Realistic)
	_, err = New(curves, 3, jan2025)
	require.ErrorContains(t, err, "realistic")
}

func TestDescribe(t *testing.T) {
	entries := newEngine(t, 3).Collect()
	ds, err := Describe(entries)
	require.NoError(t, err)
	require.Len(t, ds, 3)

	c := ds[0]
	require.Equal(t, model.Conservative, c.Scenario)
	require.Equal(t, int64(6000), c.TotalRevenue)
	require.Equal(t, int64(1340+1830+2320), c.TotalProfit)
	require.InDelta(t, 2000.0, c.MeanRevenue, 1e-9)
	require.InDelta(t, 2000.0, c.MedianRevenue, 1e-9)
	require.Equal(t, int64(1500), c.FirstRevenue)
	require.Equal(t, int64(2500), c.LastRevenue)

	o := ds[2]
	require.InDelta(t, 15.0, o.GrowthPct, 0.1)

	_, err = Describe(nil)
	require.Error(t, err)
}
