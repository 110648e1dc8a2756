package projection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/config"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
)

func generate(t *testing.T) model.Projections {
	t.Helper()
	p, err := New(config.DefaultScenarioModel).Generate()
	require.NoError(t, err)
	return p
}

func TestGenerate_TotalsMatchBreakdown(t *testing.T) {
	p := generate(t)
	require.Len(t, p.TotalProjections, 6)

	for _, period := range model.Periods() {
		tot, ok := p.Totals(period)
		require.True(t, ok, period.Key())
		var sum int64
		for _, v := range tot.Breakdown {
			sum += v
		}
		require.Equal(t, tot.TotalAnnual, sum, period.Key())
		require.Equal(t, MonthlyAverage(tot.TotalAnnual), tot.MonthlyAverage, period.Key())
	}
}

func TestGenerate_KnownTotals(t *testing.T) {
	p := generate(t)
	want := map[string]int64{
		"year_1_conservative": 131_200,
		"year_1_realistic":    456_000,
		"year_1_optimistic":   1_280_000,
		"year_3_conservative": 280_000,
		"year_3_realistic":    950_000,
		"year_3_optimistic":   3_500_000,
	}
	got := make(map[string]int64, len(p.TotalProjections))
	for k, v := range p.TotalProjections {
		got[k] = v.TotalAnnual
	}
	require.Equal(t, "", cmp.Diff(want, got))
	require.Equal(t, int64(38_000), p.TotalProjections["year_1_realistic"].MonthlyAverage)
}

func TestGenerate_ScenarioOrdering(t *testing.T) {
	p := generate(t)
	for _, y := range model.Years {
		c, _ := p.Totals(model.Period{Year: y, Scenario: model.Conservative})
		r, _ := p.Totals(model.Period{Year: y, Scenario: model.Realistic})
		o, _ := p.Totals(model.Period{Year: y, Scenario: model.Optimistic})
		require.LessOrEqual(t, c.TotalAnnual, r.TotalAnnual)
		require.LessOrEqual(t, r.TotalAnnual, o.TotalAnnual)
	}
}

func TestGenerate_Profitability(t *testing.T) {
	p := generate(t)
	want := map[string]struct {
		expenses int64
		margin   float64
	}{
		"year_1_conservative": {1_680, 98.7},
		"year_1_realistic":    {20_000, 95.6},
		"year_1_optimistic":   {103_800, 91.9},
		"year_3_conservative": {20_000, 92.9},
		"year_3_realistic":    {103_800, 89.1},
		"year_3_optimistic":   {500_000, 85.7},
	}
	for key, w := range want {
		r, ok := p.Profitability[key]
		require.True(t, ok, key)
		require.Equal(t, r.Revenue-r.Expenses, r.Profit, key)
		require.Equal(t, w.expenses, r.Expenses, key)
		require.InDelta(t, w.margin, r.MarginPct, 1e-9, key)
		require.Equal(t, p.TotalProjections[key].TotalAnnual, r.Revenue, key)
	}
}

func TestGenerate_StreamDerivation(t *testing.T) {
	p := generate(t)

	sponsors, ok := p.Stream("sponsorships")
	require.True(t, ok)
	for _, sc := range model.Scenarios {
		proj := sponsors.Projections[sc]
		require.NotNil(t, proj.Monthly)
		require.Equal(t, *proj.Monthly*12, proj.Annual)
	}

	consulting, ok := p.Stream("consulting")
	require.True(t, ok)
	cons := consulting.Projections[model.Conservative]
	require.Equal(t, int64(100*250+10*1_500+2*5_000), cons.Annual)
	require.Equal(t, model.UnitRevenue{Units: 10, Revenue: 15_000}, cons.Breakdown["daily"])

	job, _ := p.Stream("job")
	require.Nil(t, job.Projections[model.Realistic].Monthly)
	require.Equal(t, int64(180_000), job.Projections[model.Realistic].Annual)
}

func TestGenerate_BudgetsAndAssets(t *testing.T) {
	p := generate(t)
	require.Equal(t, int64(140), p.Expenses.CurrentMonthly.TotalMonthly)
	require.Equal(t, int64(1_680), p.Expenses.CurrentMonthly.TotalAnnual)
	require.Equal(t, int64(8_650), p.Expenses.ScaledMonthly.TotalMonthly)
	require.Equal(t, int64(39_350), p.CurrentState.Assets.Total)
}

func TestGenerate_MissingPlan(t *testing.T) {
	m := config.DefaultScenarioModel
	streams := append([]config.StreamDefinition(nil), m.Streams...)
	streams[0].Plan = map[model.Period]int64{}
	m.Streams = streams

	_, err := New(m).Generate()
	require.ErrorContains(t, err, "no plan")
}

func TestGenerate_UnknownBudget(t *testing.T) {
	m := config.DefaultScenarioModel
	exp := make(map[model.Period]config.ExpenseRef, len(m.AnnualExpenses))
	for k, v := range m.AnnualExpenses {
		exp[k] = v
	}
	exp[model.Period{Year: model.Year1, Scenario: model.Realistic}] = config.ExpenseRef{Budget: "lavish"}
	m.AnnualExpenses = exp

	_, err := New(m).Generate()
	require.ErrorContains(t, err, `unknown budget "lavish"`)
}

func TestGenerate_AmbiguousMilestone(t *testing.T) {
	m := config.DefaultScenarioModel
	milestones := append([]model.Milestone(nil), m.Milestones...)
	amount := int64(5_000)
	milestones[3].Amount = &amount
	m.Milestones = milestones

	_, err := New(m).Generate()
	require.ErrorIs(t, err, model.ErrAmbiguousMilestone)
	require.ErrorContains(t, err, "quit_job")
}

func TestSortMilestones(t *testing.T) {
	in := []model.Milestone{
		{Name: "c", TargetDate: model.NewDate(2026, 1, 1)},
		{Name: "a", TargetDate: model.NewDate(2025, 1, 1)},
		{Name: "b1", TargetDate: model.NewDate(2025, 6, 1)},
		{Name: "b2", TargetDate: model.NewDate(2025, 6, 1)},
	}
	out := SortMilestones(in)

	names := make([]string, len(out))
	for i, m := range out {
		names[i] = m.Name
	}
	require.Equal(t, []string{"a", "b1", "b2", "c"}, names)
	require.Equal(t, "c", in[0].Name, "input must not be reordered")
}

func TestGenerate_MilestonesChronological(t *testing.T) {
	p := generate(t)
	require.Len(t, p.Milestones, 6)
	for i := 1; i < len(p.Milestones); i++ {
		require.False(t, p.Milestones[i].TargetDate.Before(p.Milestones[i-1].TargetDate.Time))
	}
	require.Equal(t, "first_dollar", p.Milestones[0].Name)
}

func TestMonthlyAverage(t *testing.T) {
	cases := map[int64]int64{
		131_200: 10_933,
		6:       1,
		5:       0,
		0:       0,
		-18:     -2,
	}
	for in, want := range cases {
		require.Equal(t, want, MonthlyAverage(in), "total %d", in)
	}
}

func TestSummarize(t *testing.T) {
	p := generate(t)
	s, err := Summarize(p, config.DefaultScenarioModel.Outlook)
	require.NoError(t, err)

	require.Equal(t, model.Range{Min: 131_200, Likely: 456_000, Max: 1_280_000}, s.Year1Range)
	require.Equal(t, model.Range{Min: 280_000, Likely: 950_000, Max: 3_500_000}, s.Year3Range)
	require.Equal(t, "High margins (85-99%) due to low overhead", s.Profitability)
	require.Equal(t, "2-4 weeks", s.TimeToFirstRevenue)
}

func TestSummarize_MissingTotals(t *testing.T) {
	_, err := Summarize(model.Projections{}, config.Outlook{})
	require.Error(t, err)
}
