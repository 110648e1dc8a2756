package report

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/config"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/pipeline"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/source"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/store"
)

var testNow = time.Date(2025, time.January, 10, 9, 30, 0, 0, time.UTC)

func testSnapshot(t *testing.T) *model.ReportSnapshot {
	t.Helper()
	cfg := config.DefaultConfig()
	snap, err := pipeline.BuildSnapshot(context.Background(), pipeline.DefaultOptions(cfg, testNow))
	require.NoError(t, err)
	return snap
}

func testInput(t *testing.T) Input {
	t.Helper()
	cfg := config.DefaultConfig()
	return Input{
		Snapshot:    testSnapshot(t),
		Company:     cfg.Company,
		Deck:        cfg.Deck,
		GeneratedAt: testNow,
	}
}

type failingTarget struct{ name string }

func (f failingTarget) Name() string { return f.name }
func (f failingTarget) File() string { return f.name + ".txt" }
func (f failingTarget) Render(Input) (Rendered, error) {
	return Rendered{}, errors.New("boom")
}

type panickingTarget struct{}

func (panickingTarget) Name() string { return "panicky" }
func (panickingTarget) File() string { return "panicky.txt" }
func (panickingTarget) Render(Input) (Rendered, error) {
	panic("unexpected")
}

func TestRun_WritesEveryReport(t *testing.T) {
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)

	results := Run(context.Background(), st, testInput(t), ReportTargets(), zap.NewNop().Sugar())
	require.NoError(t, results.Err())
	require.Len(t, results, 7)

	for _, r := range results {
		info, err := os.Stat(r.Path)
		require.NoError(t, err, r.Target)
		require.Equal(t, int64(r.Bytes), info.Size(), r.Target)
		require.Positive(t, r.Bytes, r.Target)
	}
}

func TestRun_IsolatesFailures(t *testing.T) {
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	core, logs := observer.New(zapcore.ErrorLevel)

	targets := []Target{failingTarget{name: "broken"}, panickingTarget{}, Summary{}}
	results := Run(context.Background(), st, testInput(t), targets, zap.New(core).Sugar())

	require.Len(t, results.Failed(), 2)
	require.NoError(t, results[2].Err)
	_, err = os.Stat(st.Path("FINANCIAL_SUMMARY.md"))
	require.NoError(t, err)
	_, err = os.Stat(st.Path("broken.txt"))
	require.True(t, errors.Is(err, os.ErrNotExist))

	var te *TargetError
	require.ErrorAs(t, results[0].Err, &te)
	require.Equal(t, "broken", te.Target)
	require.ErrorContains(t, results[1].Err, "panic: unexpected")
	require.ErrorContains(t, results.Err(), "render broken: boom")
	require.Equal(t, 2, logs.FilterMessage("report target failed").Len())
}

func TestRun_ReportsNeedSnapshot(t *testing.T) {
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	in := testInput(t)
	in.Snapshot = nil

	results := Run(context.Background(), st, in, ReportTargets(), zap.NewNop().Sugar())
	require.Len(t, results.Failed(), len(ReportTargets()))
	for _, r := range results {
		require.ErrorIs(t, r.Err, errNoSnapshot, r.Target)
	}
}

func TestRun_LogsFallbacks(t *testing.T) {
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	core, logs := observer.New(zapcore.WarnLevel)

	results := Run(context.Background(), st, testInput(t), DeckTargets(), zap.New(core).Sugar())
	require.NoError(t, results.Err())

	// No KPI, history or investor inputs, so every collaborator figure falls back.
	require.Len(t, results[0].Fallbacks, 7)
	require.Equal(t, 7, logs.FilterMessage("using fallback default").Len())
}

func TestMonthlyForecastCSV(t *testing.T) {
	out, err := MonthlyForecastCSV{}.Render(testInput(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out.Data)), "\n")
	require.Len(t, lines, 1+24*3)
	require.Equal(t, "Month,Scenario,Revenue,Expenses,Profit,Margin %", lines[0])
	require.Equal(t, "2025-01,Conservative,1500,160,1340,89.3", lines[1])
	require.True(t, strings.HasPrefix(lines[2], "2025-01,Realistic,3600,600,3000,"))
	require.True(t, strings.HasPrefix(lines[len(lines)-3], "2026-12,Conservative,13000,390,12610,"))
}

func TestRevenueStreamsCSV(t *testing.T) {
	out, err := RevenueStreamsCSV{}.Render(testInput(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out.Data)), "\n")
	require.Len(t, lines, 7)
	require.Equal(t, "Stream,Year 1 Conservative,Year 1 Realistic,Year 1 Optimistic,Year 3 Conservative,Year 3 Realistic,Year 3 Optimistic", lines[0])
	require.Equal(t, "Job,120000,180000,250000,150000,200000,0", lines[1])
	require.Equal(t, "Saas,0,60000,400000,0,250000,2000000", lines[6])
}

func TestMilestonesCSV(t *testing.T) {
	out, err := MilestonesCSV{}.Render(testInput(t))
	require.NoError(t, err)

	data := string(out.Data)
	require.True(t, strings.HasPrefix(data, "Milestone,Target Date,Amount,Source/Requirements\n"))
	require.Contains(t, data, `First Dollar,2025-01-15,$25,First GitHub sponsor or consulting client`)
	require.Contains(t, data, `Quit Job,2025-12-01,"$20,000","MRR + $100,000 buffer"`)
	require.Less(t, strings.Index(data, "First Dollar"), strings.Index(data, "Quit Job"))
}

func TestSummaryMarkdown(t *testing.T) {
	md, err := SummaryMarkdown(testInput(t))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(md, "# BlackRoad OS Financial Report\n"))
	require.Contains(t, md, "**Generated:** 2025-01-10 09:30:00")
	require.Contains(t, md, "| Total Assets | $39,350 |")
	require.Contains(t, md, "**Total Annual Revenue:** $456,000")
	require.Contains(t, md, "**Monthly Average:** $38,000")
	require.Contains(t, md, "- **Source:** Multiple streams")
	require.Contains(t, md, "- **Safety Buffer:** $100,000")
	require.Contains(t, md, "- Margin: 95.6%")
	require.Contains(t, md, "**© 2023-2025 BlackRoad OS, Inc. All Rights Reserved.**")

	order := []string{
		"## Current Financial Position",
		"## Year 1 Projections",
		"## Year 3 Projections",
		"## Revenue Milestones",
		"## Profitability Analysis",
	}
	last := -1
	for _, h := range order {
		i := strings.Index(md, h)
		require.Greater(t, i, last, h)
		last = i
	}
	require.Equal(t, 6, strings.Count(md, "- Margin: "))
}

func TestSummaryMarkdown_SkipsZeroStreams(t *testing.T) {
	md, err := SummaryMarkdown(testInput(t))
	require.NoError(t, err)

	y1 := md[strings.Index(md, "## Year 1 Projections"):strings.Index(md, "## Year 3 Projections")]
	cons := y1[strings.Index(y1, "### Conservative"):strings.Index(y1, "### Realistic")]
	require.NotContains(t, cons, "Saas")
	require.Contains(t, cons, "- Consulting: $10,000")
}

func TestDashboard(t *testing.T) {
	out, err := Dashboard{}.Render(testInput(t))
	require.NoError(t, err)

	html := string(out.Data)
	require.Contains(t, html, "<h1>BlackRoad OS Financial Report</h1>")
	require.Contains(t, html, "<table>")
	require.Contains(t, html, "2025-01-10T09:30:00Z")
}

func TestBuildDeckDocument(t *testing.T) {
	in := testInput(t)
	in.KPIs = source.NewBlob([]byte(`{"data":{"engineering":{"repositories":{"total_repos":60},"codebase":{"total_loc":2000000},"ai_ml":{"ai_agents":80,"agent_success_rate_pct":95}},"operations":{"reliability":{"uptime_pct_30d":99.9}}}}`))
	in.DeckData = source.NewBlob([]byte(`{"slide_data":{"traction":{"proprietary_ip_value":"$7M"}}}`))

	doc, used, err := BuildDeckDocument(in)
	require.NoError(t, err)
	require.Empty(t, used)

	sd := doc.SlideData
	require.Equal(t, "$26.8M", sd.Traction.RevenueGenerated)
	require.Equal(t, "$39K", sd.Traction.TotalAssets)
	require.Equal(t, "$7M", sd.Traction.ProprietaryIPValue)
	require.Equal(t, "60 repos, 2M LOC, 80 AI agents", sd.Traction.Infrastructure)
	require.Equal(t, "$131K - $1.28M", sd.MarketOpportunity.Year1Revenue)
	require.Equal(t, "85-99%", sd.MarketOpportunity.ProfitMargins)
	require.Len(t, sd.RevenueModel.Streams, 5)
	for _, s := range sd.RevenueModel.Streams {
		require.NotEqual(t, "Employment Income", s.Name)
	}
	require.Len(t, sd.Milestones.Upcoming, 6)
	require.Equal(t, UpcomingEntry{Milestone: "First Dollar", Date: "Q1 2025"}, sd.Milestones.Upcoming[0])
	require.True(t, doc.Metadata.Confidential)
}

func TestBuildDeckDocument_KPIFallbacks(t *testing.T) {
	doc, used, err := BuildDeckDocument(testInput(t))
	require.NoError(t, err)

	require.Contains(t, used, "kpis."+KPIRepositories)
	require.Contains(t, used, "investor."+DeckIPValue)
	require.Equal(t, "53 repos, 1.38M LOC, 76 AI agents", doc.SlideData.Traction.Infrastructure)
	require.Equal(t, "$5M", doc.SlideData.Traction.ProprietaryIPValue)
}

func TestQuarterlyTargets(t *testing.T) {
	out, err := QuarterlyTargets{}.Render(testInput(t))
	require.NoError(t, err)

	blob := source.NewBlob(out.Data)
	require.Equal(t, int64(8), blob.Get("quarterly_targets.#").Int())
	q, _ := blob.String("quarterly_targets.0.quarter")
	require.Equal(t, "Q1_2025", q)
	rev, _ := blob.Int("quarterly_targets.0.conservative.revenue")
	require.Equal(t, int64(6000), rev)
	src, _ := blob.String("metadata.source")
	require.Equal(t, QuarterlySource, src)
}

func TestQuarterlyTargets_PartialQuarter(t *testing.T) {
	in := testInput(t)
	in.Snapshot.Data.MonthlyForecast = in.Snapshot.Data.MonthlyForecast[:5]

	_, err := QuarterlyTargets{}.Render(in)
	require.ErrorIs(t, err, pipeline.ErrInsufficientData)
}
