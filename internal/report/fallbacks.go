package report

import (
	"fmt"
	"math"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/cli"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
)

// Paths of the figures the deck reads from collaborator blobs.
const (
	KPIRepositories    = "data.engineering.repositories.total_repos"
	KPIUptimePct       = "data.operations.reliability.uptime_pct_30d"
	KPILinesOfCode     = "data.engineering.codebase.total_loc"
	KPIAIAgents        = "data.engineering.ai_ml.ai_agents"
	KPIAgentSuccessPct = "data.engineering.ai_ml.agent_success_rate_pct"
	KPICommits         = "data.engineering.codebase.total_commits"
	DeckIPValue        = "slide_data.traction.proprietary_ip_value"
	HistoryCommits     = "data.total_commits"
)

// Paths of the snapshot figures the deck reads, used to name fallbacks.
const (
	SnapshotHistoricalRevenue = "data.projections.current_state.historical_revenue.total_all_time"
	SnapshotTotalAssets       = "data.projections.current_state.assets.total"
	SnapshotProfitability     = "data.projections.profitability"
	SnapshotMilestones        = "data.projections.milestones"
)

// RoadmapItem is one roadmap entry.
type RoadmapItem struct {
	Date   string
	Title  string
	Detail string
}

// DeckFallbacks declares the value each presentation figure takes when its
// source is absent. Every use is reported in Rendered.Fallbacks.
type DeckFallbacks struct {
	Repositories    int64
	UptimePct       float64
	LinesOfCode     int64
	AIAgents        int64
	AgentSuccessPct float64
	IPValue         string
	Commits         int64

	HistoricalRevenue int64
	TotalAssets       int64
	// RevenueTable is the realistic breakdown by stream key and year.
	RevenueTable map[model.Year]map[string]int64
	RevenueTotal map[model.Year]int64
	MarginLow    int
	MarginHigh   int
	Roadmap      []RoadmapItem
}

// DefaultDeckFallbacks are the figures last published in the deck.
func DefaultDeckFallbacks() DeckFallbacks {
	return DeckFallbacks{
		Repositories:    53,
		UptimePct:       99.7,
		LinesOfCode:     1_380_000,
		AIAgents:        76,
		AgentSuccessPct: 94.2,
		IPValue:         "$5M",
		Commits:         5_937,

		HistoricalRevenue: 26_800_000,
		TotalAssets:       39_350,
		RevenueTable: map[model.Year]map[string]int64{
			model.Year1: {"job": 180_000, "sponsorships": 6_000, "licensing": 50_000, "consulting": 100_000, "support": 60_000, "saas": 60_000},
			model.Year3: {"job": 200_000, "sponsorships": 30_000, "licensing": 150_000, "consulting": 200_000, "support": 120_000, "saas": 250_000},
		},
		RevenueTotal: map[model.Year]int64{model.Year1: 456_000, model.Year3: 950_000},
		MarginLow:    85,
		MarginHigh:   99,
		Roadmap: []RoadmapItem{
			{Date: "Q1 2025", Title: "Launch Monetization", Detail: "GitHub Sponsors, commercial licensing, first $1K MRR"},
			{Date: "Q2 2025", Title: "Scale Services", Detail: "Consulting packages, priority support, first $10K MRR"},
			{Date: "Q3-Q4 2025", Title: "SaaS Launch", Detail: "Multi-agent platform beta, reach $20K MRR, full-time transition"},
			{Date: "2026", Title: "Scale to $1M ARR", Detail: "Enterprise deals, platform scaling, team expansion"},
			{Date: "2027", Title: "Series A", Detail: "$3.5M revenue, proven market fit, ready for acceleration"},
		},
	}
}

// Facts are the resolved figures shared by the deck and its data file.
type Facts struct {
	Repositories      int64
	UptimePct         float64
	LinesOfCode       int64
	AIAgents          int64
	AgentSuccessPct   float64
	IPValue           string
	HistoricalRevenue int64
	TotalAssets       int64
	MarginLow         int
	MarginHigh        int
}

// MarginRange formats the margin spread, e.g. "85-99%".
func (f Facts) MarginRange() string {
	return fmt.Sprintf("%d-%d%%", f.MarginLow, f.MarginHigh)
}

// Infrastructure is the one-line engineering summary.
func (f Facts) Infrastructure() string {
	return fmt.Sprintf("%d repos, %s LOC, %d AI agents", f.Repositories, cli.FormatCompact(f.LinesOfCode), f.AIAgents)
}

// resolver looks figures up in their source and records every fallback.
type resolver struct {
	in   Input
	fb   DeckFallbacks
	used []string
}

func newResolver(in Input) *resolver {
	fb := DefaultDeckFallbacks()
	if in.Fallbacks != nil {
		fb = *in.Fallbacks
	}
	return &resolver{in: in, fb: fb}
}

func (r *resolver) fallback(path string) {
	r.used = append(r.used, path)
}

func (r *resolver) kpiInt(path string, def int64) int64 {
	if v, ok := r.in.KPIs.Int(path); ok {
		return v
	}
	r.fallback("kpis." + path)
	return def
}

func (r *resolver) kpiFloat(path string, def float64) float64 {
	if v, ok := r.in.KPIs.Float(path); ok {
		return v
	}
	r.fallback("kpis." + path)
	return def
}

func (r *resolver) facts() Facts {
	f := Facts{
		Repositories:    r.kpiInt(KPIRepositories, r.fb.Repositories),
		UptimePct:       r.kpiFloat(KPIUptimePct, r.fb.UptimePct),
		LinesOfCode:     r.kpiInt(KPILinesOfCode, r.fb.LinesOfCode),
		AIAgents:        r.kpiInt(KPIAIAgents, r.fb.AIAgents),
		AgentSuccessPct: r.kpiFloat(KPIAgentSuccessPct, r.fb.AgentSuccessPct),
	}

	if v, ok := r.in.DeckData.String(DeckIPValue); ok && v != "" {
		f.IPValue = v
	} else {
		r.fallback("investor." + DeckIPValue)
		f.IPValue = r.fb.IPValue
	}

	snap := r.in.Snapshot
	if snap != nil {
		f.HistoricalRevenue = snap.Data.Projections.CurrentState.HistoricalRevenue.TotalAllTime
		f.TotalAssets = snap.Data.Projections.CurrentState.Assets.Total
	} else {
		r.fallback(SnapshotHistoricalRevenue)
		r.fallback(SnapshotTotalAssets)
		f.HistoricalRevenue = r.fb.HistoricalRevenue
		f.TotalAssets = r.fb.TotalAssets
	}

	f.MarginLow, f.MarginHigh = r.marginRange()
	return f
}

// commits prefers the commit history, then the KPI codebase total.
func (r *resolver) commits() int64 {
	if v, ok := r.in.History.Int(HistoryCommits); ok {
		return v
	}
	if v, ok := r.in.KPIs.Int(KPICommits); ok {
		return v
	}
	r.fallback("history." + HistoryCommits)
	return r.fb.Commits
}

// marginRange spans every profitability record in the snapshot.
func (r *resolver) marginRange() (int, int) {
	if r.in.Snapshot == nil || len(r.in.Snapshot.Data.Projections.Profitability) == 0 {
		r.fallback(SnapshotProfitability)
		return r.fb.MarginLow, r.fb.MarginHigh
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, rec := range r.in.Snapshot.Data.Projections.Profitability {
		lo = math.Min(lo, rec.MarginPct)
		hi = math.Max(hi, rec.MarginPct)
	}
	return int(math.Floor(lo)), int(math.Ceil(hi))
}

// revenueCell is the realistic amount of a stream in a year.
func (r *resolver) revenueCell(y model.Year, key string) int64 {
	period := model.Period{Year: y, Scenario: model.Realistic}
	if r.in.Snapshot != nil {
		if t, ok := r.in.Snapshot.Data.Projections.Totals(period); ok {
			if v, ok := t.Breakdown[key]; ok {
				return v
			}
		}
	}
	r.fallback(fmt.Sprintf("data.projections.total_projections.%s.breakdown.%s", period.Key(), key))
	return r.fb.RevenueTable[y][key]
}

func (r *resolver) revenueTotal(y model.Year) int64 {
	period := model.Period{Year: y, Scenario: model.Realistic}
	if r.in.Snapshot != nil {
		if t, ok := r.in.Snapshot.Data.Projections.Totals(period); ok {
			return t.TotalAnnual
		}
	}
	r.fallback(fmt.Sprintf("data.projections.total_projections.%s.total_annual", period.Key()))
	return r.fb.RevenueTotal[y]
}

// roadmap derives one entry per milestone from the snapshot.
func (r *resolver) roadmap() []RoadmapItem {
	if r.in.Snapshot == nil || len(r.in.Snapshot.Data.Projections.Milestones) == 0 {
		r.fallback(SnapshotMilestones)
		return r.fb.Roadmap
	}
	ms := r.in.Snapshot.Data.Projections.Milestones
	items := make([]RoadmapItem, 0, len(ms))
	for _, m := range ms {
		items = append(items, RoadmapItem{
			Date:   m.TargetDate.Quarter(),
			Title:  cli.FormatTitle(m.Name),
			Detail: milestoneDetail(m),
		})
	}
	return items
}

func milestoneDetail(m model.Milestone) string {
	if m.RequiredMRR != nil {
		detail := cli.FormatCurrency(*m.RequiredMRR) + " MRR required"
		if m.SafetyBuffer != nil {
			detail += " with a " + cli.FormatCurrency(*m.SafetyBuffer) + " safety buffer"
		}
		return detail
	}
	detail := "Target " + cli.FormatCurrency(m.PrimaryAmount())
	if m.Source != "" {
		detail += ": " + m.Source
	}
	return detail
}
