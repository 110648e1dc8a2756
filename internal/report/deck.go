package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/cli"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/config"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
)

// DeckSections is the fixed slide order.
var DeckSections = []string{
	"title", "problem", "solution", "traction", "revenue_model", "market_sizing",
	"competitive_advantages", "roadmap", "team", "ask", "contact",
}

// MarketSizing is the market research quoted on the market slide.
type MarketSizing struct {
	TAM string
	SAM string
	SOM string
}

// DefaultMarketSizing is the published market research.
var DefaultMarketSizing = MarketSizing{
	TAM: "$200B by 2030",
	SAM: "$25B by 2028",
	SOM: "$25M annual revenue",
}

// Metric is a headline number on a slide.
type Metric struct {
	Value string
	Label string
}

// RevenueRow is one line of the revenue model table.
type RevenueRow struct {
	Name  string
	Year1 string
	Year3 string
}

// DeckView is the fully resolved content of the pitch deck.
type DeckView struct {
	Title        string
	Tagline      string
	Subtitle     string
	Date         string
	Copyright    string
	Company      config.CompanyConfig
	Facts        Facts
	Traction     []Metric
	RevenueRows  []RevenueRow
	RevenueTotal RevenueRow
	Market       MarketSizing
	Roadmap      []RoadmapItem
	Achievements []string
	Advantages   []string
	EdgeCostCut  string
	Fallbacks    []string
}

// BuildDeckView resolves every figure of the deck. It never fails: absent
// sources take their declared fallback and are listed in Fallbacks.
func BuildDeckView(in Input) DeckView {
	r := newResolver(in)
	f := r.facts()
	hist := cli.FormatCompactCurrency(f.HistoricalRevenue)
	loc := cli.FormatCompact(f.LinesOfCode)
	uptime := cli.FormatDecimal(f.UptimePct) + "%"
	success := cli.FormatDecimal(f.AgentSuccessPct) + "%"

	v := DeckView{
		Title:       in.Deck.Title,
		Tagline:     in.Deck.Tagline,
		Subtitle:    in.Deck.Subtitle,
		Date:        in.GeneratedAt.Format("January 2006"),
		Copyright:   in.Company.Copyright,
		Company:     in.Company,
		Facts:       f,
		Market:      DefaultMarketSizing,
		EdgeCostCut: edgeCostReduction(),
		Traction: []Metric{
			{Value: hist, Label: "Revenue Generated"},
			{Value: loc, Label: "Lines of Code"},
			{Value: fmt.Sprint(f.Repositories), Label: "Active Repositories"},
			{Value: fmt.Sprint(f.AIAgents), Label: "AI Agents"},
			{Value: uptime, Label: "Uptime"},
			{Value: f.IPValue, Label: "Proprietary IP Value"},
		},
		Achievements: []string{
			hist + " revenue generated in sales career",
			fmt.Sprintf("Self-taught engineer: %s LOC and %s commits across %d repositories",
				loc, cli.FormatNumber(r.commits()), f.Repositories),
			fmt.Sprintf("Built %d-agent orchestration system from scratch", f.AIAgents),
			"Developed 5 proprietary technologies worth " + f.IPValue,
			uptime + " uptime across production infrastructure",
		},
		Advantages: []string{
			fmt.Sprintf("Proven Execution: %s LOC, %d repos, %s uptime", loc, f.Repositories, uptime),
			"Proprietary IP: " + f.IPValue + " in trade secrets (PS-SHA-∞, multi-agent)",
			fmt.Sprintf("Technical Depth: %d autonomous agents with %s success", f.AIAgents, success),
			"Sales Background: " + hist + " revenue track record",
			fmt.Sprintf("Cost Efficiency: %d%% reduction via edge-first architecture", EdgeCostReductionPct),
		},
	}

	names := streamNames(in.Snapshot)
	for _, key := range model.StreamKeys {
		v.RevenueRows = append(v.RevenueRows, RevenueRow{
			Name:  names[key],
			Year1: cli.FormatCurrency(r.revenueCell(model.Year1, key)),
			Year3: cli.FormatCurrency(r.revenueCell(model.Year3, key)),
		})
	}
	v.RevenueTotal = RevenueRow{
		Name:  "Total",
		Year1: cli.FormatCurrency(r.revenueTotal(model.Year1)),
		Year3: cli.FormatCurrency(r.revenueTotal(model.Year3)),
	}
	v.Roadmap = r.roadmap()
	v.Fallbacks = r.used
	return v
}

// streamNames maps breakdown keys to display names, preferring the snapshot.
func streamNames(snap *model.ReportSnapshot) map[string]string {
	names := make(map[string]string, len(model.StreamKeys))
	for _, key := range model.StreamKeys {
		names[key] = streamLabel(key)
	}
	for _, def := range config.DefaultScenarioModel.Streams {
		names[def.Key] = def.Name
	}
	if snap != nil {
		for _, s := range snap.Data.Projections.RevenueStreams {
			names[s.Key] = s.Name
		}
	}
	return names
}

// PitchDeck writes the self-contained HTML presentation.
type PitchDeck struct{}

func (PitchDeck) Name() string { return "pitch_deck" }
func (PitchDeck) File() string { return "pitch_deck.html" }

func (PitchDeck) Render(in Input) (Rendered, error) {
	view := BuildDeckView(in)
	var out bytes.Buffer
	if err := templates.ExecuteTemplate(&out, "pitch_deck.html.tmpl", view); err != nil {
		return Rendered{}, fmt.Errorf("executing deck template: %w", err)
	}
	return Rendered{Data: out.Bytes(), Fallbacks: view.Fallbacks}, nil
}

// displayURL strips the scheme for link text.
func displayURL(u string) string {
	u = strings.TrimPrefix(u, "https://")
	return strings.TrimPrefix(u, "http://")
}
