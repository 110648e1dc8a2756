package report

import (
	"fmt"
	"time"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/cli"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/store"
)

// TAMLabel names the target market on the deck.
const TAMLabel = "AI Infrastructure Market"

// Published platform gains quoted on the deck, in percent.
const (
	EdgeCostReductionPct = 40
	OrchestrationGainPct = 50
)

func edgeCostReduction() string {
	return fmt.Sprintf("%d%% cost reduction", EdgeCostReductionPct)
}

func orchestrationGain() string {
	return fmt.Sprintf("%d%% productivity gain", OrchestrationGainPct)
}

// DeckDocument is investor_deck_data.json.
type DeckDocument struct {
	SlideData SlideData    `json:"slide_data"`
	Metadata  DeckMetadata `json:"metadata"`
}

// SlideData is the condensed figure set the presentation reads.
type SlideData struct {
	Traction              Traction          `json:"traction"`
	MarketOpportunity     MarketOpportunity `json:"market_opportunity"`
	RevenueModel          RevenueModel      `json:"revenue_model"`
	Milestones            DeckMilestones    `json:"milestones"`
	CompetitiveAdvantages []string          `json:"competitive_advantages"`
}

type Traction struct {
	RevenueGenerated   string `json:"revenue_generated"`
	TotalAssets        string `json:"total_assets"`
	ProprietaryIPValue string `json:"proprietary_ip_value"`
	Infrastructure     string `json:"infrastructure"`
}

type MarketOpportunity struct {
	TAM           string `json:"tam"`
	Year1Revenue  string `json:"year_1_revenue"`
	Year3Revenue  string `json:"year_3_revenue"`
	ProfitMargins string `json:"profit_margins"`
}

type RevenueModel struct {
	Streams []StreamRange `json:"streams"`
}

// StreamRange is a stream's year-1 conservative to optimistic spread.
type StreamRange struct {
	Name  string `json:"name"`
	Year1 string `json:"year_1"`
}

type DeckMilestones struct {
	Achieved []string        `json:"achieved"`
	Upcoming []UpcomingEntry `json:"upcoming"`
}

type UpcomingEntry struct {
	Milestone string `json:"milestone"`
	Date      string `json:"date"`
}

type DeckMetadata struct {
	GeneratedAt  time.Time `json:"generated_at"`
	Confidential bool      `json:"confidential"`
	Company      string    `json:"company"`
}

// DeckDataJSON writes investor_deck_data.json.
type DeckDataJSON struct{}

func (DeckDataJSON) Name() string { return "investor_deck_data" }
func (DeckDataJSON) File() string { return "investor_deck_data.json" }

func (DeckDataJSON) Render(in Input) (Rendered, error) {
	doc, used, err := BuildDeckDocument(in)
	if err != nil {
		return Rendered{}, err
	}
	data, err := store.MarshalJSON(doc)
	if err != nil {
		return Rendered{}, fmt.Errorf("encoding deck data: %w", err)
	}
	return Rendered{Data: data, Fallbacks: used}, nil
}

// BuildDeckDocument condenses the snapshot for the presentation. It returns
// the fallbacks used for figures outside the snapshot.
func BuildDeckDocument(in Input) (DeckDocument, []string, error) {
	snap, err := requireSnapshot(in)
	if err != nil {
		return DeckDocument{}, nil, err
	}
	r := newResolver(in)
	f := r.facts()
	summary := snap.Data.Summary
	hist := cli.FormatCompactCurrency(f.HistoricalRevenue)
	loc := cli.FormatCompact(f.LinesOfCode)

	streams, err := streamRanges(snap.Data.Projections)
	if err != nil {
		return DeckDocument{}, nil, err
	}

	upcoming := make([]UpcomingEntry, 0, len(snap.Data.Projections.Milestones))
	for _, m := range snap.Data.Projections.Milestones {
		upcoming = append(upcoming, UpcomingEntry{Milestone: cli.FormatTitle(m.Name), Date: m.TargetDate.Quarter()})
	}

	doc := DeckDocument{
		SlideData: SlideData{
			Traction: Traction{
				RevenueGenerated:   hist,
				TotalAssets:        cli.FormatCompactCurrency(f.TotalAssets),
				ProprietaryIPValue: f.IPValue,
				Infrastructure:     f.Infrastructure(),
			},
			MarketOpportunity: MarketOpportunity{
				TAM:           TAMLabel,
				Year1Revenue:  cli.FormatCurrencyRange(summary.Year1Range.Min, summary.Year1Range.Max),
				Year3Revenue:  cli.FormatCurrencyRange(summary.Year3Range.Min, summary.Year3Range.Max),
				ProfitMargins: f.MarginRange(),
			},
			RevenueModel: RevenueModel{Streams: streams},
			Milestones: DeckMilestones{
				Achieved: []string{
					fmt.Sprintf("%s LOC across %d repositories", loc, f.Repositories),
					fmt.Sprintf("%d autonomous agents (%s%% success)", f.AIAgents, cli.FormatDecimal(f.AgentSuccessPct)),
					fmt.Sprintf("%s%% uptime, zero outages", cli.FormatDecimal(f.UptimePct)),
					fmt.Sprintf("%s revenue influenced (sales background)", hist),
				},
				Upcoming: upcoming,
			},
			CompetitiveAdvantages: []string{
				fmt.Sprintf("Proven technical execution (%s LOC)", loc),
				fmt.Sprintf("Proprietary IP worth %s", f.IPValue),
				"Multi-agent orchestration (" + orchestrationGain() + ")",
				"Edge-first architecture (" + edgeCostReduction() + ")",
				fmt.Sprintf("Sales background (%s revenue)", hist),
			},
		},
		Metadata: DeckMetadata{
			GeneratedAt:  in.GeneratedAt.UTC(),
			Confidential: true,
			Company:      in.Company.Name,
		},
	}
	return doc, r.used, nil
}

// streamRanges lists every stream other than employment with its year-1
// conservative to optimistic spread.
func streamRanges(p model.Projections) ([]StreamRange, error) {
	lo, ok := p.Totals(model.Period{Year: model.Year1, Scenario: model.Conservative})
	if !ok {
		return nil, fmt.Errorf("snapshot has no year 1 conservative totals")
	}
	hi, ok := p.Totals(model.Period{Year: model.Year1, Scenario: model.Optimistic})
	if !ok {
		return nil, fmt.Errorf("snapshot has no year 1 optimistic totals")
	}
	var out []StreamRange
	for _, s := range p.RevenueStreams {
		if s.Key == model.EmploymentStream {
			continue
		}
		out = append(out, StreamRange{
			Name:  s.Name,
			Year1: cli.FormatCurrencyRange(lo.Breakdown[s.Key], hi.Breakdown[s.Key]),
		})
	}
	return out, nil
}
