package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/cli"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
)

// DefaultMilestoneSource is shown for milestones without a funding source.
const DefaultMilestoneSource = "Multiple streams"

// Summary writes the narrative FINANCIAL_SUMMARY.md.
type Summary struct{}

func (Summary) Name() string { return "financial_summary" }
func (Summary) File() string { return "FINANCIAL_SUMMARY.md" }

func (Summary) Render(in Input) (Rendered, error) {
	md, err := SummaryMarkdown(in)
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{Data: []byte(md)}, nil
}

// SummaryMarkdown renders the narrative in fixed section order: current
// position, year 1, year 3, milestones, profitability.
func SummaryMarkdown(in Input) (string, error) {
	snap, err := requireSnapshot(in)
	if err != nil {
		return "", err
	}
	p := snap.Data.Projections
	cur := p.CurrentState

	var b strings.Builder
	fmt.Fprintf(&b, "# %s Financial Report\n\n", in.Deck.Title)
	fmt.Fprintf(&b, "**Generated:** %s  \n", in.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Company:** %s  \n", in.Company.Name)
	b.WriteString("**Confidential:** Internal Use Only\n\n---\n\n")

	b.WriteString("## Current Financial Position\n\n")
	b.WriteString("| Metric | Value |\n|--------|-------|\n")
	fmt.Fprintf(&b, "| Historical Revenue (All-Time) | %s |\n", cli.FormatCurrency(cur.HistoricalRevenue.TotalAllTime))
	fmt.Fprintf(&b, "| Current Cash Position | %s |\n", cli.FormatCurrency(cur.CashPosition))
	fmt.Fprintf(&b, "| Total Assets | %s |\n", cli.FormatCurrency(cur.Assets.Total))
	fmt.Fprintf(&b, "| Monthly Burn Rate | %s |\n", cli.FormatCurrency(cur.CurrentMonthlyBurn))
	fmt.Fprintf(&b, "| Runway | %s |\n\n", cur.RunwayMonths)
	b.WriteString("### Asset Breakdown\n")
	fmt.Fprintf(&b, "- Crypto: %s\n", cli.FormatCurrency(cur.Assets.Crypto))
	fmt.Fprintf(&b, "- Equipment: %s\n", cli.FormatCurrency(cur.Assets.Equipment))
	fmt.Fprintf(&b, "- Domains: %s\n", cli.FormatCurrency(cur.Assets.Domains))

	for _, y := range model.Years {
		fmt.Fprintf(&b, "\n---\n\n## Year %d Projections\n", y)
		for _, sc := range model.Scenarios {
			t, ok := p.Totals(model.Period{Year: y, Scenario: sc})
			if !ok {
				return "", fmt.Errorf("snapshot has no totals for year %d %s", y, sc)
			}
			fmt.Fprintf(&b, "\n### %s\n\n", sc.Title())
			fmt.Fprintf(&b, "**Total Annual Revenue:** %s  \n", cli.FormatCurrency(t.TotalAnnual))
			fmt.Fprintf(&b, "**Monthly Average:** %s  \n\n", cli.FormatCurrency(t.MonthlyAverage))
			b.WriteString("**Breakdown:**\n")
			for _, key := range breakdownKeys(t.Breakdown) {
				if amount := t.Breakdown[key]; amount > 0 {
					fmt.Fprintf(&b, "- %s: %s\n", streamLabel(key), cli.FormatCurrency(amount))
				}
			}
		}
	}

	b.WriteString("\n---\n\n## Revenue Milestones\n")
	for _, m := range p.Milestones {
		src := m.Source
		if src == "" {
			src = DefaultMilestoneSource
		}
		fmt.Fprintf(&b, "\n### %s\n", cli.FormatTitle(m.Name))
		fmt.Fprintf(&b, "- **Target Date:** %s\n", m.TargetDate)
		fmt.Fprintf(&b, "- **Amount:** %s\n", cli.FormatCurrency(m.PrimaryAmount()))
		fmt.Fprintf(&b, "- **Source:** %s\n", src)
		if m.SafetyBuffer != nil {
			fmt.Fprintf(&b, "- **Safety Buffer:** %s\n", cli.FormatCurrency(*m.SafetyBuffer))
		}
	}

	b.WriteString("\n---\n\n## Profitability Analysis\n")
	for _, period := range model.Periods() {
		r, ok := p.Profit(period)
		if !ok {
			return "", fmt.Errorf("snapshot has no profitability for %s", period.Key())
		}
		fmt.Fprintf(&b, "\n### %s\n", period.Title())
		fmt.Fprintf(&b, "- Revenue: %s\n", cli.FormatCurrency(r.Revenue))
		fmt.Fprintf(&b, "- Expenses: %s\n", cli.FormatCurrency(r.Expenses))
		fmt.Fprintf(&b, "- Profit: %s\n", cli.FormatCurrency(r.Profit))
		fmt.Fprintf(&b, "- Margin: %s\n", cli.FormatPercent(r.MarginPct))
	}

	copyright := snap.Metadata.Copyright
	if copyright == "" {
		copyright = in.Company.Copyright
	}
	fmt.Fprintf(&b, "\n---\n\n**%s All Rights Reserved.**\n", copyright)
	b.WriteString("\n*This document contains confidential financial information.*\n")
	return b.String(), nil
}

// breakdownKeys returns the known streams in report order followed by any
// others sorted by name.
func breakdownKeys(breakdown map[string]int64) []string {
	keys := make([]string, 0, len(breakdown))
	known := make(map[string]bool, len(model.StreamKeys))
	for _, k := range model.StreamKeys {
		known[k] = true
		if _, ok := breakdown[k]; ok {
			keys = append(keys, k)
		}
	}
	var extra []string
	for k := range breakdown {
		if !known[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}
