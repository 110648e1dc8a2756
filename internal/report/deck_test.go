package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/config"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/source"
)

func TestPitchDeck_SectionOrder(t *testing.T) {
	out, err := PitchDeck{}.Render(testInput(t))
	require.NoError(t, err)

	html := string(out.Data)
	require.Equal(t, len(DeckSections), strings.Count(html, `<section class="slide`))
	last := -1
	for _, id := range DeckSections {
		i := strings.Index(html, `id="`+id+`"`)
		require.Greater(t, i, last, id)
		last = i
	}
}

func TestPitchDeck_FiguresFromSnapshot(t *testing.T) {
	out, err := PitchDeck{}.Render(testInput(t))
	require.NoError(t, err)

	html := string(out.Data)
	require.Contains(t, html, "<td>Total</td><td>$456,000</td><td>$950,000</td>")
	require.Contains(t, html, "<td>Employment Income</td><td>$180,000</td><td>$200,000</td>")
	require.Contains(t, html, "85-99%")
	require.Contains(t, html, "$200B by 2030")
	require.Contains(t, html, "Quit Job")
	require.Contains(t, html, `href="mailto:blackroad.systems@gmail.com"`)
	require.Contains(t, html, ">blackroad.io</a>")
	require.Contains(t, html, "January 2025")
}

func TestPitchDeck_WithoutSnapshot(t *testing.T) {
	in := testInput(t)
	in.Snapshot = nil

	out, err := PitchDeck{}.Render(in)
	require.NoError(t, err)

	html := string(out.Data)
	require.Contains(t, html, "<td>Total</td><td>$456,000</td><td>$950,000</td>")
	require.Contains(t, html, "Launch Monetization")
	require.Contains(t, out.Fallbacks, SnapshotMilestones)
	require.Contains(t, out.Fallbacks, SnapshotProfitability)
	require.Contains(t, out.Fallbacks, "data.projections.total_projections.year_1_realistic.total_annual")
}

func TestBuildDeckView_CustomFallbacks(t *testing.T) {
	in := testInput(t)
	fb := DefaultDeckFallbacks()
	fb.Repositories = 7
	fb.IPValue = "$1M"
	in.Fallbacks = &fb

	v := BuildDeckView(in)
	require.Equal(t, int64(7), v.Facts.Repositories)
	require.Equal(t, "$1M", v.Facts.IPValue)
	require.Equal(t, Metric{Value: "7", Label: "Active Repositories"}, v.Traction[2])
}

func TestBuildDeckView_Commits(t *testing.T) {
	tests := []struct {
		name     string
		history  string
		kpis     string
		want     string
		fallback bool
	}{
		{"history", `{"data":{"total_commits":6100}}`, `{"data":{"engineering":{"codebase":{"total_commits":10}}}}`, "6,100 commits", false},
		{"kpis", ``, `{"data":{"engineering":{"codebase":{"total_commits":6002}}}}`, "6,002 commits", false},
		{"fallback", ``, ``, "5,937 commits", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testInput(t)
			in.History = source.NewBlob([]byte(tt.history))
			in.KPIs = source.NewBlob([]byte(tt.kpis))

			v := BuildDeckView(in)
			require.Contains(t, v.Achievements[1], tt.want)
			if tt.fallback {
				require.Contains(t, v.Fallbacks, "history."+HistoryCommits)
			} else {
				require.NotContains(t, v.Fallbacks, "history."+HistoryCommits)
			}
		})
	}
}

func TestDeck_QuotedGains(t *testing.T) {
	in := testInput(t)
	out, err := PitchDeck{}.Render(in)
	require.NoError(t, err)
	require.Contains(t, string(out.Data), "<p>40% cost reduction via local inference with cloud fallback</p>")

	v := BuildDeckView(in)
	require.Contains(t, v.Advantages, "Cost Efficiency: 40% reduction via edge-first architecture")

	doc, _, err := BuildDeckDocument(in)
	require.NoError(t, err)
	require.Contains(t, doc.SlideData.CompetitiveAdvantages, "Multi-agent orchestration (50% productivity gain)")
	require.Contains(t, doc.SlideData.CompetitiveAdvantages, "Edge-first architecture (40% cost reduction)")
}

func TestBuildDeckView_RoadmapFromMilestones(t *testing.T) {
	v := BuildDeckView(testInput(t))

	require.Len(t, v.Roadmap, len(config.DefaultScenarioModel.Milestones))
	require.Equal(t, RoadmapItem{
		Date:   "Q4 2025",
		Title:  "Quit Job",
		Detail: "$20,000 MRR required with a $100,000 safety buffer",
	}, v.Roadmap[3])
	require.Equal(t, "Target $25: First GitHub sponsor or consulting client", v.Roadmap[0].Detail)
}

func TestDisplayURL(t *testing.T) {
	require.Equal(t, "github.com/x", displayURL("https://github.com/x"))
	require.Equal(t, "example.com", displayURL("http://example.com"))
	require.Equal(t, "plain", displayURL("plain"))
}
