package cli

import (
	"strings"
	"testing"
)

func TestRenderTable_AlignsCells(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Year 1",
		Headers: []string{"Scenario", "Revenue"},
		Rows: [][]string{
			{"Conservative", "$131,200"},
			{"---"},
			{"Optimistic", "$1,280,000"},
		},
	})

	for _, want := range []string{"Year 1", "Conservative", "$131,200", "$1,280,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// title, top border, header, separator, row, separator row, row, bottom
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8:\n%s", len(lines), out)
	}
	width := len([]rune(lines[1]))
	for _, l := range lines[1:] {
		if n := len([]rune(l)); n != width {
			t.Errorf("line %q has width %d, want %d", l, n, width)
		}
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Errorf("empty table rendered %q", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("nil sparkline = %q", got)
	}
	got := RenderSparkline([]float64{0, 50, 100})
	if got != "▁▄█" {
		t.Errorf("sparkline = %q, want %q", got, "▁▄█")
	}
}

func TestRenderKeyValue(t *testing.T) {
	got := RenderKeyValue("Required MRR", "$20,000", 14)
	if !strings.Contains(got, "Required MRR") || !strings.Contains(got, "$20,000") {
		t.Errorf("got %q", got)
	}
}
