package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestHighlightRunesPreservesText(t *testing.T) {
	base := lipgloss.NewStyle()
	match := lipgloss.NewStyle()

	tests := []struct {
		name      string
		text      string
		positions []int
	}{
		{"no positions", "hello", nil},
		{"all positions", "abc", []int{0, 1, 2}},
		{"sparse positions", "grape juice", []int{2, 3}},
		{"unicode text", "héllo wörld", []int{1, 7}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ansi.Strip(highlightRunes(tc.text, tc.positions, base, match))
			if got != tc.text {
				t.Errorf("expected text preserved, got %q", got)
			}
		})
	}
}

func TestHighlightRunesSegments(t *testing.T) {
	// Transform-based styles make segment boundaries visible without
	// depending on the terminal color profile.
	base := lipgloss.NewStyle()
	match := lipgloss.NewStyle().Transform(strings.ToUpper)

	got := highlightRunes("apple", []int{0, 2}, base, match)
	if got != "ApPle" {
		t.Errorf("expected matched runes uppercased, got %q", got)
	}

	got = highlightRunes("abc", []int{0, 1, 2}, base, match)
	if got != "ABC" {
		t.Errorf("expected full match uppercased, got %q", got)
	}
}

func TestRenderRowMarksSelection(t *testing.T) {
	app := newTestApp(t, "alpha")

	selected := ansi.Strip(app.renderRow(app.ranked[0], true, 40))
	unselected := ansi.Strip(app.renderRow(app.ranked[0], false, 40))

	if !strings.Contains(selected, "▌") {
		t.Error("expected selected row to carry cursor marker")
	}
	if strings.Contains(unselected, "▌") {
		t.Error("expected unselected row without cursor marker")
	}
}

func TestRenderListWindowing(t *testing.T) {
	app := newTestApp(t, "row0", "row1", "row2", "row3", "row4", "row5")
	app.listTop = 2
	app.cursor = 3

	out := ansi.Strip(app.renderList(40, 3))

	for _, want := range []string{"row2", "row3", "row4"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected window to contain %q", want)
		}
	}
	for _, absent := range []string{"row0", "row1", "row5"} {
		if strings.Contains(out, absent) {
			t.Errorf("expected window to exclude %q", absent)
		}
	}
}

func TestRenderListPadsToHeight(t *testing.T) {
	app := newTestApp(t, "only")

	out := app.renderList(40, 5)

	if lines := strings.Count(out, "\n") + 1; lines != 5 {
		t.Errorf("expected 5 lines, got %d", lines)
	}
}

func TestRenderCounterPending(t *testing.T) {
	app := newTestApp(t, "a", "b")

	app.rankPending = true
	if got := ansi.Strip(app.renderCounter()); got != "…/2" {
		t.Errorf("expected pending counter, got %q", got)
	}

	app.rankPending = false
	if got := ansi.Strip(app.renderCounter()); got != "2/2" {
		t.Errorf("expected settled counter, got %q", got)
	}
}

func TestRenderRowTruncatesLongLines(t *testing.T) {
	app := newTestApp(t, strings.Repeat("x", 100))

	row := app.renderRow(app.ranked[0], false, 20)

	if w := ansi.StringWidth(row); w > 20 {
		t.Errorf("expected row width <= 20, got %d", w)
	}
	if !strings.Contains(ansi.Strip(row), "…") {
		t.Error("expected ellipsis on truncated row")
	}
}
