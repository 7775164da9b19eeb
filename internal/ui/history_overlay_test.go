package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"winnow/internal/history"
)

func TestRankHistoryMatchesFirst(t *testing.T) {
	entries := []history.Entry{
		{Text: "restart worker"},
		{Text: "deploy service"},
		{Text: "deploy canary"},
	}

	ranked := rankHistory(entries, "dep")

	if len(ranked) != 3 {
		t.Fatalf("expected all 3 entries back, got %d", len(ranked))
	}
	if !strings.HasPrefix(ranked[0].Text, "deploy") {
		t.Errorf("expected a deploy entry first, got %q", ranked[0].Text)
	}
	if ranked[2].Text != "restart worker" {
		t.Errorf("expected non-matching entry last, got %q", ranked[2].Text)
	}
}

func TestRankHistoryEmptyQueryKeepsOrder(t *testing.T) {
	entries := []history.Entry{
		{Text: "bravo"},
		{Text: "alpha"},
	}

	ranked := rankHistory(entries, "  ")

	if len(ranked) != 2 || ranked[0].Text != "bravo" || ranked[1].Text != "alpha" {
		t.Errorf("expected original order preserved, got %v", ranked)
	}
}

func TestRankHistoryNoMatchesKeepsOrder(t *testing.T) {
	entries := []history.Entry{
		{Text: "bravo"},
		{Text: "alpha"},
	}

	ranked := rankHistory(entries, "zzz")

	if len(ranked) != 2 || ranked[0].Text != "bravo" || ranked[1].Text != "alpha" {
		t.Errorf("expected original order preserved, got %v", ranked)
	}
}

func TestHistoryOverlayOpenAndSelect(t *testing.T) {
	overlay := newHistoryOverlay()
	overlay.Open(historyEntriesFixture(), "")

	entry, ok := overlay.SelectedEntry()
	if !ok {
		t.Fatal("expected a selected entry after Open")
	}
	if entry.Text != "deploy service" {
		t.Errorf("expected first entry selected, got %q", entry.Text)
	}

	moved, _ := overlay.Update(tea.KeyMsg{Type: tea.KeyDown})
	entry, ok = moved.SelectedEntry()
	if !ok {
		t.Fatal("expected a selected entry after moving")
	}
	if entry.Text != "restart worker" {
		t.Errorf("expected second entry selected, got %q", entry.Text)
	}
}

func TestHistoryOverlaySelectedEntryEmpty(t *testing.T) {
	overlay := newHistoryOverlay()

	if _, ok := overlay.SelectedEntry(); ok {
		t.Error("expected no selection before Open")
	}
}

func TestHistoryOverlayOpenResetsSelection(t *testing.T) {
	overlay := newHistoryOverlay()
	overlay.Open(historyEntriesFixture(), "")
	moved, _ := overlay.Update(tea.KeyMsg{Type: tea.KeyDown})
	overlay = moved

	overlay.Open(historyEntriesFixture(), "")
	entry, ok := overlay.SelectedEntry()
	if !ok {
		t.Fatal("expected a selected entry after reopening")
	}
	if entry.Text != "deploy service" {
		t.Errorf("expected selection reset to first entry, got %q", entry.Text)
	}
}

func TestHistoryOverlayViewShowsEntriesAndHint(t *testing.T) {
	overlay := newHistoryOverlay()
	overlay.Open(historyEntriesFixture(), "")
	overlay.SetSize(80, 24)

	view := ansi.Strip(overlay.View())
	for _, snippet := range []string{"Recent picks", "deploy service", "×3", "Esc close"} {
		if !strings.Contains(view, snippet) {
			t.Errorf("expected overlay view to contain %q", snippet)
		}
	}
}

func TestHistoryOverlaySetSizeBounds(t *testing.T) {
	overlay := newHistoryOverlay()

	overlay.SetSize(300, 100)
	if got := overlay.model.Width(); got != 70 {
		t.Errorf("expected width capped at 70, got %d", got)
	}
	if got := overlay.model.Height(); got != 16 {
		t.Errorf("expected height capped at 16, got %d", got)
	}

	overlay.SetSize(20, 5)
	if got := overlay.model.Width(); got != 30 {
		t.Errorf("expected width floored at 30, got %d", got)
	}
	if got := overlay.model.Height(); got != 4 {
		t.Errorf("expected height floored at 4, got %d", got)
	}
}
