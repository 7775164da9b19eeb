package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"winnow/internal/fuzzy"
	"winnow/internal/history"
)

var errTest = errors.New("test failure")

func testCandidates(lines ...string) []fuzzy.Candidate {
	return fuzzy.Candidates(lines)
}

func historyEntriesFixture() []history.Entry {
	return []history.Entry{
		{Text: "deploy service", Picks: 3},
		{Text: "restart worker", Picks: 1},
	}
}

func newTestApp(t *testing.T, lines ...string) *App {
	t.Helper()
	app := NewApp(Config{Candidates: fuzzy.Candidates(lines)})
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return app
}

func typeRunes(app *App, s string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range s {
		_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return cmd
}

func TestNewAppDefaults(t *testing.T) {
	app := NewApp(Config{Candidates: fuzzy.Candidates([]string{"alpha", "beta"})})

	if app.prompt != defaultPrompt {
		t.Errorf("expected default prompt %q, got %q", defaultPrompt, app.prompt)
	}
	if len(app.ranked) != 2 {
		t.Errorf("expected 2 ranked candidates at startup, got %d", len(app.ranked))
	}
	if app.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", app.cursor)
	}
	if app.asyncThreshold <= 0 {
		t.Errorf("expected positive async threshold, got %d", app.asyncThreshold)
	}
}

func TestNewAppInitialQueryRanksImmediately(t *testing.T) {
	app := NewApp(Config{
		Candidates:   fuzzy.Candidates([]string{"apple pie", "banana split"}),
		InitialQuery: "apple",
	})

	if len(app.ranked) != 1 {
		t.Fatalf("expected 1 match for initial query, got %d", len(app.ranked))
	}
	if app.ranked[0].Text != "apple pie" {
		t.Errorf("expected apple pie ranked first, got %q", app.ranked[0].Text)
	}
}

func TestNewAppCustomPrompt(t *testing.T) {
	app := NewApp(Config{
		Prompt:     "pick: ",
		Candidates: fuzzy.Candidates([]string{"one"}),
	})

	if app.textInput.Prompt != "pick: " {
		t.Errorf("expected custom prompt, got %q", app.textInput.Prompt)
	}
}

func TestSelectionEmptyBeforeAccept(t *testing.T) {
	app := newTestApp(t, "alpha", "beta")

	if _, ok := app.Selection(); ok {
		t.Error("expected no selection before accept")
	}
	if app.Accepted() {
		t.Error("expected Accepted to be false before accept")
	}
	if app.Aborted() {
		t.Error("expected Aborted to be false before abort")
	}
}

func TestInitReturnsBlink(t *testing.T) {
	app := newTestApp(t, "alpha")

	if cmd := app.Init(); cmd == nil {
		t.Error("expected Init to return a command")
	}
}

func TestCurrentEntry(t *testing.T) {
	app := newTestApp(t, "alpha", "beta", "gamma")

	entry, ok := app.current()
	if !ok {
		t.Fatal("expected a current entry")
	}
	if entry.Text != "alpha" {
		t.Errorf("expected alpha under cursor, got %q", entry.Text)
	}

	app.ranked = nil
	if _, ok := app.current(); ok {
		t.Error("expected no current entry with empty list")
	}
}
