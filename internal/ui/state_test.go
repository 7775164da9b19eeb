package ui

import (
	"testing"

	"winnow/internal/fuzzy"
)

func rankedFixture(n int) []fuzzy.Ranked {
	ranked := make([]fuzzy.Ranked, n)
	for i := range ranked {
		ranked[i] = fuzzy.Ranked{Candidate: fuzzy.Candidate{Text: "row", Index: i}}
	}
	return ranked
}

func TestClampDimension(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		min      int
		max      int
		expected int
	}{
		{"within range", 10, 5, 20, 10},
		{"below min", 2, 5, 20, 5},
		{"above max", 30, 5, 20, 20},
		{"max below one", 10, 5, 0, 1},
		{"min above max", 10, 30, 20, 20},
		{"negative value", -3, 1, 10, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := clampDimension(tc.value, tc.min, tc.max); got != tc.expected {
				t.Errorf("expected %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestClampCursorEmptyList(t *testing.T) {
	m := &App{cursor: 4, listTop: 2, height: 10}

	m.clampCursor()

	if m.cursor != 0 {
		t.Errorf("expected cursor reset to 0, got %d", m.cursor)
	}
	if m.listTop != 0 {
		t.Errorf("expected listTop reset to 0, got %d", m.listTop)
	}
}

func TestClampCursorPastEnd(t *testing.T) {
	m := &App{ranked: rankedFixture(3), cursor: 9, height: 10}

	m.clampCursor()

	if m.cursor != 2 {
		t.Errorf("expected cursor clamped to 2, got %d", m.cursor)
	}
}

func TestMoveCursorScrollsWindow(t *testing.T) {
	// height 6 leaves 4 list rows between header and footer.
	m := &App{ranked: rankedFixture(10), height: 6}

	for i := 0; i < 5; i++ {
		m.moveCursor(1)
	}

	if m.cursor != 5 {
		t.Fatalf("expected cursor 5, got %d", m.cursor)
	}
	if m.listTop != 2 {
		t.Errorf("expected listTop 2 to keep cursor visible, got %d", m.listTop)
	}

	m.moveCursor(-5)
	if m.cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", m.cursor)
	}
	if m.listTop != 0 {
		t.Errorf("expected listTop scrolled back to 0, got %d", m.listTop)
	}
}

func TestMoveCursorNoCandidates(t *testing.T) {
	m := &App{height: 10}

	m.moveCursor(1)

	if m.cursor != 0 {
		t.Errorf("expected cursor to stay 0, got %d", m.cursor)
	}
}

func TestListHeight(t *testing.T) {
	tests := []struct {
		name     string
		height   int
		expected int
	}{
		{"normal terminal", 24, 22},
		{"tiny terminal", 2, 0},
		{"zero height", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := &App{height: tc.height}
			if got := m.listHeight(); got != tc.expected {
				t.Errorf("expected %d, got %d", tc.expected, got)
			}
		})
	}
}
