package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// footerHint defines a key hint for the footer bar.
// These are intentionally shorter than the KeyMap help text.
type footerHint struct {
	key  string // Short symbol: "↑↓", "⏎", etc.
	desc string // Short description: "Move", "Accept", etc.
}

// Global footer hints (always shown)
var globalFooterHints = []footerHint{
	{"⏎", "Accept"},
	{"Esc", "Abort"},
	{"F1", "Help"},
}

// Context-specific footer hints
var pickerFooterHints = []footerHint{
	{"↑↓", "Move"},
	{"⇥", "Preview"},
	{"^R", "Recent"},
	{"^Y", "Copy"},
}

// renderFooter renders the footer bar with pill-style key hints.
func (m *App) renderFooter() string {
	hints := append([]footerHint{}, pickerFooterHints...)
	if len(m.historyEntries) == 0 {
		hints = removeHint(hints, "^R")
	}
	hints = append(hints, globalFooterHints...)

	brand := "winnow"
	if m.version != "" {
		brand = "winnow v" + m.version
	}
	brandRendered := styleFooterMuted().Render(brand)
	brandWidth := lipgloss.Width(brandRendered)
	availableWidth := m.width - brandWidth - 4

	hints = trimHintsToFit(hints, availableWidth)

	var parts []string
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}

	left := strings.Join(parts, "  ")
	leftWidth := lipgloss.Width(left)

	spacing := m.width - leftWidth - brandWidth
	if spacing < 2 {
		spacing = 2
	}

	return left + strings.Repeat(" ", spacing) + brandRendered
}

// keyPill renders a single key hint as a pill with description.
func keyPill(key, desc string) string {
	return styleKeyPill().Render(" "+key+" ") + " " + styleKeyDesc().Render(desc)
}

func removeHint(hints []footerHint, key string) []footerHint {
	out := hints[:0]
	for _, h := range hints {
		if h.key != key {
			out = append(out, h)
		}
	}
	return out
}

// trimHintsToFit progressively removes hints to fit available width.
// Removes context-specific hints first, then global hints from the end.
func trimHintsToFit(hints []footerHint, availableWidth int) []footerHint {
	globalCount := len(globalFooterHints)

	for len(hints) > 0 {
		if renderHintsWidth(hints) <= availableWidth {
			break
		}
		if len(hints) > globalCount {
			hints = hints[1:]
		} else {
			hints = hints[:len(hints)-1]
		}
	}
	return hints
}

// renderHintsWidth calculates the visual width of rendered hints.
func renderHintsWidth(hints []footerHint) int {
	var parts []string
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	return lipgloss.Width(strings.Join(parts, "  "))
}
