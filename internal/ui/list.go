package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"winnow/internal/fuzzy"
)

// counterReserve is the header width kept free for the match counter.
const counterReserve = 16

const cursorMarker = "▌ "

// renderList renders the visible window of the ranked list, padded to the
// requested height so the footer stays anchored.
func (m *App) renderList(width, height int) string {
	if height <= 0 {
		return ""
	}
	rows := make([]string, 0, height)
	if len(m.ranked) == 0 {
		notice := "  No matches"
		if len(m.candidates) == 0 {
			notice = "  Nothing to pick from"
		}
		rows = append(rows, styleEmptyNotice().Render(notice))
	} else {
		end := m.listTop + height
		if end > len(m.ranked) {
			end = len(m.ranked)
		}
		for i := m.listTop; i < end; i++ {
			rows = append(rows, m.renderRow(m.ranked[i], i == m.cursor, width))
		}
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

func (m *App) renderRow(entry fuzzy.Ranked, selected bool, width int) string {
	marker := "  "
	base := styleNormalText()
	match := styleMatchHighlight()
	if selected {
		marker = styleCursorBar().Render(cursorMarker)
		base = styleSelectedRow()
		match = styleMatchHighlightSelected()
	}
	line := marker + highlightRunes(entry.Text, entry.Positions, base, match)
	return truncateLine(line, width)
}

// highlightRunes renders text with the matched rune positions styled
// differently. Positions must be ascending rune indices, which is what the
// matcher produces.
func highlightRunes(text string, positions []int, base, match lipgloss.Style) string {
	if len(positions) == 0 {
		return base.Render(text)
	}
	var b strings.Builder
	var segment []rune
	pos := 0
	inMatch := false
	flush := func() {
		if len(segment) == 0 {
			return
		}
		if inMatch {
			b.WriteString(match.Render(string(segment)))
		} else {
			b.WriteString(base.Render(string(segment)))
		}
		segment = segment[:0]
	}
	for i, r := range []rune(text) {
		matched := pos < len(positions) && positions[pos] == i
		if matched {
			pos++
		}
		if matched != inMatch {
			flush()
			inMatch = matched
		}
		segment = append(segment, r)
	}
	flush()
	return b.String()
}

// renderCounter formats the matched/total indicator for the header. While an
// asynchronous rank is in flight the matched side shows an ellipsis.
func (m *App) renderCounter() string {
	if m.rankPending {
		return styleCounter().Render(fmt.Sprintf("…/%d", len(m.candidates)))
	}
	return styleCounter().Render(fmt.Sprintf("%d/%d", len(m.ranked), len(m.candidates)))
}
