package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"winnow/internal/history"
)

// historyOverlay shows recent picks in a centered modal. Enter prefills the
// query with the selected entry; the list itself never accepts the pick.
type historyOverlay struct {
	model   list.Model
	entries []history.Entry
}

func newHistoryOverlay() historyOverlay {
	model := list.New(nil, historyDelegate{}, 40, 12)
	model.SetShowTitle(false)
	model.SetShowStatusBar(false)
	model.SetFilteringEnabled(false)
	model.SetShowHelp(false)
	model.DisableQuitKeybindings()
	return historyOverlay{model: model}
}

// Open fills the overlay with entries ranked against the current query so the
// most plausible re-pick sits on top.
func (h *historyOverlay) Open(entries []history.Entry, query string) {
	ranked := rankHistory(entries, query)
	items := make([]list.Item, len(ranked))
	for i, entry := range ranked {
		items[i] = historyItem{entry: entry}
	}
	h.entries = ranked
	_ = h.model.SetItems(items)
	h.model.ResetSelected()
}

func (h *historyOverlay) SetSize(width, height int) {
	h.model.SetWidth(clampDimension(width-12, 30, 70))
	h.model.SetHeight(clampDimension(height-9, 4, 16))
}

func (h historyOverlay) Update(msg tea.Msg) (historyOverlay, tea.Cmd) {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return h, cmd
}

func (h historyOverlay) View() string {
	title := styleOverlayTitle().Render("Recent picks")
	hint := styleHelpFooter().Render("⏎ prefill query · Esc close")
	body := lipgloss.JoinVertical(lipgloss.Left, title, "", h.model.View(), "", hint)
	return styleOverlay().Render(body)
}

func (h historyOverlay) SelectedEntry() (history.Entry, bool) {
	index := h.model.Index()
	if index < 0 || index >= len(h.entries) {
		return history.Entry{}, false
	}
	return h.entries[index], true
}

// rankHistory orders entries by fuzzy relevance to the query, appending
// non-matching entries in their original order.
func rankHistory(entries []history.Entry, query string) []history.Entry {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" || len(entries) == 0 {
		return entries
	}
	targets := make([]string, len(entries))
	for i, entry := range entries {
		targets[i] = strings.ToLower(entry.Text)
	}
	matches := fuzzy.Find(query, targets)
	if len(matches) == 0 {
		return entries
	}
	used := make([]bool, len(entries))
	ranked := make([]history.Entry, 0, len(entries))
	for _, match := range matches {
		if match.Index >= 0 && match.Index < len(entries) {
			ranked = append(ranked, entries[match.Index])
			used[match.Index] = true
		}
	}
	for i, entry := range entries {
		if !used[i] {
			ranked = append(ranked, entry)
		}
	}
	return ranked
}

type historyItem struct {
	entry history.Entry
}

func (h historyItem) FilterValue() string {
	return h.entry.Text
}

type historyDelegate struct{}

func (d historyDelegate) Height() int { return 1 }

func (d historyDelegate) Spacing() int { return 0 }

func (d historyDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d historyDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(historyItem)
	width := m.Width() - 8
	if width < 10 {
		width = 10
	}
	text := truncateLine(it.entry.Text, width)
	count := styleDimText().Render(fmt.Sprintf(" ×%d", it.entry.Picks))
	var row string
	if index == m.Index() {
		row = styleCursorBar().Render(cursorMarker) + styleSelectedRow().Render(text) + count
	} else {
		row = "  " + styleNormalText().Render(text) + count
	}
	_, _ = fmt.Fprintln(w, row)
}
