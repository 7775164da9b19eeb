package ui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"winnow/internal/config"
	"winnow/internal/ui/theme"
)

const historyOverlayLimit = 50

// startRank re-ranks the candidate list for the current query. Small lists
// are ranked inline; large lists go through a cancellable background rank so
// typing never blocks on scoring.
func (m *App) startRank() tea.Cmd {
	query := m.textInput.Value()
	if m.cancelRank != nil {
		m.cancelRank()
		m.cancelRank = nil
	}
	m.rankGen++

	if len(m.candidates) < m.asyncThreshold {
		m.ranked = m.ranker.Rank(query, m.candidates)
		m.rankPending = false
		m.cursor = 0
		m.listTop = 0
		m.clampCursor()
		m.refreshPreview()
		return nil
	}

	gen := m.rankGen
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelRank = cancel
	m.rankPending = true
	ranker := m.ranker
	candidates := m.candidates
	return func() tea.Msg {
		ranked, err := ranker.RankContext(ctx, query, candidates)
		return rankResultMsg{gen: gen, ranked: ranked, err: err}
	}
}

// executeHistoryLoadCmd fetches recent picks for the history overlay.
func (m *App) executeHistoryLoadCmd() tea.Cmd {
	store := m.historyStore
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		entries, err := store.Recent(ctx, historyOverlayLimit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

// executeThemeSaveCmd persists a theme change to the user config file.
func executeThemeSaveCmd(name string) tea.Cmd {
	return func() tea.Msg {
		return themeSavedMsg{err: config.SaveTheme(name)}
	}
}

// executeCopyCmd writes the selection to the system clipboard.
func executeCopyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{text: text, err: clipboard.WriteAll(text)}
	}
}

// cycleTheme switches to the next registered theme and refreshes the styles
// that are cached on the model.
func (m *App) cycleTheme() tea.Cmd {
	next := theme.CycleTheme()
	m.applyInputStyles()
	m.displayThemeToast(next)
	return tea.Batch(scheduleThemeToastTick(), executeThemeSaveCmd(next))
}
