package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"winnow/internal/debug"
)

const (
	copyToastDuration  = 3 * time.Second
	themeToastDuration = 3 * time.Second
	errorToastDuration = 5 * time.Second
)

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rankResultMsg:
		return m.handleRankResult(msg)

	case historyLoadedMsg:
		if msg.err != nil {
			debug.Logf("history load failed: %v", msg.err)
			return m, nil
		}
		m.historyEntries = msg.entries
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			debug.Logf("theme save failed: %v", msg.err)
		}
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			m.displayErrorToast("clipboard unavailable")
			return m, scheduleErrorToastTick()
		}
		m.displayCopyToast(msg.text)
		return m, scheduleCopyToastTick()

	case copyToastTickMsg:
		if !m.showCopyToast {
			return m, nil
		}
		if time.Since(m.copyToastStart) >= copyToastDuration {
			m.showCopyToast = false
			return m, nil
		}
		return m, scheduleCopyToastTick()

	case themeToastTickMsg:
		if !m.themeToastVisible {
			return m, nil
		}
		if time.Since(m.themeToastStart) >= themeToastDuration {
			m.themeToastVisible = false
			return m, nil
		}
		return m, scheduleThemeToastTick()

	case errorToastTickMsg:
		if !m.showErrorToast {
			return m, nil
		}
		if time.Since(m.errorToastStart) >= errorToastDuration {
			m.showErrorToast = false
			return m, nil
		}
		return m, scheduleErrorToastTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.textInput.Width = clampDimension(msg.Width-lipgloss.Width(m.prompt)-counterReserve, 10, msg.Width)
		m.historyList.SetSize(msg.Width, msg.Height)
		m.clampCursor()
		m.sizePreview()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *App) handleRankResult(msg rankResultMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.rankGen {
		// A newer query superseded this rank while it was running.
		return m, nil
	}
	m.rankPending = false
	m.cancelRank = nil
	if msg.err != nil {
		return m, nil
	}
	m.ranked = msg.ranked
	m.cursor = 0
	m.listTop = 0
	m.clampCursor()
	m.refreshPreview()
	return m, nil
}

func (m *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.showHistory {
		return m, nil
	}
	inPreview := m.previewPaneWidth() > 0 && msg.X >= m.width-m.previewPaneWidth()
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		if inPreview {
			m.preview.LineUp(1)
		} else {
			m.moveCursor(-1)
		}
	case msg.Button == tea.MouseButtonWheelDown:
		if inPreview {
			m.preview.LineDown(1)
		} else {
			m.moveCursor(1)
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if inPreview {
			return m, nil
		}
		row := msg.Y - headerHeight
		if row >= 0 && row < m.listHeight() {
			if idx := m.listTop + row; idx < len(m.ranked) {
				m.cursor = idx
				m.refreshPreview()
			}
		}
	}
	return m, nil
}

func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay takes precedence: any key closes it.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.showHistory {
		return m.handleHistoryKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Abort):
		if m.cancelRank != nil {
			m.cancelRank()
			m.cancelRank = nil
		}
		m.aborted = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Accept):
		entry, ok := m.current()
		if !ok {
			// Nothing matched; selection stays disabled.
			return m, nil
		}
		m.accepted = true
		m.choice = entry.Candidate
		m.hasChoice = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.listHeight())
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.listHeight())
		return m, nil

	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		m.ensureCursorVisible()
		m.refreshPreview()
		return m, nil

	case key.Matches(msg, m.keys.End):
		if len(m.ranked) > 0 {
			m.cursor = len(m.ranked) - 1
		}
		m.ensureCursorVisible()
		m.refreshPreview()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.TogglePreview):
		m.showPreview = !m.showPreview
		m.clampCursor()
		m.sizePreview()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if entry, ok := m.current(); ok {
			return m, executeCopyCmd(entry.Text)
		}
		return m, nil

	case key.Matches(msg, m.keys.History):
		if len(m.historyEntries) == 0 {
			return m, nil
		}
		m.showHistory = true
		m.historyList.Open(m.historyEntries, m.textInput.Value())
		m.historyList.SetSize(m.width, m.height)
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		return m, m.cycleTheme()
	}

	// Everything else edits the query.
	var cmd tea.Cmd
	before := m.textInput.Value()
	m.textInput, cmd = m.textInput.Update(msg)
	if m.textInput.Value() != before {
		if rankCmd := m.startRank(); rankCmd != nil {
			return m, tea.Batch(cmd, rankCmd)
		}
	}
	return m, cmd
}

func (m *App) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.showHistory = false
		m.clampCursor()
		return m, nil
	case "enter":
		if entry, ok := m.historyList.SelectedEntry(); ok {
			m.showHistory = false
			m.textInput.SetValue(entry.Text)
			m.textInput.CursorEnd()
			return m, m.startRank()
		}
		m.showHistory = false
		return m, nil
	}
	var cmd tea.Cmd
	m.historyList, cmd = m.historyList.Update(msg)
	return m, cmd
}
