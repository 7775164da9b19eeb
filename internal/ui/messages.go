package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"winnow/internal/fuzzy"
	"winnow/internal/history"
)

// rankResultMsg carries the outcome of an asynchronous rank. The generation
// ties the result to the query edit that started it; stale generations are
// dropped in Update.
type rankResultMsg struct {
	gen    int
	ranked []fuzzy.Ranked
	err    error
}

// historyLoadedMsg delivers recent picks for the history overlay.
type historyLoadedMsg struct {
	entries []history.Entry
	err     error
}

// themeSavedMsg reports the outcome of persisting a theme change.
type themeSavedMsg struct {
	err error
}

// copyResultMsg reports the outcome of a clipboard write.
type copyResultMsg struct {
	text string
	err  error
}

type copyToastTickMsg struct{}

func scheduleCopyToastTick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg {
		return copyToastTickMsg{}
	})
}

type themeToastTickMsg struct{}

func scheduleThemeToastTick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg {
		return themeToastTickMsg{}
	})
}

type errorToastTickMsg struct{}

func scheduleErrorToastTick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg {
		return errorToastTickMsg{}
	})
}
