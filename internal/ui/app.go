package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"winnow/internal/config"
	"winnow/internal/fuzzy"
	"winnow/internal/history"
)

const (
	headerHeight = 1
	footerHeight = 1
	minListWidth = 20

	defaultPrompt = "> "
)

// Config configures the picker UI.
type Config struct {
	Prompt         string
	InitialQuery   string
	Candidates     []fuzzy.Candidate
	StrictRuns     bool
	AsyncThreshold int
	ShowPreview    bool
	PreviewFormat  string
	History        *history.Store // nil disables the history overlay
	Version        string
}

// App implements the Bubble Tea model for Winnow.
type App struct {
	candidates []fuzzy.Candidate
	ranker     *fuzzy.Ranker
	ranked     []fuzzy.Ranked

	textInput textinput.Model
	keys      KeyMap
	prompt    string
	version   string

	cursor  int
	listTop int

	width  int
	height int
	ready  bool

	showHelp bool

	showPreview   bool
	previewFormat string
	preview       viewport.Model
	renderPreview func(string) string

	historyStore   *history.Store
	historyEntries []history.Entry
	showHistory    bool
	historyList    historyOverlay

	asyncThreshold int
	rankGen        int
	rankPending    bool
	cancelRank     context.CancelFunc

	accepted  bool
	aborted   bool
	choice    fuzzy.Candidate
	hasChoice bool

	showCopyToast  bool
	copyToastStart time.Time
	copiedText     string

	themeToastVisible bool
	themeToastStart   time.Time
	themeToastName    string

	showErrorToast  bool
	errorToastStart time.Time
	lastError       string
}

// NewApp creates the picker model over a fixed candidate set.
func NewApp(cfg Config) *App {
	prompt := cfg.Prompt
	if strings.TrimSpace(prompt) == "" {
		prompt = defaultPrompt
	}

	threshold := cfg.AsyncThreshold
	if threshold <= 0 {
		threshold = config.DefaultAsyncThreshold
	}

	ranker := fuzzy.NewRanker(fuzzy.Options{AdjacentRunBonus: cfg.StrictRuns})

	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "Type to filter..."
	ti.SetValue(cfg.InitialQuery)
	ti.Focus()

	app := &App{
		candidates:     cfg.Candidates,
		ranker:         ranker,
		ranked:         ranker.Rank(cfg.InitialQuery, cfg.Candidates),
		textInput:      ti,
		keys:           DefaultKeyMap(),
		prompt:         prompt,
		version:        cfg.Version,
		showPreview:    cfg.ShowPreview,
		previewFormat:  cfg.PreviewFormat,
		preview:        viewport.New(0, 0),
		historyStore:   cfg.History,
		historyList:    newHistoryOverlay(),
		asyncThreshold: threshold,
	}
	app.applyInputStyles()
	return app
}

func (m *App) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.historyStore != nil {
		cmds = append(cmds, m.executeHistoryLoadCmd())
	}
	return tea.Batch(cmds...)
}

// Selection returns the accepted candidate. ok is false when the picker was
// aborted or nothing matched.
func (m *App) Selection() (fuzzy.Candidate, bool) {
	return m.choice, m.hasChoice
}

// Accepted reports whether the user confirmed a selection.
func (m *App) Accepted() bool {
	return m.accepted
}

// Aborted reports whether the picker was dismissed without a selection.
func (m *App) Aborted() bool {
	return m.aborted
}

// Query returns the current query text.
func (m *App) Query() string {
	return m.textInput.Value()
}

// current returns the ranked entry under the cursor.
func (m *App) current() (fuzzy.Ranked, bool) {
	if len(m.ranked) == 0 || m.cursor < 0 || m.cursor >= len(m.ranked) {
		return fuzzy.Ranked{}, false
	}
	return m.ranked[m.cursor], true
}

// applyInputStyles re-derives the input styles from the active theme. Called
// at construction and again after a theme cycle.
func (m *App) applyInputStyles() {
	m.textInput.PromptStyle = stylePrompt()
	m.textInput.TextStyle = styleNormalText()
	m.textInput.PlaceholderStyle = styleDimText()
	m.textInput.Cursor.Style = stylePrompt()
}

// previewPaneWidth returns the columns reserved for the preview pane, or 0
// when the pane is hidden or the terminal is too narrow to split.
func (m *App) previewPaneWidth() int {
	if !m.showPreview || m.width < minListWidth+previewMinWidth {
		return 0
	}
	return m.width / 2
}

// sizePreview resizes the preview viewport to the current split and rebuilds
// its content. The markdown renderer wraps to the pane width, so it is
// discarded on every resize.
func (m *App) sizePreview() {
	width := m.previewPaneWidth()
	if width <= 0 {
		return
	}
	m.preview.Width = clampDimension(width-2, 1, m.width)
	m.preview.Height = clampDimension(m.listHeight()-2, 1, m.height)
	m.renderPreview = nil
	m.refreshPreview()
}

// refreshPreview re-renders the selected candidate into the preview viewport.
func (m *App) refreshPreview() {
	if m.previewPaneWidth() <= 0 {
		return
	}
	if m.renderPreview == nil {
		m.renderPreview = buildMarkdownRenderer(m.previewFormat, m.preview.Width)
	}
	if entry, ok := m.current(); ok {
		m.preview.SetContent(m.renderPreview(entry.Raw))
	} else {
		m.preview.SetContent(styleDimText().Render("Nothing selected"))
	}
	m.preview.GotoTop()
}

func (m *App) displayCopyToast(text string) {
	m.copiedText = text
	m.showCopyToast = true
	m.copyToastStart = time.Now()
}

func (m *App) displayThemeToast(name string) {
	m.themeToastName = name
	m.themeToastVisible = true
	m.themeToastStart = time.Now()
}

func (m *App) displayErrorToast(message string) {
	m.lastError = message
	m.showErrorToast = true
	m.errorToastStart = time.Now()
}
