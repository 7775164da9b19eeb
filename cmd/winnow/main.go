package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"winnow/internal/config"
	"winnow/internal/debug"
	"winnow/internal/fuzzy"
	"winnow/internal/history"
	"winnow/internal/input"
	"winnow/internal/ui"
	"winnow/internal/ui/theme"
	"winnow/internal/update"
)

const (
	// spinnerDelay is how long startup may take before the spinner shows.
	spinnerDelay = 150 * time.Millisecond

	historyWriteTimeout = 2 * time.Second
)

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initialize config: %v\n", err)
		os.Exit(2)
	}

	promptDefault := config.GetString(config.KeyPrompt)
	themeDefault := config.GetString(config.KeyTheme)
	outputFormatDefault := config.GetString(config.KeyOutputFormat)
	previewDefault := config.GetBool(config.KeyPreview)
	stripANSIDefault := config.GetBool(config.KeyStripANSI)
	jsonFieldDefault := config.GetString(config.KeyJSONField)
	strictRunsDefault := config.GetBool(config.KeyStrictRuns)

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	checkUpdateFlag := flag.Bool("check-update", false, "Check GitHub for a newer release and exit")
	upgradeFlag := flag.Bool("upgrade", false, "Download and install the latest release")
	debugFlag := flag.Bool("debug", false, "Write debug logs to ~/.winnow/debug.log")
	queryFlag := flag.String("query", "", "Start with QUERY already typed")
	promptFlag := flag.String("prompt", promptDefault, "Prompt shown before the query")
	inputFlag := flag.String("input", "", "Read candidate lines from FILE instead of stdin")
	filterFlag := flag.String("filter", "", "Print lines matching QUERY in rank order and exit")
	themeFlag := flag.String("theme", themeDefault, "Color theme (tokyonight, dracula, gruvbox, ...)")
	outputFormatFlag := flag.String("output-format", outputFormatDefault, "Preview markdown style (dark, light, plain)")
	stripANSIFlag := flag.Bool("strip-ansi", stripANSIDefault, "Strip ANSI escape sequences before matching")
	jsonFieldFlag := flag.String("json-field", jsonFieldDefault, "Match against this field of JSON input lines")
	noHistoryFlag := flag.Bool("no-history", false, "Do not read or record pick history")
	previewFlag := flag.Bool("preview", previewDefault, "Start with the preview pane open")
	strictRunsFlag := flag.Bool("strict-runs", strictRunsDefault, "Only reward strictly adjacent match runs")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	runtime := computeRuntimeOptions(runtimeFlags{
		query:        queryFlag,
		prompt:       promptFlag,
		inputPath:    inputFlag,
		filterQuery:  filterFlag,
		theme:        themeFlag,
		outputFormat: outputFormatFlag,
		stripANSI:    stripANSIFlag,
		jsonField:    jsonFieldFlag,
		noHistory:    noHistoryFlag,
		preview:      previewFlag,
		strictRuns:   strictRunsFlag,
	}, visited)

	if *checkUpdateFlag {
		os.Exit(runCheckUpdate(os.Stdout, os.Stderr, runtime.repoOwner, runtime.repoName))
	}
	if *upgradeFlag {
		os.Exit(runUpgrade(os.Stdout, os.Stderr, runtime.repoOwner, runtime.repoName))
	}

	if err := debug.Init(*debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug logging unavailable: %v\n", err)
	}

	if runtime.inputPath == "" && stdinIsTerminal() {
		fmt.Fprintln(os.Stderr, "Error: nothing to pick from; pipe lines on stdin or pass --input FILE")
		debug.Close()
		os.Exit(2)
	}

	if runtime.theme != "" && !theme.SetTheme(runtime.theme) {
		fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using %q\n", runtime.theme, theme.CurrentName())
	}

	exit := runWithRuntime(runtime, os.Stdout, os.Stderr, input.Source, ui.NewApp,
		func(app *ui.App) programRunner {
			// The query comes from the TTY and the UI paints on stderr, so
			// stdout carries nothing but the accepted line.
			return tea.NewProgram(app,
				tea.WithInputTTY(),
				tea.WithOutput(os.Stderr),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
		},
		func() startupAnimator {
			return newStartupSpinner(os.Stderr, spinnerDelay)
		},
	)
	debug.Close()
	os.Exit(exit)
}

type candidateLoader func(path string, opts input.Options) ([]fuzzy.Candidate, error)

type appBuilder func(ui.Config) *ui.App

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

// startupAnimator is the spinner seam used while candidates load.
type startupAnimator interface {
	Stage(stage startupStage, detail string)
	Stop()
}

type spinnerFunc func() startupAnimator

// runWithRuntime drives one invocation once flags are resolved: load the
// candidates, then either print filter-mode matches or run the picker and
// emit its outcome. The return value is the process exit code.
func runWithRuntime(
	runtime runtimeOptions,
	stdout, stderr io.Writer,
	loader candidateLoader,
	builder appBuilder,
	factory programFactory,
	spinner spinnerFunc,
) int {
	var anim startupAnimator
	if !runtime.filterMode && spinner != nil {
		anim = spinner()
	}
	stopAnim := func() {
		if anim != nil {
			anim.Stop()
			anim = nil
		}
	}
	defer stopAnim()

	if anim != nil {
		anim.Stage(stageReadingInput, "")
	}
	candidates, err := loader(runtime.inputPath, input.Options{
		StripANSI: runtime.stripANSI,
		JSONField: runtime.jsonField,
	})
	if err != nil {
		stopAnim()
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if runtime.filterMode {
		return runFilter(stdout, candidates, runtime.filterQuery, runtime.strictRuns)
	}

	var store *history.Store
	if runtime.historyEnabled {
		if anim != nil {
			anim.Stage(stageLoadingHistory, "")
		}
		store = openHistory(stderr, runtime.historyPath)
	}
	defer func() {
		if store != nil {
			_ = store.Close()
		}
	}()

	if anim != nil {
		anim.Stage(stageReady, fmt.Sprintf("%d candidates", len(candidates)))
	}

	appCfg := ui.Config{
		Prompt:         runtime.prompt,
		InitialQuery:   runtime.initialQuery,
		Candidates:     candidates,
		StrictRuns:     runtime.strictRuns,
		AsyncThreshold: runtime.asyncThreshold,
		ShowPreview:    runtime.preview,
		PreviewFormat:  runtime.outputFormat,
		History:        store,
		Version:        Version,
	}

	// The spinner owns the stderr line until here; it must be gone before
	// the program takes over the terminal.
	stopAnim()

	final, err := runProgram(appCfg, builder, factory)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	return finishRun(stdout, final, store, runtime.historyLimit)
}

func runProgram(cfg ui.Config, builder appBuilder, factory programFactory) (*ui.App, error) {
	if builder == nil {
		return nil, fmt.Errorf("app builder is nil")
	}
	app := builder(cfg)
	if app == nil {
		return nil, fmt.Errorf("initialize UI: nil app")
	}
	if factory == nil {
		return nil, fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return nil, fmt.Errorf("program is nil")
	}
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("run UI: %w", err)
	}
	if m, ok := final.(*ui.App); ok {
		return m, nil
	}
	return app, nil
}

// finishRun turns the final model state into process output: an accepted
// line goes to stdout and into history, anything else exits 1.
func finishRun(stdout io.Writer, app *ui.App, store *history.Store, historyLimit int) int {
	if app == nil || !app.Accepted() {
		return 1
	}
	choice, ok := app.Selection()
	if !ok {
		return 1
	}
	fmt.Fprintln(stdout, choice.Raw)
	recordChoice(store, choice.Text, historyLimit)
	return 0
}

// recordChoice appends the pick to history. Failures are logged, never fatal.
func recordChoice(store *history.Store, text string, limit int) {
	if store == nil || strings.TrimSpace(text) == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), historyWriteTimeout)
	defer cancel()
	if err := store.Record(ctx, text); err != nil {
		debug.Logf("history record failed: %v", err)
		return
	}
	if err := store.Prune(ctx, limit); err != nil {
		debug.Logf("history prune failed: %v", err)
	}
}

// openHistory opens the store at path, or the default location when path is
// empty. A failed open disables history for the session.
func openHistory(stderr io.Writer, path string) *history.Store {
	if strings.TrimSpace(path) == "" {
		defaultPath, err := history.DefaultPath()
		if err != nil {
			fmt.Fprintf(stderr, "Warning: history disabled: %v\n", err)
			return nil
		}
		path = defaultPath
	}
	store, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: history disabled: %v\n", err)
		return nil
	}
	return store
}

type runtimeFlags struct {
	query        *string
	prompt       *string
	inputPath    *string
	filterQuery  *string
	theme        *string
	outputFormat *string
	stripANSI    *bool
	jsonField    *string
	noHistory    *bool
	preview      *bool
	strictRuns   *bool
}

type runtimeOptions struct {
	initialQuery string
	prompt       string
	inputPath    string
	filterQuery  string
	filterMode   bool
	theme        string
	outputFormat string
	stripANSI    bool
	jsonField    string

	historyEnabled bool
	historyPath    string
	historyLimit   int

	preview        bool
	strictRuns     bool
	asyncThreshold int

	repoOwner string
	repoName  string
}

// computeRuntimeOptions merges config values with flags. A flag wins only
// when it was set on the command line, so config is never shadowed by flag
// defaults.
func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	prompt := config.GetString(config.KeyPrompt)
	if flagWasExplicitlySet("prompt", visited) {
		prompt = *flags.prompt
	}

	themeName := strings.TrimSpace(config.GetString(config.KeyTheme))
	if flagWasExplicitlySet("theme", visited) {
		themeName = strings.TrimSpace(*flags.theme)
	}

	outputFormat := strings.TrimSpace(config.GetString(config.KeyOutputFormat))
	if flagWasExplicitlySet("output-format", visited) {
		outputFormat = strings.TrimSpace(*flags.outputFormat)
	}

	stripANSI := config.GetBool(config.KeyStripANSI)
	if flagWasExplicitlySet("strip-ansi", visited) {
		stripANSI = *flags.stripANSI
	}

	jsonField := strings.TrimSpace(config.GetString(config.KeyJSONField))
	if flagWasExplicitlySet("json-field", visited) {
		jsonField = strings.TrimSpace(*flags.jsonField)
	}

	strictRuns := config.GetBool(config.KeyStrictRuns)
	if flagWasExplicitlySet("strict-runs", visited) {
		strictRuns = *flags.strictRuns
	}

	preview := config.GetBool(config.KeyPreview)
	if flagWasExplicitlySet("preview", visited) {
		preview = *flags.preview
	}

	historyEnabled := config.GetBool(config.KeyHistoryEnabled)
	if *flags.noHistory {
		historyEnabled = false
	}

	repoOwner := strings.TrimSpace(config.GetString(config.KeyUpdateRepoOwner))
	if repoOwner == "" {
		repoOwner = update.DefaultRepoOwner
	}
	repoName := strings.TrimSpace(config.GetString(config.KeyUpdateRepoName))
	if repoName == "" {
		repoName = update.DefaultRepoName
	}

	return runtimeOptions{
		initialQuery:   *flags.query,
		prompt:         prompt,
		inputPath:      strings.TrimSpace(*flags.inputPath),
		filterQuery:    *flags.filterQuery,
		filterMode:     flagWasExplicitlySet("filter", visited),
		theme:          themeName,
		outputFormat:   outputFormat,
		stripANSI:      stripANSI,
		jsonField:      jsonField,
		historyEnabled: historyEnabled,
		historyPath:    strings.TrimSpace(config.GetString(config.KeyHistoryPath)),
		historyLimit:   sanitizeHistoryLimit(config.GetInt(config.KeyHistoryLimit)),
		preview:        preview,
		strictRuns:     strictRuns,
		asyncThreshold: sanitizeAsyncThreshold(config.GetInt(config.KeyAsyncThreshold)),
		repoOwner:      repoOwner,
		repoName:       repoName,
	}
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := flag.CommandLine.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}

func sanitizeHistoryLimit(limit int) int {
	if limit <= 0 {
		return config.DefaultHistoryLimit
	}
	return limit
}

func sanitizeAsyncThreshold(threshold int) int {
	if threshold <= 0 {
		return config.DefaultAsyncThreshold
	}
	return threshold
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
