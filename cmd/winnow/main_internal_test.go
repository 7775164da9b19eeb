package main

import (
	"flag"
	"sync"
	"testing"

	"winnow/internal/config"
	"winnow/internal/update"
)

var configInitOnce sync.Once

func ensureTestConfig(t *testing.T) {
	t.Helper()
	configInitOnce.Do(func() {
		dir := t.TempDir()
		if err := config.Initialize(
			config.WithProjectConfig(""),
			config.WithUserConfig(""),
			config.WithWorkingDir(dir),
		); err != nil {
			t.Fatalf("init config: %v", err)
		}
	})
	overrides := map[string]any{
		config.KeyPrompt:          "> ",
		config.KeyTheme:           "tokyonight",
		config.KeyOutputFormat:    "text",
		config.KeyPreview:         false,
		config.KeyHistoryEnabled:  true,
		config.KeyHistoryPath:     "",
		config.KeyHistoryLimit:    config.DefaultHistoryLimit,
		config.KeyStripANSI:       false,
		config.KeyJSONField:       "",
		config.KeyStrictRuns:      false,
		config.KeyAsyncThreshold:  config.DefaultAsyncThreshold,
		config.KeyUpdateRepoOwner: "",
		config.KeyUpdateRepoName:  "",
	}
	if err := config.ApplyOverrides(overrides); err != nil {
		t.Fatalf("apply overrides: %v", err)
	}
}

func buildRuntimeOptionsForArgs(t *testing.T, args []string, overrides ...map[string]any) runtimeOptions {
	t.Helper()
	ensureTestConfig(t)
	if len(overrides) > 0 && len(overrides[0]) > 0 {
		if err := config.ApplyOverrides(overrides[0]); err != nil {
			t.Fatalf("apply custom overrides: %v", err)
		}
	}

	promptDefault := config.GetString(config.KeyPrompt)
	themeDefault := config.GetString(config.KeyTheme)
	outputFormatDefault := config.GetString(config.KeyOutputFormat)
	previewDefault := config.GetBool(config.KeyPreview)
	stripANSIDefault := config.GetBool(config.KeyStripANSI)
	jsonFieldDefault := config.GetString(config.KeyJSONField)
	strictRunsDefault := config.GetBool(config.KeyStrictRuns)

	fs := flag.NewFlagSet("winnow-test", flag.ContinueOnError)
	queryFlag := fs.String("query", "", "query")
	promptFlag := fs.String("prompt", promptDefault, "prompt")
	inputFlag := fs.String("input", "", "input path")
	filterFlag := fs.String("filter", "", "filter query")
	themeFlag := fs.String("theme", themeDefault, "theme")
	outputFormatFlag := fs.String("output-format", outputFormatDefault, "output format")
	stripANSIFlag := fs.Bool("strip-ansi", stripANSIDefault, "strip ansi")
	jsonFieldFlag := fs.String("json-field", jsonFieldDefault, "json field")
	noHistoryFlag := fs.Bool("no-history", false, "no history")
	previewFlag := fs.Bool("preview", previewDefault, "preview")
	strictRunsFlag := fs.Bool("strict-runs", strictRunsDefault, "strict runs")

	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse args: %v", err)
	}
	visited := map[string]struct{}{}
	fs.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	flags := runtimeFlags{
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
	}
	return computeRuntimeOptions(flags, visited)
}

func TestComputeRuntimeOptions_PromptFlagOverridesConfig(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, []string{"--prompt", "pick: "}, map[string]any{config.KeyPrompt: "choose: "})
	if opts.prompt != "pick: " {
		t.Fatalf("expected flag prompt to win, got %q", opts.prompt)
	}
}

func TestComputeRuntimeOptions_ConfigPromptUsed(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, []string{}, map[string]any{config.KeyPrompt: "choose: "})
	if opts.prompt != "choose: " {
		t.Fatalf("expected config prompt, got %q", opts.prompt)
	}
}

func TestComputeRuntimeOptions_ThemeFlagOverridesConfig(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, []string{"--theme", "nord"}, map[string]any{config.KeyTheme: "dracula"})
	if opts.theme != "nord" {
		t.Fatalf("expected flag theme to win, got %q", opts.theme)
	}
}

func TestComputeRuntimeOptions_FilterFlagEnablesFilterMode(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, []string{"--filter", "deploy"})
	if !opts.filterMode {
		t.Fatal("expected filter mode")
	}
	if opts.filterQuery != "deploy" {
		t.Fatalf("expected filter query %q, got %q", "deploy", opts.filterQuery)
	}
}

func TestComputeRuntimeOptions_EmptyFilterStillFilterMode(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, []string{"--filter="})
	if !opts.filterMode {
		t.Fatal("expected explicit empty filter to enable filter mode")
	}
	if opts.filterQuery != "" {
		t.Fatalf("expected empty filter query, got %q", opts.filterQuery)
	}
}

func TestComputeRuntimeOptions_NoFilterFlagKeepsInteractive(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, []string{})
	if opts.filterMode {
		t.Fatal("expected interactive mode without --filter")
	}
}

func TestComputeRuntimeOptions_NoHistoryFlagDisables(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, []string{"--no-history"})
	if opts.historyEnabled {
		t.Fatal("expected --no-history to disable history")
	}
}

func TestComputeRuntimeOptions_HistoryDisabledByConfig(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, []string{}, map[string]any{config.KeyHistoryEnabled: false})
	if opts.historyEnabled {
		t.Fatal("expected config to disable history")
	}
}

func TestComputeRuntimeOptions_HistoryLimitSanitized(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, []string{}, map[string]any{config.KeyHistoryLimit: -3})
	if opts.historyLimit != config.DefaultHistoryLimit {
		t.Fatalf("expected default history limit for negative config, got %d", opts.historyLimit)
	}

	opts = buildRuntimeOptionsForArgs(t, []string{}, map[string]any{config.KeyHistoryLimit: 25})
	if opts.historyLimit != 25 {
		t.Fatalf("expected history limit 25, got %d", opts.historyLimit)
	}
}

func TestComputeRuntimeOptions_InputPathTrimmed(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, []string{"--input", " /tmp/lines.txt "})
	if opts.inputPath != "/tmp/lines.txt" {
		t.Fatalf("expected input path trimmed, got %q", opts.inputPath)
	}
}

func TestComputeRuntimeOptions_JSONFieldTrimmed(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, []string{"--json-field", " message "})
	if opts.jsonField != "message" {
		t.Fatalf("expected json field trimmed, got %q", opts.jsonField)
	}
}

func TestComputeRuntimeOptions_StripANSIFlag(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, []string{"--strip-ansi"})
	if !opts.stripANSI {
		t.Fatal("expected --strip-ansi to be honored")
	}
}

func TestComputeRuntimeOptions_PreviewFlagBeatsConfig(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, []string{"--preview=false"}, map[string]any{config.KeyPreview: true})
	if opts.preview {
		t.Fatal("expected explicit --preview=false to win over config")
	}
}

func TestComputeRuntimeOptions_StrictRunsFlag(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, []string{"--strict-runs"})
	if !opts.strictRuns {
		t.Fatal("expected --strict-runs to be honored")
	}
}

func TestComputeRuntimeOptions_AsyncThresholdSanitized(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, []string{}, map[string]any{config.KeyAsyncThreshold: 0})
	if opts.asyncThreshold != config.DefaultAsyncThreshold {
		t.Fatalf("expected default async threshold for zero config, got %d", opts.asyncThreshold)
	}

	opts = buildRuntimeOptionsForArgs(t, []string{}, map[string]any{config.KeyAsyncThreshold: 250})
	if opts.asyncThreshold != 250 {
		t.Fatalf("expected async threshold 250, got %d", opts.asyncThreshold)
	}
}

func TestComputeRuntimeOptions_UpdateRepoDefaults(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, []string{})
	if opts.repoOwner != update.DefaultRepoOwner {
		t.Fatalf("expected default repo owner, got %q", opts.repoOwner)
	}
	if opts.repoName != update.DefaultRepoName {
		t.Fatalf("expected default repo name, got %q", opts.repoName)
	}
}

func TestComputeRuntimeOptions_UpdateRepoFromConfig(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, []string{}, map[string]any{
		config.KeyUpdateRepoOwner: "acme",
		config.KeyUpdateRepoName:  "picker",
	})
	if opts.repoOwner != "acme" || opts.repoName != "picker" {
		t.Fatalf("expected configured repo, got %s/%s", opts.repoOwner, opts.repoName)
	}
}

func TestComputeRuntimeOptions_QueryPassedThrough(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, []string{"--query", "conn reset"})
	if opts.initialQuery != "conn reset" {
		t.Fatalf("expected initial query %q, got %q", "conn reset", opts.initialQuery)
	}
}
