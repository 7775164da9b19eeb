package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"winnow/internal/fuzzy"
	"winnow/internal/history"
	"winnow/internal/input"
	"winnow/internal/ui"
)

func fixtureCandidates(lines ...string) []fuzzy.Candidate {
	return fuzzy.Candidates(lines)
}

func staticLoader(candidates []fuzzy.Candidate, err error) candidateLoader {
	return func(path string, opts input.Options) ([]fuzzy.Candidate, error) {
		return candidates, err
	}
}

type mockSpinner struct {
	stages    []startupStage
	stopped   bool
	stopCount int
}

func (m *mockSpinner) Stage(stage startupStage, detail string) {
	m.stages = append(m.stages, stage)
}

func (m *mockSpinner) Stop() {
	if m.stopped {
		return
	}
	m.stopped = true
	m.stopCount++
}

type scriptedProgram struct {
	model tea.Model
	err   error
}

func (p scriptedProgram) Run() (tea.Model, error) {
	return p.model, p.err
}

// acceptedModel builds a picker that already confirmed its first candidate.
func acceptedModel(t *testing.T, lines ...string) *ui.App {
	t.Helper()
	app := ui.NewApp(ui.Config{Candidates: fixtureCandidates(lines...)})
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	final, ok := model.(*ui.App)
	if !ok {
		t.Fatalf("expected *ui.App from Update, got %T", model)
	}
	if !final.Accepted() {
		t.Fatal("expected model to accept the first candidate")
	}
	return final
}

func abortedModel(t *testing.T, lines ...string) *ui.App {
	t.Helper()
	app := ui.NewApp(ui.Config{Candidates: fixtureCandidates(lines...)})
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEscape})
	final, ok := model.(*ui.App)
	if !ok {
		t.Fatalf("expected *ui.App from Update, got %T", model)
	}
	if !final.Aborted() {
		t.Fatal("expected model to abort")
	}
	return final
}

func TestRunWithRuntimeFilterMode(t *testing.T) {
	runtime := runtimeOptions{filterMode: true, filterQuery: "beta"}
	var stdout, stderr bytes.Buffer

	exit := runWithRuntime(runtime, &stdout, &stderr,
		staticLoader(fixtureCandidates("alpha", "beta"), nil),
		nil,
		func(app *ui.App) programRunner {
			t.Fatal("program should not run in filter mode")
			return nil
		},
		func() startupAnimator {
			t.Fatal("spinner should not be created in filter mode")
			return nil
		})

	if exit != 0 {
		t.Fatalf("expected exit 0, got %d", exit)
	}
	if got := stdout.String(); got != "beta\n" {
		t.Fatalf("expected matched line on stdout, got %q", got)
	}
}

func TestRunWithRuntimeFilterModeNoMatches(t *testing.T) {
	runtime := runtimeOptions{filterMode: true, filterQuery: "zzz"}
	var stdout, stderr bytes.Buffer

	exit := runWithRuntime(runtime, &stdout, &stderr,
		staticLoader(fixtureCandidates("alpha", "beta"), nil),
		nil, nil, nil)

	if exit != 1 {
		t.Fatalf("expected exit 1 when nothing matches, got %d", exit)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected no output, got %q", stdout.String())
	}
}

func TestRunWithRuntimeLoaderErrorStopsSpinner(t *testing.T) {
	spinner := &mockSpinner{}
	runtime := runtimeOptions{}
	var stdout, stderr bytes.Buffer

	exit := runWithRuntime(runtime, &stdout, &stderr,
		staticLoader(nil, input.ErrNoCandidates),
		nil,
		func(app *ui.App) programRunner {
			t.Fatal("factory should not be called after a load failure")
			return nil
		},
		func() startupAnimator { return spinner })

	if exit != 2 {
		t.Fatalf("expected exit 2, got %d", exit)
	}
	if !strings.Contains(stderr.String(), "Error:") {
		t.Fatalf("expected error on stderr, got %q", stderr.String())
	}
	if spinner.stopCount != 1 {
		t.Fatalf("expected spinner stop count 1, got %d", spinner.stopCount)
	}
}

func TestRunWithRuntimeAcceptPrintsSelection(t *testing.T) {
	spinner := &mockSpinner{}
	final := acceptedModel(t, "make test", "make build")
	runtime := runtimeOptions{}
	var stdout, stderr bytes.Buffer

	var builderCfg ui.Config
	exit := runWithRuntime(runtime, &stdout, &stderr,
		staticLoader(fixtureCandidates("make test", "make build"), nil),
		func(cfg ui.Config) *ui.App {
			builderCfg = cfg
			return ui.NewApp(cfg)
		},
		func(app *ui.App) programRunner {
			if !spinner.stopped {
				t.Fatal("expected spinner stopped before the program starts")
			}
			return scriptedProgram{model: final}
		},
		func() startupAnimator { return spinner })

	if exit != 0 {
		t.Fatalf("expected exit 0, got %d", exit)
	}
	if got := stdout.String(); got != "make test\n" {
		t.Fatalf("expected accepted line on stdout, got %q", got)
	}
	if len(spinner.stages) == 0 {
		t.Fatal("expected spinner stage updates")
	}
	for _, stage := range spinner.stages {
		if stage == stageLoadingHistory {
			t.Fatal("expected no history stage when history is disabled")
		}
	}
	if len(builderCfg.Candidates) != 2 {
		t.Fatalf("expected 2 candidates handed to the UI, got %d", len(builderCfg.Candidates))
	}
}

func TestRunWithRuntimeAbortExitsOne(t *testing.T) {
	final := abortedModel(t, "alpha")
	runtime := runtimeOptions{}
	var stdout, stderr bytes.Buffer

	exit := runWithRuntime(runtime, &stdout, &stderr,
		staticLoader(fixtureCandidates("alpha"), nil),
		ui.NewApp,
		func(app *ui.App) programRunner {
			return scriptedProgram{model: final}
		},
		nil)

	if exit != 1 {
		t.Fatalf("expected exit 1 on abort, got %d", exit)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected no stdout output on abort, got %q", stdout.String())
	}
}

func TestRunWithRuntimeProgramError(t *testing.T) {
	runtime := runtimeOptions{}
	var stdout, stderr bytes.Buffer

	exit := runWithRuntime(runtime, &stdout, &stderr,
		staticLoader(fixtureCandidates("alpha"), nil),
		ui.NewApp,
		func(app *ui.App) programRunner {
			return scriptedProgram{err: errors.New("boom")}
		},
		nil)

	if exit != 2 {
		t.Fatalf("expected exit 2 on program error, got %d", exit)
	}
	if !strings.Contains(stderr.String(), "run UI") {
		t.Fatalf("expected run UI error on stderr, got %q", stderr.String())
	}
}

func TestFinishRunRecordsHistory(t *testing.T) {
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	defer store.Close()

	final := acceptedModel(t, "deploy api")
	var stdout bytes.Buffer

	if exit := finishRun(&stdout, final, store, 10); exit != 0 {
		t.Fatalf("expected exit 0, got %d", exit)
	}
	if got := stdout.String(); got != "deploy api\n" {
		t.Fatalf("expected accepted line, got %q", got)
	}

	entries, err := store.Recent(context.Background(), 5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 || entries[0].Text != "deploy api" {
		t.Fatalf("expected the pick recorded once, got %+v", entries)
	}
}

func TestFinishRunWithoutAcceptance(t *testing.T) {
	var stdout bytes.Buffer
	if exit := finishRun(&stdout, nil, nil, 10); exit != 1 {
		t.Fatalf("expected exit 1 for nil app, got %d", exit)
	}

	aborted := abortedModel(t, "alpha")
	if exit := finishRun(&stdout, aborted, nil, 10); exit != 1 {
		t.Fatalf("expected exit 1 for aborted app, got %d", exit)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected no output, got %q", stdout.String())
	}
}
