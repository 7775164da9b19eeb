package main

import (
	"bytes"
	"strings"
	"testing"

	"winnow/internal/fuzzy"
	"winnow/internal/input"
)

func TestRunFilterPrintsMatchesInRankOrder(t *testing.T) {
	candidates := fuzzy.Candidates([]string{"make test", "git status", "make build"})
	var buf bytes.Buffer

	exit := runFilter(&buf, candidates, "make", false)

	if exit != 0 {
		t.Fatalf("expected exit 0, got %d", exit)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{"make test", "make build"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], line)
		}
	}
}

func TestRunFilterEmptyQueryPrintsAllInOrder(t *testing.T) {
	candidates := fuzzy.Candidates([]string{"one", "two", "three"})
	var buf bytes.Buffer

	exit := runFilter(&buf, candidates, "", false)

	if exit != 0 {
		t.Fatalf("expected exit 0, got %d", exit)
	}
	if got := buf.String(); got != "one\ntwo\nthree\n" {
		t.Fatalf("expected all lines in input order, got %q", got)
	}
}

func TestRunFilterNoMatchExitsOne(t *testing.T) {
	candidates := fuzzy.Candidates([]string{"alpha", "beta"})
	var buf bytes.Buffer

	exit := runFilter(&buf, candidates, "zzzz", false)

	if exit != 1 {
		t.Fatalf("expected exit 1, got %d", exit)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestRunFilterPrintsRawForm(t *testing.T) {
	reader := strings.NewReader(
		`{"msg":"timeout talking to db"}` + "\n" + `{"msg":"listening on :8080"}` + "\n")
	candidates, err := input.Read(reader, input.Options{JSONField: "msg"})
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var buf bytes.Buffer
	exit := runFilter(&buf, candidates, "timeout", false)

	if exit != 0 {
		t.Fatalf("expected exit 0, got %d", exit)
	}
	if got := buf.String(); got != `{"msg":"timeout talking to db"}`+"\n" {
		t.Fatalf("expected the raw JSON line, got %q", got)
	}
}
