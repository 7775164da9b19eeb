package fuzzy

import (
	"reflect"
	"testing"
)

func rankedTexts(rs []Ranked) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Text
	}
	return out
}

func TestRankEmptyQueryIdentity(t *testing.T) {
	lines := []string{"banana split", "apple pie", "grape juice"}
	ranker := NewRanker(DefaultOptions())

	ranked := ranker.Rank("", Candidates(lines))
	if got := rankedTexts(ranked); !reflect.DeepEqual(got, lines) {
		t.Fatalf("expected original order %v, got %v", lines, got)
	}
	for _, r := range ranked {
		if r.Score != 0 || r.Positions != nil {
			t.Errorf("empty query should leave %q unscored, got score %d positions %v", r.Text, r.Score, r.Positions)
		}
	}
}

func TestRankOrdersByDescendingScore(t *testing.T) {
	ranker := NewRanker(DefaultOptions())
	ranked := ranker.Rank("ap", Candidates([]string{"apple pie", "banana split", "grape juice"}))

	want := []string{"apple pie", "grape juice", "banana split"}
	if got := rankedTexts(ranked); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Fatalf("scores not descending: %d before %d", ranked[i-1].Score, ranked[i].Score)
		}
	}
	// "banana split" only matches through gaps: 'a' at 5, 'p' at 8.
	if got := ranked[2].Positions; !equalInts(got, []int{5, 8}) {
		t.Errorf("expected banana split positions [5 8], got %v", got)
	}
}

func TestRankFiltersNonMatches(t *testing.T) {
	ranker := NewRanker(DefaultOptions())
	ranked := ranker.Rank("readme", Candidates([]string{"Readme.md", "main.go", "README"}))

	want := []string{"README", "Readme.md"}
	if got := rankedTexts(ranked); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if ranked[0].Score < ranked[1].Score {
		t.Errorf("README should score at least Readme.md: %d vs %d", ranked[0].Score, ranked[1].Score)
	}
}

func TestRankTieBreakKeepsInputOrder(t *testing.T) {
	candidates := []Candidate{
		{Text: "apple", Raw: "first", Index: 0},
		{Text: "apple", Raw: "second", Index: 1},
		{Text: "apple", Raw: "third", Index: 2},
	}
	ranked := NewRanker(DefaultOptions()).Rank("ap", candidates)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 results, got %d", len(ranked))
	}
	for i, want := range []string{"first", "second", "third"} {
		if ranked[i].Raw != want {
			t.Errorf("position %d: expected %q, got %q", i, want, ranked[i].Raw)
		}
	}
}

func TestRankIdempotent(t *testing.T) {
	candidates := Candidates([]string{"apple pie", "banana split", "grape juice", "README"})
	ranker := NewRanker(DefaultOptions())

	first := ranker.Rank("ae", candidates)
	second := ranker.Rank("ae", candidates)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated identical queries diverged:\n%v\n%v", first, second)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	candidates := Candidates([]string{"grape juice", "apple pie", "banana split"})
	snapshot := make([]Candidate, len(candidates))
	copy(snapshot, candidates)

	ranker := NewRanker(DefaultOptions())
	ranker.Rank("ap", candidates)
	ranker.Rank("", candidates)

	if !reflect.DeepEqual(candidates, snapshot) {
		t.Fatalf("input slice was modified: %v", candidates)
	}
}

func TestRankWholeCandidateBeatsScattered(t *testing.T) {
	ranked := NewRanker(DefaultOptions()).Rank("abc", Candidates([]string{"a b c", "abc"}))
	if len(ranked) != 2 {
		t.Fatalf("expected both candidates to match, got %d", len(ranked))
	}
	if ranked[0].Text != "abc" {
		t.Fatalf("exact candidate should rank first, got %q", ranked[0].Text)
	}
	if ranked[0].Score <= ranked[1].Score {
		t.Errorf("exact candidate should outscore scattered: %d vs %d", ranked[0].Score, ranked[1].Score)
	}
}

func TestRankStrings(t *testing.T) {
	t.Run("empty query is identity", func(t *testing.T) {
		lines := []string{"c", "b", "a"}
		if got := RankStrings("", lines); !reflect.DeepEqual(got, lines) {
			t.Fatalf("expected %v, got %v", lines, got)
		}
	})

	t.Run("ranked and filtered", func(t *testing.T) {
		got := RankStrings("readme", []string{"Readme.md", "main.go", "README"})
		want := []string{"README", "Readme.md"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})
}

func BenchmarkRank(b *testing.B) {
	lines := make([]string, 0, 1000)
	base := []string{"cmd/picker/main.go", "internal/match/score.go", "docs/usage notes.md", "vendor/some/dep/file.go"}
	for i := 0; i < 1000; i++ {
		lines = append(lines, base[i%len(base)])
	}
	candidates := Candidates(lines)
	ranker := NewRanker(DefaultOptions())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ranker.Rank("mago", candidates)
	}
}
