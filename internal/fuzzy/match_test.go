package fuzzy

import (
	"strings"
	"testing"
)

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMatchEmptyPattern(t *testing.T) {
	for _, line := range []string{"", "a", "apple pie", "   "} {
		res := Match("", line)
		if !res.Matched {
			t.Errorf("empty pattern should match %q", line)
		}
		if res.Score != 0 {
			t.Errorf("empty pattern score on %q: expected 0, got %d", line, res.Score)
		}
		if len(res.Positions) != 0 {
			t.Errorf("empty pattern positions on %q: expected none, got %v", line, res.Positions)
		}
	}
}

func TestMatchPatternLongerThanCandidate(t *testing.T) {
	tests := []struct {
		pattern string
		line    string
	}{
		{"ab", "a"},
		{"a", ""},
		// Without the length check the zero column lets the second 'a'
		// score as if the first consumed nothing.
		{"aa", "a"},
		{"aaaa", "aaa"},
	}
	for _, tt := range tests {
		res := Match(tt.pattern, tt.line)
		if res.Matched {
			t.Errorf("Match(%q, %q) should not match, got score %d", tt.pattern, tt.line, res.Score)
		}
		if res.Positions != nil {
			t.Errorf("Match(%q, %q) should carry no positions, got %v", tt.pattern, tt.line, res.Positions)
		}
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	a := Match("AB", "xaybz")
	b := Match("ab", "xAYbz")
	if a.Matched != b.Matched {
		t.Fatalf("matched mismatch: %v vs %v", a.Matched, b.Matched)
	}
	if a.Score != b.Score {
		t.Fatalf("score mismatch: %d vs %d", a.Score, b.Score)
	}
	if !equalInts(a.Positions, b.Positions) {
		t.Fatalf("positions mismatch: %v vs %v", a.Positions, b.Positions)
	}

	upper := Match("readme", "README")
	if !upper.Matched {
		t.Fatal("expected case-folded match against README")
	}
}

// Expected scores and positions below are derived by running the scoring
// transitions by hand, cell by cell. They pin the exact arithmetic: any
// change to a weight or transition shows up here first.
func TestMatchScoring(t *testing.T) {
	tests := []struct {
		pattern   string
		line      string
		score     int
		positions []int
	}{
		{"a", "a", 32, []int{0}},
		{"a", "xa", 16, []int{1}},
		{"fo", "foo", 47, []int{0, 2}},
		{"fo", "xfoo", 31, []int{1, 3}},
		{"abc", "abc", 96, []int{0, 1, 2}},
		{"abc", "a b c", 94, []int{0, 2, 4}},
		{"ap", "apple pie", 57, []int{0, 6}},
		{"ap", "grape juice", 41, []int{2, 3}},
		{"ap", "banana split", 27, []int{5, 8}},
		{"readme", "README", 192, []int{0, 1, 2, 3, 4, 5}},
		{"readme", "Readme.md", 189, []int{0, 1, 2, 3, 4, 5}},
		{"hél", "Héllo", 78, []int{0, 1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.line, func(t *testing.T) {
			res := Match(tt.pattern, tt.line)
			if !res.Matched {
				t.Fatalf("expected a match")
			}
			if res.Score != tt.score {
				t.Errorf("expected score %d, got %d", tt.score, res.Score)
			}
			if !equalInts(res.Positions, tt.positions) {
				t.Errorf("expected positions %v, got %v", tt.positions, res.Positions)
			}
		})
	}
}

func TestMatchNoMatch(t *testing.T) {
	t.Run("absent characters", func(t *testing.T) {
		for _, tt := range []struct{ pattern, line string }{
			{"z", "a"},
			{"readme", "main.go"},
			{"xyz", "apple pie"},
		} {
			if res := Match(tt.pattern, tt.line); res.Matched {
				t.Errorf("Match(%q, %q) should not match", tt.pattern, tt.line)
			}
		}
	})

	t.Run("gap penalties can sink a real subsequence", func(t *testing.T) {
		// 'a' matches at index 0 for +32, then forty gap extensions
		// drag the total to -8. Matched tracks the score sign, not
		// subsequence presence.
		line := "a" + strings.Repeat("x", 40)
		if res := Match("a", line); res.Matched {
			t.Errorf("expected no match, got score %d", res.Score)
		}
	})
}

func TestMatchBoundaryBonusPreference(t *testing.T) {
	boundary := Match("fo", "foo")
	mid := Match("fo", "xfoo")
	if !boundary.Matched || !mid.Matched {
		t.Fatal("both candidates should match")
	}
	if boundary.Score <= mid.Score {
		t.Errorf("word-start match should outscore mid-word: %d vs %d", boundary.Score, mid.Score)
	}

	afterSpace := Match("p", "a pie")
	midWord := Match("p", "aspie")
	if afterSpace.Score <= midWord.Score {
		t.Errorf("match after a space should outscore mid-word: %d vs %d", afterSpace.Score, midWord.Score)
	}
}

func TestMatchPositionProperties(t *testing.T) {
	patterns := []string{"a", "ap", "pie", "readme", "abc"}
	lines := []string{"apple pie", "Readme.md", "a b c", "xxabcxx", "pie"}
	for _, p := range patterns {
		for _, l := range lines {
			res := Match(p, l)
			if !res.Matched {
				continue
			}
			runes := len([]rune(l))
			last := -1
			for _, pos := range res.Positions {
				if pos <= last {
					t.Errorf("Match(%q, %q): positions %v not strictly ascending", p, l, res.Positions)
					break
				}
				if pos >= runes {
					t.Errorf("Match(%q, %q): position %d out of range", p, l, pos)
				}
				last = pos
			}
		}
	}
}

// The scorer intentionally reproduces two quirks of its transition
// rules; these anchors keep them from being "fixed" by accident.
func TestMatchTransitionAnchors(t *testing.T) {
	t.Run("reversed pattern can still score", func(t *testing.T) {
		// "ba" against "ab": the trailing pattern character matches at
		// index 0 via the zero column, leaving a positive total even
		// though no b-then-a subsequence exists.
		res := Match("ba", "ab")
		if !res.Matched || res.Score != 31 {
			t.Fatalf("expected match with score 31, got %+v", res)
		}
		if !equalInts(res.Positions, []int{0}) {
			t.Fatalf("expected positions [0], got %v", res.Positions)
		}
	})

	t.Run("positions follow the left carry", func(t *testing.T) {
		// Two completions of "ap" in "apple pie" tie at 57; the
		// reported positions come from the later 'p' because mismatch
		// cells always chain positions from the left.
		res := Match("ap", "apple pie")
		if !equalInts(res.Positions, []int{0, 6}) {
			t.Fatalf("expected positions [0 6], got %v", res.Positions)
		}
	})
}

func TestMatchAdjacentRunOption(t *testing.T) {
	strict := NewMatcher(Options{AdjacentRunBonus: true})

	t.Run("agrees on genuine runs", func(t *testing.T) {
		def := Match("fo", "foo")
		alt := strict.Match("fo", "foo")
		if def.Score != alt.Score || !equalInts(def.Positions, alt.Positions) {
			t.Fatalf("expected identical results, got %+v vs %+v", def, alt)
		}
	})

	t.Run("diverges when the run bonus crosses a gap", func(t *testing.T) {
		// In "z ab" the default rule awards the run bonus to 'b'
		// because the preceding characters ('a', 'a') agree, even
		// though the previous match was placed two cells back.
		def := Match("zaab", "z ab")
		alt := strict.Match("zaab", "z ab")
		if def.Score != 92 {
			t.Errorf("default rule: expected score 92, got %d", def.Score)
		}
		if alt.Score != 76 {
			t.Errorf("adjacent-run rule: expected score 76, got %d", alt.Score)
		}
		if !equalInts(def.Positions, []int{0, 2, 3}) || !equalInts(alt.Positions, []int{0, 2, 3}) {
			t.Errorf("both rules should report positions [0 2 3], got %v and %v", def.Positions, alt.Positions)
		}
	})
}

func BenchmarkMatch(b *testing.B) {
	line := strings.Repeat("src/internal/handler registry ", 4)
	m := NewMatcher(DefaultOptions())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Match("shr", line)
	}
}
