package fuzzy

import "sort"

// Candidate is one selectable line of input.
type Candidate struct {
	// Text is what matching runs against and what the picker displays.
	Text string

	// Raw is the original line as read from the source and is what the
	// picker emits on accept. Equal to Text unless ingestion
	// transformed the line (ANSI stripping, field extraction).
	Raw string

	// Index is the candidate's 0-based position in the original input
	// order.
	Index int
}

// Ranked is a candidate that survived a rank pass.
type Ranked struct {
	Candidate

	// Score is the relevance score from the match pass, zero when the
	// ranking query was empty.
	Score int

	// Positions holds the matched rune indices in Text, for
	// highlighting. Nil when the ranking query was empty.
	Positions []int
}

// Ranker filters and orders candidates by fuzzy relevance. It is
// stateless after construction and safe for concurrent use.
type Ranker struct {
	matcher *Matcher
}

// NewRanker creates a Ranker whose matches use the given options.
func NewRanker(opts Options) *Ranker {
	return &Ranker{matcher: NewMatcher(opts)}
}

// Rank matches every candidate against query and returns the matches
// ordered by descending score. Equal scores keep the order candidates
// were passed in, so ranking is deterministic and idempotent. An empty
// query returns all candidates in their original order, unscored. The
// input slice is never modified.
func (r *Ranker) Rank(query string, candidates []Candidate) []Ranked {
	if query == "" {
		out := make([]Ranked, len(candidates))
		for i, c := range candidates {
			out[i] = Ranked{Candidate: c}
		}
		return out
	}

	pat := foldRunes([]rune(query))
	out := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		res := r.matcher.matchFolded(pat, []rune(c.Text))
		if !res.Matched {
			continue
		}
		out = append(out, Ranked{Candidate: c, Score: res.Score, Positions: res.Positions})
	}
	sortRanked(out)
	return out
}

func sortRanked(rs []Ranked) {
	sort.SliceStable(rs, func(a, b int) bool {
		return rs[a].Score > rs[b].Score
	})
}

// Candidates wraps plain lines as candidates, preserving their order.
func Candidates(lines []string) []Candidate {
	cs := make([]Candidate, len(lines))
	for i, l := range lines {
		cs[i] = Candidate{Text: l, Raw: l, Index: i}
	}
	return cs
}

// RankStrings is the plain-text form of Rank: it takes lines, returns
// the matching lines in rank order, and discards scores. An empty query
// returns the lines unchanged.
func RankStrings(query string, lines []string) []string {
	ranked := NewRanker(DefaultOptions()).Rank(query, Candidates(lines))
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Text
	}
	return out
}
