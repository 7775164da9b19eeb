// Package fuzzy implements the match scoring engine behind the picker.
//
// Two layers, strictly split: the Matcher is a pure function from one
// pattern and one candidate line to a match outcome, a score, and the
// matched character positions; the Ranker applies the Matcher across a
// candidate list and produces the filtered, score-ordered view shown to
// the user. Neither layer does I/O or keeps shared mutable state.
//
// # Scoring
//
// Matching is case-insensitive (both sides are folded rune by rune) and
// gap-tolerant: the pattern must occur as a loose subsequence, and the
// score rewards tight, word-aligned occurrences. The scorer is a dynamic
// program over pattern × candidate with three bonuses and two penalties:
//
//   - matchBonus (16) for every aligned character
//   - boundaryBonus (16) when the aligned character starts the line or
//     follows a space
//   - consecutiveBonus (16) when the previous characters of both
//     sequences are equal (see Options.AdjacentRunBonus for the stricter
//     variant)
//   - gapStartPenalty (-3) to open a gap, gapExtendPenalty (-1) to
//     extend one
//
// A candidate matches exactly when its final score is positive. An empty
// pattern matches everything with score zero, and a pattern with more
// characters than the candidate never matches.
//
// # Usage
//
//	ranker := fuzzy.NewRanker(fuzzy.DefaultOptions())
//	ranked := ranker.Rank("ap", fuzzy.Candidates([]string{
//		"apple pie", "banana split", "grape juice",
//	}))
//	for _, r := range ranked {
//		fmt.Printf("%s (score %d)\n", r.Text, r.Score)
//	}
//
// # Concurrency
//
// Matcher and Ranker are stateless after construction and safe for
// concurrent use. RankContext scores large candidate sets on a bounded
// worker pool and honors context cancellation; its output is identical
// to Rank for the same inputs.
//
// # Performance
//
// One match costs O(|pattern| × |candidate|) time. Score state is two
// rows of ints; positions are recovered from a one-byte-per-cell
// backpointer table in a single backtrack pass, so no per-cell position
// lists are ever materialized.
package fuzzy
