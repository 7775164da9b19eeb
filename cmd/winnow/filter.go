package main

import (
	"fmt"
	"io"

	"winnow/internal/fuzzy"
)

// runFilter ranks the candidates against query once and prints the matching
// lines to w in rank order, one per line, exactly as they arrived. Returns 0
// when at least one line matched and 1 otherwise, mirroring grep.
func runFilter(w io.Writer, candidates []fuzzy.Candidate, query string, strictRuns bool) int {
	ranker := fuzzy.NewRanker(fuzzy.Options{AdjacentRunBonus: strictRuns})
	ranked := ranker.Rank(query, candidates)
	if len(ranked) == 0 {
		return 1
	}
	for _, entry := range ranked {
		fmt.Fprintln(w, entry.Raw)
	}
	return 0
}
