package fuzzy

import (
	"context"
	"runtime"
	"sync"
)

// rankChunkSize is the number of candidates scored per worker unit.
// Sets at or below this size are ranked inline; the chunking overhead
// only pays for itself on large inputs.
const rankChunkSize = 512

// RankContext is Rank with cooperative cancellation and parallel
// scoring for large candidate sets. Its output is identical to Rank for
// the same inputs; a cancelled context yields the context error and no
// partial result. Callers that race passes against each other must
// still discard stale results themselves (last query wins).
func (r *Ranker) RankContext(ctx context.Context, query string, candidates []Candidate) ([]Ranked, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if query == "" || len(candidates) <= rankChunkSize {
		return r.Rank(query, candidates), nil
	}

	pat := foldRunes([]rune(query))
	chunks := (len(candidates) + rankChunkSize - 1) / rankChunkSize
	partials := make([][]Ranked, chunks)

	workers := runtime.NumCPU()
	if workers > chunks {
		workers = chunks
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					continue
				}
				start := idx * rankChunkSize
				end := start + rankChunkSize
				if end > len(candidates) {
					end = len(candidates)
				}
				part := make([]Ranked, 0, end-start)
				for _, c := range candidates[start:end] {
					res := r.matcher.matchFolded(pat, []rune(c.Text))
					if !res.Matched {
						continue
					}
					part = append(part, Ranked{Candidate: c, Score: res.Score, Positions: res.Positions})
				}
				partials[idx] = part
			}
		}()
	}

	for idx := 0; idx < chunks; idx++ {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := 0
	for _, part := range partials {
		total += len(part)
	}
	out := make([]Ranked, 0, total)
	for _, part := range partials {
		out = append(out, part...)
	}
	// Chunks concatenate in input order, so the stable sort reproduces
	// Rank's ordering exactly.
	sortRanked(out)
	return out, nil
}
