package fuzzy

import "unicode"

// Scoring weights. The relative sizes drive the ranking feel: aligned
// characters dominate, word-boundary and run bonuses double them, and
// gaps bleed score slowly so long candidates with early matches can
// still fall below the match threshold.
const (
	matchBonus       = 16
	boundaryBonus    = 16
	consecutiveBonus = 16

	gapStartPenalty  = -3
	gapExtendPenalty = -1

	// nonContiguousPenalty is reserved tuning space. No transition
	// applies it; wiring it in would change every ranking.
	nonContiguousPenalty = -5
)

// direction is the per-cell backpointer recorded while scoring. The
// backtrack pass walks these to recover matched positions without
// storing a position list per cell.
type direction uint8

const (
	// dirLeft is a gap carried from the cell to the left. Every
	// mismatch cell records dirLeft: positions propagate from the left
	// there even when the score came from the row above.
	dirLeft direction = iota
	// dirMatch consumed pattern[i] at candidate[j]; backtracking emits
	// the candidate index and moves diagonally.
	dirMatch
	// dirAbove is a match-capable cell that scored better as a gap
	// from the row above.
	dirAbove
)

// Result describes the outcome of matching one pattern against one
// candidate line.
type Result struct {
	// Matched reports whether the pattern fuzzily occurs in the line.
	Matched bool

	// Score is the relevance score; higher is better. Positive exactly
	// when Matched is true, except for the empty pattern, which
	// matches everything with score zero.
	Score int

	// Positions holds the 0-based rune indices in the original
	// (un-folded) line that the scorer attributed to the pattern, in
	// ascending order. Its length need not equal the pattern length.
	Positions []int
}

// Options configures matching behavior.
type Options struct {
	// AdjacentRunBonus switches the consecutive-match bonus to require
	// that the previously matched pattern character was placed at the
	// immediately preceding candidate position. The default rule only
	// compares the previous characters of both sequences, which can
	// award the bonus across a gap; both rules are kept so rankings
	// can be compared, and the default is the compatible one.
	AdjacentRunBonus bool
}

// DefaultOptions returns the options used by the package-level Match.
func DefaultOptions() Options {
	return Options{}
}

// Matcher scores one pattern against one candidate line. It is
// stateless and safe for concurrent use.
type Matcher struct {
	opts Options
}

// NewMatcher creates a Matcher with the given options.
func NewMatcher(opts Options) *Matcher {
	return &Matcher{opts: opts}
}

var defaultMatcher = NewMatcher(DefaultOptions())

// Match scores pattern against line with default options.
func Match(pattern, line string) Result {
	return defaultMatcher.Match(pattern, line)
}

// Match scores pattern against line. Comparison is case-insensitive;
// reported positions index the original line's runes.
func (m *Matcher) Match(pattern, line string) Result {
	return m.matchFolded(foldRunes([]rune(pattern)), []rune(line))
}

// matchFolded is the scoring core. pat must already be case-folded;
// line is folded here. The Ranker uses this entry to fold the pattern
// once per pass instead of once per candidate.
func (m *Matcher) matchFolded(pat, line []rune) Result {
	if len(pat) == 0 {
		return Result{Matched: true, Positions: []int{}}
	}
	// Longer patterns can never match. The check is load-bearing: the
	// zero-initialized column 0 below would otherwise let a trailing
	// pattern character "match" with earlier ones unplaced and still
	// produce a positive score.
	if len(pat) > len(line) {
		return Result{}
	}

	cand := foldRunes(line)
	n := len(cand)

	// Two score rows, one byte of backpointer per cell.
	prev := make([]int, n+1)
	cur := make([]int, n+1)
	dirs := make([]direction, len(pat)*n)

	for i := 1; i <= len(pat); i++ {
		pc := pat[i-1]
		row := dirs[(i-1)*n:]
		cur[0] = 0
		for j := 1; j <= n; j++ {
			if pc != cand[j-1] {
				left := cur[j-1] + gapExtendPenalty
				above := prev[j] + gapStartPenalty
				if left >= above {
					cur[j] = left
				} else {
					cur[j] = above
				}
				row[j-1] = dirLeft
				continue
			}

			bonus := matchBonus
			if j == 1 || cand[j-2] == ' ' {
				bonus += boundaryBonus
			}
			if i > 1 && j > 1 {
				if m.opts.AdjacentRunBonus {
					if dirs[(i-2)*n+j-2] == dirMatch {
						bonus += consecutiveBonus
					}
				} else if pat[i-2] == cand[j-2] {
					bonus += consecutiveBonus
				}
			}

			newScore := prev[j-1] + bonus
			if newScore > prev[j]+gapStartPenalty {
				cur[j] = newScore
				row[j-1] = dirMatch
			} else {
				cur[j] = prev[j] + gapStartPenalty
				row[j-1] = dirAbove
			}
		}
		prev, cur = cur, prev
	}

	score := prev[n]
	if score <= 0 {
		return Result{}
	}
	return Result{
		Matched:   true,
		Score:     score,
		Positions: backtrack(dirs, len(pat), n),
	}
}

// backtrack recovers the matched candidate indices from the backpointer
// table, walking from the final cell to a zero row or column.
func backtrack(dirs []direction, m, n int) []int {
	positions := make([]int, 0, m)
	i, j := m, n
	for i > 0 && j > 0 {
		switch dirs[(i-1)*n+j-1] {
		case dirMatch:
			positions = append(positions, j-1)
			i--
			j--
		case dirAbove:
			i--
		default:
			j--
		}
	}
	for lo, hi := 0, len(positions)-1; lo < hi; lo, hi = lo+1, hi-1 {
		positions[lo], positions[hi] = positions[hi], positions[lo]
	}
	return positions
}

// foldRunes lowercases rune by rune. Per-rune folding keeps indices
// aligned with the input, which the position contract depends on.
func foldRunes(rs []rune) []rune {
	folded := make([]rune, len(rs))
	for i, r := range rs {
		folded[i] = unicode.ToLower(r)
	}
	return folded
}
