// Package fourzi provides core types for the four-character idiom puzzle.
package fourzi

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// PhraseLength is the number of characters in every idiom.
const PhraseLength = 4

// Entry is a dictionary phrase together with its score.
type Entry struct {
	Phrase string `yaml:"phrase" json:"phrase"` // The idiom itself (e.g., "一丘之貉")
	Score  int    `yaml:"score" json:"score"`   // Dictionary score, unused by the sampler
}

// Valid reports whether the entry holds exactly PhraseLength characters.
func (e Entry) Valid() bool {
	return utf8.RuneCountInString(e.Phrase) == PhraseLength
}

// PhraseToScore maps phrase text to its score.
type PhraseToScore map[string]int

// Pool is the ordered set of phrases available for a round.
// Order is significant: the sampler indexes into it.
type Pool []Entry

// PoolFromScores builds a pool from a score map. Keys are sorted so the
// resulting order does not depend on map iteration.
func PoolFromScores(scores PhraseToScore) Pool {
	keys := slices.Sorted(maps.Keys(scores))

	pool := make(Pool, len(keys))
	for i, k := range keys {
		pool[i] = Entry{Phrase: k, Score: scores[k]}
	}
	return pool
}

// Phrases returns the phrase texts in pool order.
func (p Pool) Phrases() []string {
	return lo.Map(p, func(e Entry, _ int) string { return e.Phrase })
}

// Grid is a row-major matrix of single characters.
type Grid [][]string

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the row width, or 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Flatten returns the cells in row-major order.
func (g Grid) Flatten() []string {
	return lo.Flatten(g)
}

// String renders each row on its own line with cells separated by a space.
func (g Grid) String() string {
	lines := lo.Map(g, func(row []string, _ int) string {
		return strings.Join(row, " ")
	})
	return strings.Join(lines, "\n")
}

// Round is one generated puzzle: the hidden phrases and the grid built from them.
type Round struct {
	Selected []Entry
	Grid     Grid
}

// Answers returns the selected phrase texts in selection order.
func (r Round) Answers() []string {
	return lo.Map(r.Selected, func(e Entry, _ int) string { return e.Phrase })
}

// TotalScore sums the scores of the selected phrases.
func (r Round) TotalScore() int {
	return lo.SumBy(r.Selected, func(e Entry) int { return e.Score })
}
