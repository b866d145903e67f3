// Package generator samples idioms from a pool and lays their characters out
// in a square grid.
package generator

import (
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/f3rmion/fourzi/internal/fourzi"
)

const (
	// DefaultNumPhrases is how many phrases a round hides in the grid.
	DefaultNumPhrases = 9
	// DefaultSideSize is the grid width. 9 phrases x 4 characters fill 6x6.
	DefaultSideSize = 6
)

// WordsGenerator produces the character grid for one round.
type WordsGenerator interface {
	GenerateWords() fourzi.Grid
}

var _ WordsGenerator = (*RandomGenerator)(nil)

// RandomGenerator picks phrases without replacement from a pool, shuffles
// their characters and reshapes them into a grid.
type RandomGenerator struct {
	pool       fourzi.Pool
	numPhrases int
	sideSize   int
	nextIndex  IndexSource
	shuffle    ShuffleFunc
}

// Option configures a RandomGenerator.
type Option func(*RandomGenerator)

// WithNumPhrases sets how many phrases are selected per round.
func WithNumPhrases(n int) Option {
	return func(g *RandomGenerator) { g.numPhrases = n }
}

// WithSideSize sets the grid width.
func WithSideSize(n int) Option {
	return func(g *RandomGenerator) { g.sideSize = n }
}

// WithIndexSource replaces the random index draw used during selection.
func WithIndexSource(src IndexSource) Option {
	return func(g *RandomGenerator) { g.nextIndex = src }
}

// WithShuffleFunc replaces the character shuffle.
func WithShuffleFunc(fn ShuffleFunc) Option {
	return func(g *RandomGenerator) { g.shuffle = fn }
}

// NewRandomGenerator creates a generator over a copy of pool.
func NewRandomGenerator(pool fourzi.Pool, opts ...Option) *RandomGenerator {
	g := &RandomGenerator{
		pool:       slices.Clone(pool),
		numPhrases: DefaultNumPhrases,
		sideSize:   DefaultSideSize,
		nextIndex:  InclusiveIndex,
		shuffle:    Shuffle,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateWords runs one round and returns only the grid.
func (g *RandomGenerator) GenerateWords() fourzi.Grid {
	return g.GenerateRound().Grid
}

// GenerateRound runs one round and returns the grid together with the
// phrases hidden in it.
func (g *RandomGenerator) GenerateRound() fourzi.Round {
	selected := g.pickRandomEntries(g.numPhrases)
	phrases := lo.Map(selected, func(e fourzi.Entry, _ int) string { return e.Phrase })

	words := ExtractWords(phrases)
	shuffled := g.ShuffleWords(words)

	return fourzi.Round{
		Selected: selected,
		Grid:     WordsToMatrix(shuffled, g.sideSize),
	}
}

// PickRandomPhrases selects up to n phrases without replacement.
//
// Selection stops early, without error, when the index source returns an
// index outside the remaining phrases. With the inclusive default source
// this happens occasionally even when the pool is large enough; it always
// happens once the pool is exhausted.
func (g *RandomGenerator) PickRandomPhrases(n int) []string {
	return lo.Map(g.pickRandomEntries(n), func(e fourzi.Entry, _ int) string { return e.Phrase })
}

func (g *RandomGenerator) pickRandomEntries(n int) []fourzi.Entry {
	if n <= 0 {
		return []fourzi.Entry{}
	}

	remaining := slices.Clone(g.pool)
	chosen := make([]fourzi.Entry, 0, min(n, len(remaining)))

	for left := n; left > 0; left-- {
		idx := g.nextIndex(len(remaining))
		if idx < 0 || idx >= len(remaining) {
			log.Info().
				Int("idx", idx).
				Int("remaining", len(remaining)).
				Int("chosen", len(chosen)).
				Msg("invalid index when picking phrases, stopping early")
			break
		}

		chosen = append(chosen, remaining[idx])
		remaining = slices.Delete(remaining, idx, idx+1)
	}

	return chosen
}

// ExtractWords flattens phrases into their characters, keeping selection
// order and then in-phrase order.
func ExtractWords(phrases []string) []string {
	return lo.FlatMap(phrases, func(p string, _ int) []string {
		return strings.Split(p, "")
	})
}

// ShuffleWords returns a shuffled copy of words. The input is left untouched.
func (g *RandomGenerator) ShuffleWords(words []string) []string {
	shuffled := make([]string, len(words))
	copy(shuffled, words)
	g.shuffle(shuffled)
	return shuffled
}

// WordsToMatrix reshapes words into rows of side characters. Characters that
// do not fill a whole row are dropped.
func WordsToMatrix(words []string, side int) fourzi.Grid {
	if side <= 0 {
		return fourzi.Grid{}
	}

	rows := len(words) / side
	grid := make(fourzi.Grid, 0, rows)
	for _, chunk := range lo.Chunk(words[:rows*side], side) {
		grid = append(grid, chunk)
	}
	return grid
}
