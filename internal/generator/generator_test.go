package generator

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/fourzi/internal/fourzi"
)

var testPool = fourzi.Pool{
	{Phrase: "一世龍門", Score: 195},
	{Phrase: "一丘之貉", Score: 1443},
	{Phrase: "一乾二淨", Score: 959},
	{Phrase: "一以當十", Score: 167},
	{Phrase: "一刀兩斷", Score: 234},
	{Phrase: "一勞永逸", Score: 1070},
}

var wordsList = []string{
	"一", "以", "當", "十",
	"一", "世", "龍", "門",
	"一", "乾", "二", "淨",
	"一", "丘", "之", "貉",
}

// recordingSource replays indices and counts how often it was asked.
type recordingSource struct {
	indices []int
	calls   int
}

func (r *recordingSource) next(int) int {
	r.calls++
	if r.calls > len(r.indices) {
		return -1
	}
	return r.indices[r.calls-1]
}

// newTestGenerator reverses instead of shuffling so results are deterministic.
func newTestGenerator(pool fourzi.Pool, opts ...Option) *RandomGenerator {
	return NewRandomGenerator(pool, append([]Option{WithShuffleFunc(Reverse)}, opts...)...)
}

func reversed(words []string) []string {
	out := slices.Clone(words)
	slices.Reverse(out)
	return out
}

func TestPickRandomPhrases(t *testing.T) {
	t.Run("ZeroPhrasesReturnsEmptyWithoutDrawing", func(t *testing.T) {
		src := &recordingSource{}
		g := newTestGenerator(testPool, WithIndexSource(src.next))

		assert.Empty(t, g.PickRandomPhrases(0))
		assert.Equal(t, 0, src.calls, "no random draws expected")
	})

	t.Run("EmptyPoolReturnsEmpty", func(t *testing.T) {
		g := newTestGenerator(nil)

		assert.Empty(t, g.PickRandomPhrases(3))
	})

	t.Run("PicksByIndexWithoutReplacement", func(t *testing.T) {
		g := newTestGenerator(testPool, WithIndexSource(Sequence(3, 0, 1, 0)))

		expected := []string{"一以當十", "一世龍門", "一乾二淨", "一丘之貉"}
		assert.Equal(t, expected, g.PickRandomPhrases(4))
	})

	t.Run("OutOfRangeIndexStopsEarly", func(t *testing.T) {
		// The third draw is one past the end of the 4 remaining phrases.
		g := newTestGenerator(testPool, WithIndexSource(Sequence(0, 4, 4)))

		assert.Equal(t, []string{"一世龍門", "一勞永逸"}, g.PickRandomPhrases(3))
	})

	t.Run("InclusiveUpperBoundStopsEarly", func(t *testing.T) {
		g := newTestGenerator(testPool, WithIndexSource(Sequence(len(testPool))))

		assert.Empty(t, g.PickRandomPhrases(4))
	})

	t.Run("InclusiveIndexRange", func(t *testing.T) {
		for n := 0; n < 6; n++ {
			for i := 0; i < 200; i++ {
				idx := InclusiveIndex(n)
				assert.GreaterOrEqual(t, idx, 0)
				assert.LessOrEqual(t, idx, n)
			}
		}
	})

	t.Run("NegativeIndexStopsEarly", func(t *testing.T) {
		g := newTestGenerator(testPool, WithIndexSource(Sequence(1, -1)))

		assert.Equal(t, []string{"一丘之貉"}, g.PickRandomPhrases(2))
	})

	t.Run("MoreThanPoolIsBounded", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			g := NewRandomGenerator(testPool)
			picked := g.PickRandomPhrases(len(testPool) + 5)

			assert.LessOrEqual(t, len(picked), len(testPool))
			assert.Len(t, unique(picked), len(picked), "phrases must not repeat")
			for _, p := range picked {
				assert.Contains(t, testPool.Phrases(), p)
			}
		}
	})

	t.Run("ExclusiveSourceFillsRequest", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			g := NewRandomGenerator(testPool, WithIndexSource(ExclusiveIndex))
			assert.Len(t, g.PickRandomPhrases(4), 4)
			assert.Len(t, g.PickRandomPhrases(10), len(testPool))
		}
	})

	t.Run("DoesNotMutatePool", func(t *testing.T) {
		g := newTestGenerator(testPool, WithIndexSource(Sequence(0, 0, 0)))
		g.PickRandomPhrases(3)

		g.nextIndex = Sequence(0)
		assert.Equal(t, []string{"一世龍門"}, g.PickRandomPhrases(1))
	})
}

func TestExtractWords(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, ExtractWords(nil))
		assert.Empty(t, ExtractWords([]string{}))
	})

	t.Run("PreservesOrder", func(t *testing.T) {
		assert.Equal(t, []string{"A", "B", "C", "D"}, ExtractWords([]string{"AB", "CD"}))
	})

	t.Run("SplitsByCharacter", func(t *testing.T) {
		words := ExtractWords([]string{"一以當十", "一世龍門", "一乾二淨", "一丘之貉"})
		assert.Equal(t, wordsList, words)
	})
}

func TestShuffleWords(t *testing.T) {
	g := newTestGenerator(testPool)

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, g.ShuffleWords([]string{}))
	})

	t.Run("UsesProvidedShuffle", func(t *testing.T) {
		words := []string{"一", "世", "龍", "門", "一", "丘", "之", "貉"}
		original := slices.Clone(words)

		shuffled := g.ShuffleWords(words)

		assert.Equal(t, reversed(original), shuffled)
		assert.Equal(t, original, words, "input must not be mutated")
	})

	t.Run("DefaultShuffleIsPermutation", func(t *testing.T) {
		shuffled := NewRandomGenerator(testPool).ShuffleWords(wordsList)

		assert.ElementsMatch(t, wordsList, shuffled)
	})
}

func TestWordsToMatrix(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		side     int
		expected fourzi.Grid
	}{
		{
			name:  "16_words_4x4",
			words: wordsList,
			side:  4,
			expected: fourzi.Grid{
				{"一", "以", "當", "十"},
				{"一", "世", "龍", "門"},
				{"一", "乾", "二", "淨"},
				{"一", "丘", "之", "貉"},
			},
		},
		{
			name:  "16_words_8x2",
			words: wordsList,
			side:  2,
			expected: fourzi.Grid{
				{"一", "以"},
				{"當", "十"},
				{"一", "世"},
				{"龍", "門"},
				{"一", "乾"},
				{"二", "淨"},
				{"一", "丘"},
				{"之", "貉"},
			},
		},
		{
			name:  "8_words_side_3_truncates",
			words: wordsList[:8],
			side:  3,
			expected: fourzi.Grid{
				{"一", "以", "當"},
				{"十", "一", "世"},
			},
		},
		{
			name:     "shorter_than_side",
			words:    wordsList[:3],
			side:     4,
			expected: fourzi.Grid{},
		},
		{
			name:     "empty",
			words:    nil,
			side:     6,
			expected: fourzi.Grid{},
		},
		{
			name:     "zero_side",
			words:    wordsList,
			side:     0,
			expected: fourzi.Grid{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := WordsToMatrix(tt.words, tt.side)
			assert.Equal(t, len(tt.expected), grid.Rows())
			for i := range tt.expected {
				assert.Equal(t, tt.expected[i], grid[i], "row %d", i)
			}
		})
	}
}

func TestGenerateWords(t *testing.T) {
	t.Run("EndToEndWithFixedStrategies", func(t *testing.T) {
		pool := fourzi.PoolFromScores(fourzi.PhraseToScore{
			"一世龍門": 195,
			"一丘之貉": 1443,
			"一乾二淨": 959,
			"一以當十": 167,
		})
		g := newTestGenerator(pool,
			WithNumPhrases(4),
			WithSideSize(4),
			WithIndexSource(Sequence(3, 0, 1, 0)),
		)

		grid := g.GenerateWords()

		rev := reversed(wordsList)
		require.Equal(t, 4, grid.Rows())
		for i := 0; i < 4; i++ {
			assert.Equal(t, rev[i*4:(i+1)*4], grid[i], "row %d", i)
		}
	})

	t.Run("DefaultsFillSixBySix", func(t *testing.T) {
		pool := make(fourzi.Pool, 0, 20)
		for _, p := range []string{
			"一世龍門", "一丘之貉", "一乾二淨", "一以當十", "一刀兩斷",
			"一勞永逸", "一字千金", "一帆風順", "一心一意", "一石二鳥",
		} {
			pool = append(pool, fourzi.Entry{Phrase: p, Score: 1})
		}
		g := NewRandomGenerator(pool, WithIndexSource(ExclusiveIndex))

		grid := g.GenerateWords()

		require.Equal(t, DefaultSideSize, grid.Rows())
		for _, row := range grid {
			assert.Len(t, row, DefaultSideSize)
		}
	})

	t.Run("GridOnlyHoldsSelectedCharacters", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			round := NewRandomGenerator(testPool, WithNumPhrases(4), WithSideSize(4)).GenerateRound()

			chars := ExtractWords(round.Answers())
			for _, c := range round.Grid.Flatten() {
				assert.Contains(t, chars, c)
			}
		}
	})
}

func TestGenerateRound(t *testing.T) {
	g := newTestGenerator(testPool,
		WithNumPhrases(2),
		WithSideSize(4),
		WithIndexSource(Sequence(1, 4)),
	)

	round := g.GenerateRound()

	assert.Equal(t, []fourzi.Entry{
		{Phrase: "一丘之貉", Score: 1443},
		{Phrase: "一勞永逸", Score: 1070},
	}, round.Selected)
	assert.Equal(t, fourzi.Grid{
		{"逸", "永", "勞", "一"},
		{"貉", "之", "丘", "一"},
	}, round.Grid)
}

func TestSeededIsReproducible(t *testing.T) {
	build := func() fourzi.Round {
		next, shuffle := Seeded(42, true)
		return NewRandomGenerator(testPool,
			WithNumPhrases(4),
			WithSideSize(4),
			WithIndexSource(next),
			WithShuffleFunc(shuffle),
		).GenerateRound()
	}

	first, second := build(), build()
	assert.Equal(t, first, second)
	assert.Len(t, first.Selected, 4)
}

func TestReverse(t *testing.T) {
	words := []string{"a", "b", "c"}
	Reverse(words)
	assert.Equal(t, []string{"c", "b", "a"}, words)

	var empty []string
	Reverse(empty)
	assert.Empty(t, empty)
}

func unique(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}
