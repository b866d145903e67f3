package generator

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// IndexSource returns an index for a list of n remaining phrases.
// Values outside [0, n) end the selection early.
type IndexSource func(n int) int

// ShuffleFunc permutes words in place.
type ShuffleFunc func(words []string)

// InclusiveIndex draws uniformly from [0, n]. The upper bound is inclusive,
// so roughly one draw in n+1 lands past the end and stops selection.
func InclusiveIndex(n int) int {
	return frand.Intn(n + 1)
}

// ExclusiveIndex draws uniformly from [0, n). An empty list yields 0, which
// is out of range and stops selection.
func ExclusiveIndex(n int) int {
	if n <= 0 {
		return 0
	}
	return frand.Intn(n)
}

// Shuffle is a uniform random in-place shuffle.
func Shuffle(words []string) {
	frand.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
}

// Reverse is a deterministic stand-in for Shuffle.
func Reverse(words []string) {
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
}

// Seeded returns an index source and a shuffle that share one generator
// seeded from seed, so a round can be replayed.
func Seeded(seed uint64, exclusive bool) (IndexSource, ShuffleFunc) {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	rng := frand.NewCustom(key[:], 1024, 12)

	next := func(n int) int {
		if exclusive {
			if n <= 0 {
				return 0
			}
			return rng.Intn(n)
		}
		return rng.Intn(n + 1)
	}
	shuffle := func(words []string) {
		rng.Shuffle(len(words), func(i, j int) {
			words[i], words[j] = words[j], words[i]
		})
	}
	return next, shuffle
}

// Sequence returns an index source that replays indices in order and then
// returns -1 forever.
func Sequence(indices ...int) IndexSource {
	i := 0
	return func(int) int {
		if i >= len(indices) {
			return -1
		}
		idx := indices[i]
		i++
		return idx
	}
}
