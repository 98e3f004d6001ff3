// internal/candidates/sample.go
//
// Random sampling used by display layers to show a manageable subset of a
// large candidate set. The rand source is injected so callers (and tests)
// control determinism.

package candidates

import (
	"math/rand"
	"sort"
)

// Sample returns up to n words drawn at random without replacement,
// preserving their relative order from words. When n is not smaller than
// len(words), a copy of the whole slice is returned.
func Sample(words []string, n int, rng *rand.Rand) []string {
	if n < 0 {
		n = 0
	}
	if n >= len(words) {
		out := make([]string, len(words))
		copy(out, words)
		return out
	}
	picked := rng.Perm(len(words))[:n]
	sort.Ints(picked)
	out := make([]string, 0, n)
	for _, i := range picked {
		out = append(out, words[i])
	}
	return out
}
