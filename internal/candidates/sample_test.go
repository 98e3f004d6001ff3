package candidates

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSample_SubsetWithoutReplacement verifies the sample is a subset of the
// input with no duplicates and the requested size.
func TestSample_SubsetWithoutReplacement(t *testing.T) {
	words := []string{"abc", "bcd", "cde", "def", "efg", "fgh"}
	rng := rand.New(rand.NewSource(42))

	out := Sample(words, 3, rng)
	require.Len(t, out, 3)

	seen := map[string]bool{}
	valid := map[string]bool{}
	for _, w := range words {
		valid[w] = true
	}
	for _, w := range out {
		assert.True(t, valid[w], "sampled word must come from the input")
		assert.False(t, seen[w], "sampled words must be distinct")
		seen[w] = true
	}
}

// TestSample_PreservesRelativeOrder verifies sampled words appear in the
// same relative order as the input slice.
func TestSample_PreservesRelativeOrder(t *testing.T) {
	words := []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7", "h8"}
	rng := rand.New(rand.NewSource(7))

	out := Sample(words, 4, rng)
	pos := map[string]int{}
	for i, w := range words {
		pos[w] = i
	}
	for i := 1; i < len(out); i++ {
		assert.Less(t, pos[out[i-1]], pos[out[i]])
	}
}

// TestSample_WholeSliceWhenSmall verifies n >= len(words) returns a copy of
// everything.
func TestSample_WholeSliceWhenSmall(t *testing.T) {
	words := []string{"abc", "bcd"}
	rng := rand.New(rand.NewSource(1))

	out := Sample(words, 10, rng)
	require.Equal(t, words, out)

	out[0] = "zzz"
	assert.Equal(t, "abc", words[0], "sample must not alias the input")
}

// TestSample_Deterministic verifies the same seed produces the same sample.
func TestSample_Deterministic(t *testing.T) {
	words := []string{"abc", "bcd", "cde", "def", "efg"}

	a := Sample(words, 2, rand.New(rand.NewSource(3)))
	b := Sample(words, 2, rand.New(rand.NewSource(3)))
	assert.Equal(t, a, b)
}
