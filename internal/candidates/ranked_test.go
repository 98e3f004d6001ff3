package candidates

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedFixture() *Ranked {
	return NewRanked([]Entry{
		{Word: "bcd", Count: 70},
		{Word: "abc", Count: 100},
		{Word: "toolong", Count: 500},
		{Word: "pqr", Count: 10},
		{Word: "abf", Count: 40},
		{Word: "abr", Count: 40},
	}, 3)
}

// TestNewRanked_SortsDescending verifies construction sorts by descending
// count, keeps equal counts in input order, and drops wrong-length words.
func TestNewRanked_SortsDescending(t *testing.T) {
	r := rankedFixture()

	assert.Equal(t, []string{"abc", "bcd", "abf", "abr", "pqr"}, r.All())
	assert.Equal(t, 3, r.WordSize())
}

// TestRanked_TakeReturnsTopN verifies Take is a prefix view of the
// maintained order, never a re-ranking.
func TestRanked_TakeReturnsTopN(t *testing.T) {
	r := rankedFixture()

	assert.Equal(t, []string{"abc", "bcd"}, r.Take(2))
	assert.Equal(t, r.All(), r.Take(100))
	assert.Empty(t, r.Take(0))
}

// TestRanked_OrderPreservedUnderFilters verifies every mutation keeps the
// descending-count invariant without re-sorting.
func TestRanked_OrderPreservedUnderFilters(t *testing.T) {
	r := rankedFixture()

	r.Exists('a')
	require.NoError(t, r.DoesNotExistAt('c', 2))
	r.RemoveIfCountAtLeast('z', 1)

	entries := r.Entries()
	assert.True(t, sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	}), "entries must stay sorted by descending count")
	assert.Equal(t, []string{"abf", "abr"}, r.All())
	assert.Equal(t, r.All()[:1], r.Take(1), "take must be a prefix of all")
}

// TestRanked_ConstraintSemantics spot-checks each constraint primitive.
func TestRanked_ConstraintSemantics(t *testing.T) {
	r := rankedFixture()

	r.DoesNotExist('f')
	assert.Equal(t, []string{"abc", "bcd", "abr", "pqr"}, r.All())

	require.NoError(t, r.ExistsAt('b', 1))
	assert.Equal(t, []string{"abc", "abr"}, r.All())

	require.NoError(t, r.DoesNotExistAt('r', 2))
	assert.Equal(t, []string{"abc"}, r.All())
}

// TestRanked_RemoveIfCountAtLeast enforces the occurrence ceiling on the
// ranked representation.
func TestRanked_RemoveIfCountAtLeast(t *testing.T) {
	r := NewRanked([]Entry{
		{Word: "apple", Count: 90},
		{Word: "paper", Count: 80},
		{Word: "crane", Count: 70},
	}, 5)

	r.RemoveIfCountAtLeast('p', 2)
	assert.Equal(t, []string{"paper", "crane"}, r.All())
}

// TestRanked_PositionalOutOfRange verifies the index guard.
func TestRanked_PositionalOutOfRange(t *testing.T) {
	r := rankedFixture()

	require.ErrorIs(t, r.ExistsAt('a', 3), ErrIndexOutOfRange)
	require.ErrorIs(t, r.DoesNotExistAt('a', 3), ErrIndexOutOfRange)
	assert.Equal(t, 5, r.Size(), "failed constraint must not mutate the store")
}

// TestRanked_EntriesReturnsCopy verifies callers cannot mutate internals
// through the Entries accessor.
func TestRanked_EntriesReturnsCopy(t *testing.T) {
	r := rankedFixture()

	entries := r.Entries()
	entries[0].Word = "zzz"
	assert.Equal(t, "abc", r.All()[0])
}
