package main

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/candidates"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

func newTestLoop(input string, words []string, wordSize int) (*loop, *bytes.Buffer) {
	out := &bytes.Buffer{}
	l := &loop{
		in:    strings.NewReader(input),
		out:   out,
		sol:   solver.New(candidates.NewList(words, wordSize)),
		limit: 10,
		rng:   rand.New(rand.NewSource(1)),
	}
	return l, out
}

// TestLoop_FindsWord walks a session to an all-green finish.
func TestLoop_FindsWord(t *testing.T) {
	l, out := newTestLoop(
		"abf\nggb\nabc\nggb\nabr\nggg\n",
		[]string{"abc", "bcd", "pqr", "abf", "abr"}, 3)

	require.NoError(t, l.run())
	assert.Contains(t, out.String(), "Congratulations! you eventually found the word!")
	assert.Contains(t, out.String(), "abr")
}

// TestLoop_Exhaustion reports when no dictionary word matches the feedback.
func TestLoop_Exhaustion(t *testing.T) {
	l, out := newTestLoop(
		"abc\nbbb\npqr\nbbb\n",
		[]string{"abc", "abf", "pqr"}, 3)

	require.NoError(t, l.run())
	assert.Contains(t, out.String(), "Unable to find any suitable words from dictionary")
}

// TestLoop_StatusMixup lets the user recover after typing the status string
// at the word prompt.
func TestLoop_StatusMixup(t *testing.T) {
	l, out := newTestLoop(
		"ggb\ny\nabf\nggb\nabc\nggg\n",
		[]string{"abc", "bcd", "abf"}, 3)

	require.NoError(t, l.run())
	assert.Contains(t, out.String(), "Did you just enter status instead of words (y/n)?")
	assert.Contains(t, out.String(), "Congratulations")
}

// TestLoop_RepromptsOnBadLength keeps asking until the input has the right
// number of characters.
func TestLoop_RepromptsOnBadLength(t *testing.T) {
	l, out := newTestLoop(
		"ab\nabcd\nabc\nggg\n",
		[]string{"abc", "bcd"}, 3)

	require.NoError(t, l.run())
	assert.Contains(t, out.String(), "Expected 3 characters, try again:")
	assert.Contains(t, out.String(), "Congratulations")
}

// TestLoop_RankedShowsTopCandidates verifies ranked sessions display the
// most common survivors first.
func TestLoop_RankedShowsTopCandidates(t *testing.T) {
	out := &bytes.Buffer{}
	store := candidates.NewRanked([]candidates.Entry{
		{Word: "abr", Count: 5},
		{Word: "abc", Count: 50},
		{Word: "abf", Count: 20},
	}, 3)
	l := &loop{
		in:     strings.NewReader("abc\nggg\n"),
		out:    out,
		sol:    solver.New(store),
		ranked: true,
		limit:  2,
		rng:    rand.New(rand.NewSource(1)),
	}

	require.NoError(t, l.run())
	body := out.String()
	assert.Contains(t, body, "There are 3 possible words")
	assert.Less(t, strings.Index(body, "abc"), strings.Index(body, "abf"))
	assert.NotContains(t, body, "abr", "display limit caps the listing")
}
