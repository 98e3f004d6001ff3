// internal/candidates/ranked.go
//
// Frequency-ranked candidate store. Words are held alongside a usage count
// and kept in descending count order, so Take(n) always yields the n most
// common survivors without any re-ranking pass.
//
// The descending order is established once at construction; every mutation
// afterwards is a stable in-place filter, which preserves the order for free.

package candidates

import (
	"sort"
	"strings"
)

// Ranked is a candidate store ordered by descending usage count.
type Ranked struct {
	wordSize int
	entries  []Entry
}

// NewRanked builds a ranked store from (word, count) entries, silently
// dropping entries whose word length differs from wordSize. The store keeps
// its own working copy, stably sorted by descending count so equal counts
// retain their input order.
func NewRanked(entries []Entry, wordSize int) *Ranked {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if len(e.Word) == wordSize {
			kept = append(kept, e)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Count > kept[j].Count })
	return &Ranked{wordSize: wordSize, entries: kept}
}

// filter drops every entry for which drop returns true, in place and in a
// stable order, keeping the descending-count invariant intact.
func (r *Ranked) filter(drop func(e Entry) bool) {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if !drop(e) {
			kept = append(kept, e)
		}
	}
	r.entries = kept
}

// Exists retains only words containing c anywhere.
func (r *Ranked) Exists(c byte) {
	r.filter(func(e Entry) bool { return strings.IndexByte(e.Word, c) < 0 })
}

// ExistsAt retains only words whose character at pos equals c.
func (r *Ranked) ExistsAt(c byte, pos int) error {
	if err := checkIndex(pos, r.wordSize); err != nil {
		return err
	}
	r.filter(func(e Entry) bool { return e.Word[pos] != c })
	return nil
}

// DoesNotExist retains only words that do not contain c anywhere.
func (r *Ranked) DoesNotExist(c byte) {
	r.filter(func(e Entry) bool { return strings.IndexByte(e.Word, c) >= 0 })
}

// DoesNotExistAt retains only words whose character at pos differs from c.
func (r *Ranked) DoesNotExistAt(c byte, pos int) error {
	if err := checkIndex(pos, r.wordSize); err != nil {
		return err
	}
	r.filter(func(e Entry) bool { return e.Word[pos] == c })
	return nil
}

// RemoveIfCountAtLeast removes words with n or more occurrences of c.
func (r *Ranked) RemoveIfCountAtLeast(c byte, n int) {
	r.filter(func(e Entry) bool { return strings.Count(e.Word, string(c)) >= n })
}

// Size reports the number of surviving words.
func (r *Ranked) Size() int { return len(r.entries) }

// WordSize reports the fixed word length.
func (r *Ranked) WordSize() int { return r.wordSize }

// Take returns up to n surviving words, most common first.
func (r *Ranked) Take(n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(r.entries) {
		n = len(r.entries)
	}
	out := make([]string, 0, n)
	for _, e := range r.entries[:n] {
		out = append(out, e.Word)
	}
	return out
}

// All returns every surviving word, most common first.
func (r *Ranked) All() []string { return r.Take(len(r.entries)) }

// Entries exposes the surviving (word, count) pairs in ranked order.
func (r *Ranked) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
