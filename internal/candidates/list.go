// internal/candidates/list.go
//
// Plain-list candidate store. Keeps surviving words in insertion order with
// no associated counts. Suitable when the dictionary carries no frequency
// information.

package candidates

import "strings"

// List is a plain candidate store over a word slice.
type List struct {
	wordSize int
	words    []string
}

// NewList builds a plain store from words, silently dropping entries whose
// length differs from wordSize. The store keeps its own working copy.
func NewList(words []string, wordSize int) *List {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) == wordSize {
			kept = append(kept, w)
		}
	}
	return &List{wordSize: wordSize, words: kept}
}

// filter drops every word for which drop returns true, in place and in a
// stable order.
func (l *List) filter(drop func(word string) bool) {
	kept := l.words[:0]
	for _, w := range l.words {
		if !drop(w) {
			kept = append(kept, w)
		}
	}
	l.words = kept
}

// Exists retains only words containing c anywhere.
func (l *List) Exists(c byte) {
	l.filter(func(w string) bool { return strings.IndexByte(w, c) < 0 })
}

// ExistsAt retains only words whose character at pos equals c.
func (l *List) ExistsAt(c byte, pos int) error {
	if err := checkIndex(pos, l.wordSize); err != nil {
		return err
	}
	l.filter(func(w string) bool { return w[pos] != c })
	return nil
}

// DoesNotExist retains only words that do not contain c anywhere.
func (l *List) DoesNotExist(c byte) {
	l.filter(func(w string) bool { return strings.IndexByte(w, c) >= 0 })
}

// DoesNotExistAt retains only words whose character at pos differs from c.
func (l *List) DoesNotExistAt(c byte, pos int) error {
	if err := checkIndex(pos, l.wordSize); err != nil {
		return err
	}
	l.filter(func(w string) bool { return w[pos] == c })
	return nil
}

// RemoveIfCountAtLeast removes words with n or more occurrences of c.
func (l *List) RemoveIfCountAtLeast(c byte, n int) {
	l.filter(func(w string) bool { return strings.Count(w, string(c)) >= n })
}

// Size reports the number of surviving words.
func (l *List) Size() int { return len(l.words) }

// WordSize reports the fixed word length.
func (l *List) WordSize() int { return l.wordSize }

// Take returns up to n surviving words in insertion order.
func (l *List) Take(n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(l.words) {
		n = len(l.words)
	}
	out := make([]string, n)
	copy(out, l.words[:n])
	return out
}

// All returns every surviving word in insertion order.
func (l *List) All() []string { return l.Take(len(l.words)) }
