// internal/candidates/store.go
//
// Candidate store capability for the solver.
// Defines:
//   - Store: the constraint-application interface every backing
//     representation implements.
//   - Entry: a dictionary word paired with its usage count.
//   - ErrIndexOutOfRange: failure mode of the positional constraints.
//
// Every mutating operation is a pure filter: it only ever removes words, so
// the candidate set shrinks monotonically and re-applying a constraint to an
// already-filtered set is a no-op.

package candidates

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by positional constraints when the position
// is not a valid index into a word of the store's word size.
var ErrIndexOutOfRange = errors.New("index out of range")

// Entry pairs a dictionary word with a non-negative usage count.
type Entry struct {
	Word  string
	Count uint64
}

// Store holds the surviving candidate words for a solve in progress.
// Implementations may keep plain words (List) or ranked (word, count)
// entries (Ranked); callers depend only on this interface.
type Store interface {
	// Exists retains only words containing c anywhere.
	Exists(c byte)

	// ExistsAt retains only words whose character at pos equals c.
	// Fails with ErrIndexOutOfRange if pos is not below WordSize.
	ExistsAt(c byte, pos int) error

	// DoesNotExist retains only words that do not contain c anywhere.
	DoesNotExist(c byte)

	// DoesNotExistAt retains only words whose character at pos differs
	// from c. Fails with ErrIndexOutOfRange if pos is not below WordSize.
	DoesNotExistAt(c byte, pos int) error

	// RemoveIfCountAtLeast removes words containing n or more occurrences
	// of c.
	RemoveIfCountAtLeast(c byte, n int)

	// Size reports the number of surviving words.
	Size() int

	// WordSize reports the fixed word length of the store.
	WordSize() int

	// Take returns up to n surviving words; fewer if the store holds
	// fewer. Ranked stores return the n highest-count survivors in
	// descending count order, plain stores return insertion order.
	Take(n int) []string

	// All returns every surviving word, ordered as Take.
	All() []string
}

// checkIndex validates a positional constraint index against the word size.
func checkIndex(pos, wordSize int) error {
	if pos < 0 || pos >= wordSize {
		return fmt.Errorf("%w: position %d must be less than word size %d", ErrIndexOutOfRange, pos, wordSize)
	}
	return nil
}
