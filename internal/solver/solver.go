// internal/solver/solver.go
//
// Constraint decoder for Wordle-style guess feedback.
// Responsibilities:
//   - Validate a (guess, feedback) pair in full before touching the store.
//   - Translate per-position feedback codes into candidate-store filters.
//   - Handle repeated letters: black marks on excess copies of a letter
//     become an occurrence-count ceiling instead of a blanket exclusion.
//
// Feedback encoding (one character per guess position):
//   'b' black  — letter absent at this position, subject to the
//                duplicate-letter adjustment below.
//   'y' yellow — letter present in the target, but elsewhere.
//   'g' green  — letter present at exactly this position.

package solver

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle-solver/internal/candidates"
)

// allowedFeedback is the set of valid feedback characters.
const allowedFeedback = "byg"

// ErrInvalidArgument reports a malformed guess or feedback string.
var ErrInvalidArgument = errors.New("invalid argument")

// Solver narrows one candidate store using successive guess/feedback pairs.
// It exclusively owns its store; the word size is fixed for its lifetime.
type Solver struct {
	wordSize int
	store    candidates.Store
}

// New constructs a Solver around store, adopting the store's word size.
func New(store candidates.Store) *Solver {
	return &Solver{wordSize: store.WordSize(), store: store}
}

// WordSize reports the fixed word length.
func (s *Solver) WordSize() int { return s.wordSize }

// Size reports the number of surviving candidates.
func (s *Solver) Size() int { return s.store.Size() }

// Candidates returns up to n surviving candidates, ordered by the store.
func (s *Solver) Candidates(n int) []string { return s.store.Take(n) }

// All returns every surviving candidate, ordered by the store.
func (s *Solver) All() []string { return s.store.All() }

// Update applies one guess and its feedback to the store and returns the
// number of surviving candidates.
//
// Validation happens in full before any mutation, so a failed call leaves
// the store unchanged. An empty result is a normal state, not an error.
func (s *Solver) Update(guess, feedback string) (int, error) {
	if len(guess) != s.wordSize || len(feedback) != s.wordSize {
		return 0, fmt.Errorf("%w: invalid number of characters in [%s] and/or [%s], both must contain exactly %d characters",
			ErrInvalidArgument, guess, feedback, s.wordSize)
	}
	for i := 0; i < len(feedback); i++ {
		switch feedback[i] {
		case 'b', 'y', 'g':
		default:
			return 0, fmt.Errorf("%w: invalid feedback characters in [%s], feedback characters must be from %q",
				ErrInvalidArgument, feedback, allowedFeedback)
		}
	}

	// consumed marks positions already handled by the duplicate-letter
	// branch, so the guess and feedback strings stay untouched.
	consumed := make([]bool, s.wordSize)
	for i := 0; i < s.wordSize; i++ {
		if consumed[i] {
			continue
		}
		c := guess[i]
		switch feedback[i] {
		case 'g':
			if err := s.store.ExistsAt(c, i); err != nil {
				return 0, err
			}
		case 'y':
			s.store.Exists(c)
			if err := s.store.DoesNotExistAt(c, i); err != nil {
				return 0, err
			}
		case 'b':
			if err := s.applyBlack(c, guess, feedback, i, consumed); err != nil {
				return 0, err
			}
		}
	}
	return s.store.Size(), nil
}

// applyBlack handles a black mark at position i for character c.
//
// A black mark means this copy of c is excess: the target holds fewer copies
// of c than the guess does. Yellow and green marks on the other copies set
// the lower bound, so the target holds at most yellow-many (resp.
// green-many) copies. When no other copy is marked, c is absent entirely.
// The two ceilings stay independent filters; whichever is stricter wins.
func (s *Solver) applyBlack(c byte, guess, feedback string, i int, consumed []bool) error {
	if err := s.store.DoesNotExistAt(c, i); err != nil {
		return err
	}

	yellow, green := 0, 0
	for j := 0; j < s.wordSize; j++ {
		if guess[j] != c {
			continue
		}
		switch feedback[j] {
		case 'y':
			if err := s.store.DoesNotExistAt(c, j); err != nil {
				return err
			}
			yellow++
		case 'g':
			if err := s.store.ExistsAt(c, j); err != nil {
				return err
			}
			green++
		}
	}

	if yellow == 0 && green == 0 {
		s.store.DoesNotExist(c)
	}
	if yellow > 0 {
		s.store.RemoveIfCountAtLeast(c, yellow+1)
	}
	if green > 0 {
		s.store.RemoveIfCountAtLeast(c, green+1)
	}

	// Every copy of c is now accounted for; skip them in the outer scan.
	for j := 0; j < s.wordSize; j++ {
		if guess[j] == c {
			consumed[j] = true
		}
	}
	return nil
}
