// cmd/solvecli/loop.go
//
// The prompt/update loop. Runs until every position comes back green, the
// dictionary runs out of candidates, or input ends.

package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/robalobadob/wordle-solver/internal/candidates"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

type loop struct {
	in     io.Reader
	out    io.Writer
	sol    *solver.Solver
	ranked bool // ranked stores display top candidates, plain stores sample
	limit  int
	rng    *rand.Rand

	r *bufio.Reader
}

// run drives the interactive session.
func (l *loop) run() error {
	l.r = bufio.NewReader(l.in)
	fmt.Fprintf(l.out, "Welcome! word size is: [%d], display limit is: [%d]\n", l.sol.WordSize(), l.limit)

	l.printUpdate()
	word, err := l.readWord()
	if err != nil {
		return err
	}
	status, err := l.readStatus()
	if err != nil {
		return err
	}

	for !allGreen(status) {
		if _, err := l.sol.Update(word, status); err != nil {
			return err
		}
		if l.sol.Size() == 0 {
			fmt.Fprintln(l.out, "Unable to find any suitable words from dictionary")
			return nil
		}

		l.printUpdate()
		if word, err = l.readWord(); err != nil {
			return err
		}
		if status, err = l.readStatus(); err != nil {
			return err
		}
	}
	fmt.Fprintln(l.out, "Congratulations! you eventually found the word!")
	return nil
}

// printUpdate shows the remaining candidate count and a display-limited
// selection: the most common words for ranked stores, a random sample for
// plain ones.
func (l *loop) printUpdate() {
	size := l.sol.Size()
	if size > l.limit {
		fmt.Fprintf(l.out, "There are %d possible words, try one of these:\n", size)
	} else {
		fmt.Fprintf(l.out, "Only following %d possible words remaining:\n", size)
	}

	var shown []string
	if l.ranked {
		shown = l.sol.Candidates(l.limit)
	} else {
		shown = candidates.Sample(l.sol.All(), l.limit, l.rng)
	}
	for _, w := range shown {
		fmt.Fprintln(l.out, w)
	}
}

// readWord prompts for the word the user played. If the input looks like a
// status string, the user gets one chance to correct the mix-up.
func (l *loop) readWord() (string, error) {
	fmt.Fprint(l.out, "Enter the selected word: ")
	word, err := l.readValid(l.sol.WordSize(), isLowerAlpha)
	if err != nil {
		return "", err
	}
	if isStatus(word) {
		fmt.Fprint(l.out, "Did you just enter status instead of words (y/n)? ")
		ans, err := l.readValid(1, func(c byte) bool { return c == 'y' || c == 'n' })
		if err != nil {
			return "", err
		}
		if ans == "y" {
			fmt.Fprint(l.out, "Okay! Try again (last chance though)! Enter the selected word: ")
			return l.readValid(l.sol.WordSize(), isLowerAlpha)
		}
	}
	return word, nil
}

// readStatus prompts for the feedback string of the previous word.
func (l *loop) readStatus() (string, error) {
	fmt.Fprint(l.out, "Enter the status of previous word: ")
	return l.readValid(l.sol.WordSize(), func(c byte) bool { return c == 'b' || c == 'y' || c == 'g' })
}

// readValid reads lines until one has exactly n characters all satisfying
// valid, re-prompting on bad input. Input is trimmed and lowercased.
func (l *loop) readValid(n int, valid func(c byte) bool) (string, error) {
	for {
		line, err := l.r.ReadString('\n')
		s := strings.ToLower(strings.TrimSpace(line))
		if len(s) == n && allValid(s, valid) {
			return s, nil
		}
		if err != nil {
			if err == io.EOF && s == "" {
				return "", io.EOF
			}
			return "", err
		}
		fmt.Fprintf(l.out, "Expected %d characters, try again: ", n)
	}
}

func allValid(s string, valid func(c byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if !valid(s[i]) {
			return false
		}
	}
	return true
}

func isLowerAlpha(c byte) bool { return c >= 'a' && c <= 'z' }

// isStatus reports whether s consists only of feedback characters.
func isStatus(s string) bool {
	return s != "" && allValid(s, func(c byte) bool { return c == 'b' || c == 'y' || c == 'g' })
}

// allGreen reports whether every position of the status string is green.
func allGreen(status string) bool {
	return status != "" && allValid(status, func(c byte) bool { return c == 'g' })
}
