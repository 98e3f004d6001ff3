// cmd/solvecli/main.go
//
// Interactive terminal client for the solver. Plays alongside a real Wordle
// game: it shows candidate words to try, the user enters the word they
// played and the colour feedback the game returned, and the candidate set
// narrows until the target is found or the dictionary is exhausted.

package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/candidates"
	"github.com/robalobadob/wordle-solver/internal/dict"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

var (
	flagWordSize  int    // letters per word
	flagLimit     int    // max candidates shown per round
	flagDictFile  string // word,count frequency file
	flagWordsFile string // plain word-per-line file
	flagPlain     bool   // use the unranked store even when counts exist
)

var rootCmd = &cobra.Command{
	Use:   "solvecli",
	Short: "Interactive Wordle solving assistant",
	Long: `Narrows a dictionary to the words consistent with your guesses.

Each round the assistant prints candidate words, you enter the word you
played and the feedback string the game gave back ('b' black, 'y' yellow,
'g' green, one character per letter), and the candidate list shrinks.

Examples:
  solvecli                          # 5-letter words, built-in dictionary
  solvecli --dict words_freq.txt    # ranked by your own frequency list
  solvecli --word-size 6 --limit 20`,
	RunE: runSolve,
}

func init() {
	rootCmd.Flags().IntVar(&flagWordSize, "word-size", 5, "number of letters per word")
	rootCmd.Flags().IntVar(&flagLimit, "limit", 10, "maximum candidates displayed per round")
	rootCmd.Flags().StringVar(&flagDictFile, "dict", "", "path to a word,count frequency file")
	rootCmd.Flags().StringVar(&flagWordsFile, "words", "", "path to a plain word-per-line file")
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, "ignore frequency counts and keep dictionary order")
	rootCmd.SilenceUsage = true
}

func runSolve(cmd *cobra.Command, args []string) error {
	if flagWordSize < 1 {
		return fmt.Errorf("word size must be positive, got %d", flagWordSize)
	}

	entries, err := loadEntries()
	if err != nil {
		return err
	}

	var store candidates.Store
	ranked := !flagPlain && flagWordsFile == ""
	if ranked {
		store = candidates.NewRanked(entries, flagWordSize)
	} else {
		words := make([]string, 0, len(entries))
		for _, e := range entries {
			words = append(words, e.Word)
		}
		store = candidates.NewList(words, flagWordSize)
	}

	l := &loop{
		in:     cmd.InOrStdin(),
		out:    cmd.OutOrStdout(),
		sol:    solver.New(store),
		ranked: ranked,
		limit:  flagLimit,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	return l.run()
}

// loadEntries resolves the dictionary: explicit flags first, then the
// environment/embedded resolution shared with the server.
func loadEntries() ([]candidates.Entry, error) {
	switch {
	case flagDictFile != "":
		return dict.LoadFrequencyFile(flagDictFile)
	case flagWordsFile != "":
		words, err := dict.LoadWordFile(flagWordsFile)
		if err != nil {
			return nil, err
		}
		entries := make([]candidates.Entry, len(words))
		for i, w := range words {
			entries[i] = candidates.Entry{Word: w}
		}
		return entries, nil
	default:
		return dict.Load()
	}
}

func main() {
	_ = godotenv.Load()
	zerolog.SetGlobalLevel(zerolog.WarnLevel) // keep the prompt clean
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
