// internal/dict/dict.go
//
// Dictionary ingestion for the solver.
//
// Responsibilities:
//   - Load (word, count) pairs from comma-separated frequency files.
//   - Load plain one-word-per-line lists (no counts).
//   - Fall back to a small embedded frequency list so the binaries run with
//     no configuration.
//   - Resolve the source from environment variables (Load).
//
// Environment variables:
//   DICT_DB=/path/to/dictionary.db     SQLite database (see sqlite.go)
//   DICT_FILE=/path/to/freq.txt        "word,count" per line
//   DICT_WORDS_FILE=/path/to/words.txt one word per line, counts default 0
//
// Lines are trimmed and lowercased; blank lines and '#' comments are
// skipped. Length filtering is left to the candidate store, which drops
// words that do not match its word size.

package dict

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/candidates"
)

// Environment variables consulted by Load.
const (
	EnvDB        = "DICT_DB"
	EnvFreqFile  = "DICT_FILE"
	EnvWordsFile = "DICT_WORDS_FILE"
)

//go:embed default_freq.txt
var embeddedFreq string

// Load resolves the dictionary from the environment: a SQLite database,
// then a frequency file, then a plain word list, then the embedded default.
func Load() ([]candidates.Entry, error) {
	if dsn := os.Getenv(EnvDB); dsn != "" {
		db, err := OpenDB(dsn)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		log.Info().Str("db", dsn).Msg("loading dictionary from sqlite")
		return LoadDB(db)
	}
	if path := os.Getenv(EnvFreqFile); path != "" {
		log.Info().Str("file", path).Msg("loading frequency dictionary")
		return LoadFrequencyFile(path)
	}
	if path := os.Getenv(EnvWordsFile); path != "" {
		log.Info().Str("file", path).Msg("loading plain word list")
		words, err := LoadWordFile(path)
		if err != nil {
			return nil, err
		}
		entries := make([]candidates.Entry, len(words))
		for i, w := range words {
			entries[i] = candidates.Entry{Word: w}
		}
		return entries, nil
	}
	log.Info().Msg("no dictionary configured, using embedded default")
	return Default()
}

// Default returns the embedded frequency list.
func Default() ([]candidates.Entry, error) {
	return parseFrequencyLines(strings.NewReader(embeddedFreq), "embedded default")
}

// LoadFrequencyFile reads "word,count" lines from path.
func LoadFrequencyFile(path string) ([]candidates.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseFrequencyLines(f, path)
}

// LoadWordFile reads one word per line from path.
func LoadWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// parseFrequencyLines parses "word,count" lines, rejecting malformed lines
// with an error naming the source and line number.
func parseFrequencyLines(r io.Reader, source string) ([]candidates.Entry, error) {
	var out []candidates.Entry
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		word, countStr, ok := strings.Cut(s, ",")
		if !ok {
			return nil, fmt.Errorf("%s:%d: couldn't find separator ',' in %q", source, line, s)
		}
		count, err := strconv.ParseUint(strings.TrimSpace(countStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad count in %q: %w", source, line, s, err)
		}
		out = append(out, candidates.Entry{
			Word:  strings.ToLower(strings.TrimSpace(word)),
			Count: count,
		})
	}
	return out, sc.Err()
}
