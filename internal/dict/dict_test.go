package dict

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/candidates"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadFrequencyFile parses word,count lines, lowercasing and skipping
// blanks and comments.
func TestLoadFrequencyFile(t *testing.T) {
	path := writeFile(t, "freq.txt", "# header\nABOUT,100\n\ncrane, 42\n")

	entries, err := LoadFrequencyFile(path)
	require.NoError(t, err)
	assert.Equal(t, []candidates.Entry{
		{Word: "about", Count: 100},
		{Word: "crane", Count: 42},
	}, entries)
}

// TestLoadFrequencyFile_MissingSeparator rejects lines without a comma and
// names the offending line.
func TestLoadFrequencyFile_MissingSeparator(t *testing.T) {
	path := writeFile(t, "freq.txt", "about,100\ncrane\n")

	_, err := LoadFrequencyFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crane")
	assert.Contains(t, err.Error(), ":2:")
}

// TestLoadFrequencyFile_BadCount rejects non-numeric counts.
func TestLoadFrequencyFile_BadCount(t *testing.T) {
	path := writeFile(t, "freq.txt", "about,many\n")

	_, err := LoadFrequencyFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "about,many")
}

// TestLoadWordFile reads one word per line.
func TestLoadWordFile(t *testing.T) {
	path := writeFile(t, "words.txt", "CRANE\n# comment\n\n  stink \n")

	words, err := LoadWordFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "stink"}, words)
}

// TestDefault verifies the embedded dictionary parses and is usable as-is.
func TestDefault(t *testing.T) {
	entries, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	words := map[string]bool{}
	for _, e := range entries {
		words[e.Word] = true
		assert.Len(t, e.Word, 5)
	}
	assert.True(t, words["about"])
}

// TestSQLiteRoundTrip exercises the database-backed dictionary source end
// to end against a real SQLite file.
func TestSQLiteRoundTrip(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "data", "dict.db")

	db, err := OpenDB(dsn)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE words (word TEXT PRIMARY KEY, frequency INTEGER NOT NULL)`)
	require.NoError(t, err)
	for _, row := range []candidates.Entry{
		{Word: "crane", Count: 10},
		{Word: "about", Count: 100},
		{Word: "stink", Count: 5},
	} {
		_, err = db.Exec(`INSERT INTO words (word, frequency) VALUES (?,?)`, row.Word, row.Count)
		require.NoError(t, err)
	}

	entries, err := LoadDB(db)
	require.NoError(t, err)
	assert.Equal(t, []candidates.Entry{
		{Word: "about", Count: 100},
		{Word: "crane", Count: 10},
		{Word: "stink", Count: 5},
	}, entries)
}

// TestLoad_EnvResolution verifies the frequency-file environment variable
// takes effect.
func TestLoad_EnvResolution(t *testing.T) {
	path := writeFile(t, "freq.txt", "abc,3\nbcd,2\n")
	t.Setenv(EnvFreqFile, path)

	entries, err := Load()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "abc", entries[0].Word)
}

// TestLoad_WordsFileFallback verifies plain lists load with zero counts.
func TestLoad_WordsFileFallback(t *testing.T) {
	path := writeFile(t, "words.txt", "abc\nbcd\n")
	t.Setenv(EnvWordsFile, path)

	entries, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []candidates.Entry{{Word: "abc"}, {Word: "bcd"}}, entries)
}
