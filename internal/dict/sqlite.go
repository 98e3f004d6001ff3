// internal/dict/sqlite.go
//
// SQLite-backed dictionary source.
// Schema expectation: a `words` table with columns `word` (TEXT) and
// `frequency` (INTEGER). Larger installations keep the word list in a
// database so it can be curated without redeploying.

package dict

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/robalobadob/wordle-solver/internal/candidates"
)

// OpenDB opens a SQLite database file.
//
// - Ensures the parent directory exists for relative DSNs (e.g. ./data/dict.db).
// - Configures busy timeout and WAL journaling mode.
// - Enforces foreign keys.
func OpenDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// LoadDB reads every (word, frequency) row from the words table.
func LoadDB(db *sql.DB) ([]candidates.Entry, error) {
	rows, err := db.Query(`SELECT word, frequency FROM words ORDER BY frequency DESC`)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var out []candidates.Entry
	for rows.Next() {
		var e candidates.Entry
		if err := rows.Scan(&e.Word, &e.Count); err != nil {
			return nil, fmt.Errorf("scan words row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
