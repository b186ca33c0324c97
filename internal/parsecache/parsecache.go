// Package parsecache is a small sqlite-backed cache of parse summaries,
// keyed by a content hash, that cmd/pyparse's `-cache` flag consults
// before re-parsing a file from scratch. It is deliberately not an
// incremental parser (spec.md's Non-goals rule that out): a cache hit
// just means "we already know this exact source text's diagnostic
// count", not "re-parse only the changed region" (SPEC_FULL §1,
// grounded in the teacher's internal/evaluator/builtins_sql.go use of
// database/sql + modernc.org/sqlite).
package parsecache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Summary is the cached shape of one prior parse.
type Summary struct {
	Hash        string
	ErrorCount  int
	NodeCount   int
	ParsedAtUTC time.Time
}

// Cache wraps a sqlite database holding one row per distinct source hash.
type Cache struct {
	db *sql.DB
}

// Open creates or opens the sqlite database at path and ensures its
// schema exists.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("parsecache: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("parsecache: migrate %s: %w", path, err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error { return c.db.Close() }

const schema = `
CREATE TABLE IF NOT EXISTS parse_summary (
	hash          TEXT PRIMARY KEY,
	error_count   INTEGER NOT NULL,
	node_count    INTEGER NOT NULL,
	parsed_at_utc TEXT NOT NULL
);
`

// HashSource returns the cache key for a piece of source text.
func HashSource(src string) string {
	sum := sha256.Sum256([]byte(src))
	return hex.EncodeToString(sum[:])
}

// Lookup returns the cached Summary for hash, or ok == false on a miss.
func (c *Cache) Lookup(hash string) (Summary, bool, error) {
	row := c.db.QueryRow(`SELECT hash, error_count, node_count, parsed_at_utc FROM parse_summary WHERE hash = ?`, hash)
	var s Summary
	var parsedAt string
	if err := row.Scan(&s.Hash, &s.ErrorCount, &s.NodeCount, &parsedAt); err != nil {
		if err == sql.ErrNoRows {
			return Summary{}, false, nil
		}
		return Summary{}, false, fmt.Errorf("parsecache: lookup: %w", err)
	}
	s.ParsedAtUTC, _ = time.Parse(time.RFC3339, parsedAt)
	return s, true, nil
}

// Store records or replaces the Summary for hash.
func (c *Cache) Store(s Summary) error {
	_, err := c.db.Exec(
		`INSERT INTO parse_summary (hash, error_count, node_count, parsed_at_utc) VALUES (?, ?, ?, ?)
		 ON CONFLICT(hash) DO UPDATE SET error_count = excluded.error_count, node_count = excluded.node_count, parsed_at_utc = excluded.parsed_at_utc`,
		s.Hash, s.ErrorCount, s.NodeCount, s.ParsedAtUTC.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("parsecache: store: %w", err)
	}
	return nil
}
