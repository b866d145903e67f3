package phrases

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/f3rmion/fourzi/internal/fourzi"
)

const schema = `
CREATE TABLE IF NOT EXISTS phrases (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	phrase TEXT    NOT NULL UNIQUE,
	score  INTEGER NOT NULL DEFAULT 0
)`

// Store keeps the phrase pool in a sqlite database.
type Store struct {
	path string
	db   *sql.DB
}

// OpenStore opens (or creates) the database at path and ensures the schema.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{path: path, db: db}, nil
}

// Import upserts every entry of pool. Existing phrases keep their position
// and take the new score. It returns the number of rows written; on error
// nothing is written.
func (s *Store) Import(ctx context.Context, pool fourzi.Pool) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO phrases (phrase, score) VALUES (?, ?)
		ON CONFLICT(phrase) DO UPDATE SET score = excluded.score
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	written := 0
	for _, e := range Clean(pool) {
		if _, err := stmt.ExecContext(ctx, e.Phrase, e.Score); err != nil {
			return 0, fmt.Errorf("inserting %s: %w", e.Phrase, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}
	return written, nil
}

// LoadPhrases returns all phrases in insertion order.
func (s *Store) LoadPhrases(ctx context.Context) (fourzi.Pool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT phrase, score FROM phrases ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying phrases: %w", err)
	}
	defer rows.Close()

	var entries []fourzi.Entry
	for rows.Next() {
		var e fourzi.Entry
		if err := rows.Scan(&e.Phrase, &e.Score); err != nil {
			return nil, fmt.Errorf("scanning phrase: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading phrases: %w", err)
	}

	return nonEmpty(Clean(entries), s.path)
}

// Count returns the number of stored phrases.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM phrases`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting phrases: %w", err)
	}
	return n, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
