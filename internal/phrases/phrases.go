// Package phrases loads the idiom pool from files, sqlite or the built-in list.
package phrases

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/f3rmion/fourzi/internal/fourzi"
)

var (
	// ErrEmptyPool is returned when a source yields no valid phrases.
	ErrEmptyPool = errors.New("phrase pool is empty")
	// ErrUnknownFormat is returned by Open for unsupported file extensions.
	ErrUnknownFormat = errors.New("unknown phrase file format")
)

// Loader provides the phrase pool for a game.
type Loader interface {
	LoadPhrases(ctx context.Context) (fourzi.Pool, error)
}

// Open returns a loader for path chosen by file extension. An empty path
// selects the built-in list.
func Open(path string) (Loader, error) {
	if path == "" {
		return Embedded(), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLLoader(path), nil
	case ".jsonl", ".ndjson":
		return NewJSONLLoader(path), nil
	case ".db", ".sqlite", ".sqlite3":
		return &storeLoader{path: path}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Clean drops entries that are not exactly four characters and keeps the
// first occurrence of duplicated phrases. Order is preserved.
func Clean(entries []fourzi.Entry) fourzi.Pool {
	seen := make(map[string]bool, len(entries))
	pool := make(fourzi.Pool, 0, len(entries))

	for _, e := range entries {
		e.Phrase = strings.TrimSpace(e.Phrase)
		if !e.Valid() {
			log.Warn().Str("phrase", e.Phrase).Msg("skipping phrase with wrong length")
			continue
		}
		if seen[e.Phrase] {
			log.Debug().Str("phrase", e.Phrase).Msg("skipping duplicate phrase")
			continue
		}
		seen[e.Phrase] = true
		pool = append(pool, e)
	}

	return pool
}

// storeLoader opens the sqlite store for the duration of one load.
type storeLoader struct {
	path string
}

func (l *storeLoader) LoadPhrases(ctx context.Context) (fourzi.Pool, error) {
	// OpenStore creates missing databases; a load must not.
	if _, err := os.Stat(l.path); err != nil {
		return nil, fmt.Errorf("opening phrase database: %w", err)
	}

	store, err := OpenStore(ctx, l.path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.LoadPhrases(ctx)
}

func nonEmpty(pool fourzi.Pool, source string) (fourzi.Pool, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyPool, source)
	}
	return pool, nil
}
