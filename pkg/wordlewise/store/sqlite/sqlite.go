// Package sqlite persists cached word lists in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/wordlewise/pkg/wordlewise/store"
)

// sqliteStore implements store.Store using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite word list cache at path, creating the schema if
// needed. WAL mode is enabled.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS word_lists (
	source TEXT PRIMARY KEY,
	words TEXT NOT NULL,
	fetched_at TEXT NOT NULL
);`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// PutList implements store.Store. Words are stored newline-joined; word
// list entries never contain newlines by construction.
func (s *sqliteStore) PutList(ctx context.Context, l store.List) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO word_lists(source, words, fetched_at) VALUES(?, ?, ?)
ON CONFLICT(source) DO UPDATE SET words=excluded.words, fetched_at=excluded.fetched_at`,
		l.Source, strings.Join(l.Words, "\n"), l.FetchedAt.UTC().Format(time.RFC3339))
	return err
}

// GetList implements store.Store.
func (s *sqliteStore) GetList(ctx context.Context, source string) (store.List, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT words, fetched_at FROM word_lists WHERE source = ?`, source)

	var words, fetched string
	if err := row.Scan(&words, &fetched); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.List{}, false, nil
		}
		return store.List{}, false, err
	}

	l := store.List{Source: source}
	if words != "" {
		l.Words = strings.Split(words, "\n")
	}
	if t, err := time.Parse(time.RFC3339, fetched); err == nil {
		l.FetchedAt = t
	}
	return l, true, nil
}
