// Package store handles SQLite persistence for the quote corpus.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/verte-zerg/typebench/internal/corpus"
	"github.com/verte-zerg/typebench/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

//go:embed quotes.json
var seedQuotes []byte

// Store wraps SQLite access for quote data. It implements corpus.QuoteSource.
type Store struct {
	db *sql.DB
}

var _ corpus.QuoteSource = (*Store)(nil)

// Open opens or creates the SQLite database, applies migrations, and seeds
// the quote table from the embedded set when it is empty.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	if err := store.seed(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on seed failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS quotes (
			id INTEGER PRIMARY KEY,
			text TEXT NOT NULL,
			source TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) seed() error {
	count, err := s.Count(context.Background())
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	var quotes []struct {
		Text   string `json:"text"`
		Source string `json:"source"`
	}
	if err := json.Unmarshal(seedQuotes, &quotes); err != nil {
		return fmt.Errorf("failed to parse embedded quotes: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()
	stmt, err := tx.Prepare(`INSERT INTO quotes (text, source) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for _, q := range quotes {
		if _, err = stmt.Exec(q.Text, q.Source); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Count returns the number of stored quotes.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quotes`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// InsertQuote adds one quote and returns its id.
func (s *Store) InsertQuote(ctx context.Context, quote model.Quote) (int64, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO quotes (text, source) VALUES (?, ?)`, quote.Text, quote.Source)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// RandomQuote returns one quote drawn uniformly from the table.
func (s *Store) RandomQuote(ctx context.Context) (model.Quote, error) {
	var quote model.Quote
	err := s.db.QueryRowContext(ctx,
		`SELECT text, source FROM quotes ORDER BY RANDOM() LIMIT 1`).Scan(&quote.Text, &quote.Source)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Quote{}, corpus.ErrEmptyCorpus
	}
	if err != nil {
		return model.Quote{}, err
	}
	return quote, nil
}
