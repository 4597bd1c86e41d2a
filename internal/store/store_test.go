package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/typebench/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "quotes.db")
	st, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestOpenSeedsQuotes(t *testing.T) {
	st := openTestStore(t)
	count, err := st.Count(context.Background())
	if err != nil {
		t.Fatalf("count quotes: %v", err)
	}
	if count == 0 {
		t.Fatalf("expected seeded quotes, got none")
	}
}

func TestRandomQuote(t *testing.T) {
	st := openTestStore(t)
	quote, err := st.RandomQuote(context.Background())
	if err != nil {
		t.Fatalf("random quote: %v", err)
	}
	if quote.Text == "" || quote.Source == "" {
		t.Fatalf("expected populated quote, got %+v", quote)
	}
}

func TestInsertQuote(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	before, err := st.Count(ctx)
	if err != nil {
		t.Fatalf("count quotes: %v", err)
	}
	if _, err := st.InsertQuote(ctx, model.Quote{Text: "so it goes", Source: "Vonnegut"}); err != nil {
		t.Fatalf("insert quote: %v", err)
	}
	after, err := st.Count(ctx)
	if err != nil {
		t.Fatalf("count quotes: %v", err)
	}
	if after != before+1 {
		t.Fatalf("expected count %d, got %d", before+1, after)
	}
}
