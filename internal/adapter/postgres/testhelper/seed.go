package testhelper

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/silverhammermba/bananagrams/internal/domain"
)

// ResetDictionary removes every dictionary entry.
func ResetDictionary(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), `TRUNCATE dictionary_entries RESTART IDENTITY`); err != nil {
		t.Fatalf("testhelper: truncate dictionary_entries: %v", err)
	}
}

// SeedEntries inserts entries in order with plain SQL, bypassing the repository.
func SeedEntries(t *testing.T, pool *pgxpool.Pool, entries ...domain.Entry) {
	t.Helper()
	ctx := context.Background()
	for _, e := range entries {
		_, err := pool.Exec(ctx,
			`INSERT INTO dictionary_entries (word, definition) VALUES ($1, $2)`,
			e.Word, e.Definition,
		)
		if err != nil {
			t.Fatalf("testhelper: seed entry %q: %v", e.Word, err)
		}
	}
}

// Definition returns the stored definition of word and whether the row exists.
func Definition(t *testing.T, pool *pgxpool.Pool, word string) (*string, bool) {
	t.Helper()
	var def *string
	err := pool.QueryRow(context.Background(),
		`SELECT definition FROM dictionary_entries WHERE word = $1`, word,
	).Scan(&def)
	if err != nil {
		return nil, false
	}
	return def, true
}
