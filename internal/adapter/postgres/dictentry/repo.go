// Package dictentry stores dictionary entries in PostgreSQL.
// A NULL definition is an unresolved word, an empty one is the not-found marker.
package dictentry

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/silverhammermba/bananagrams/internal/adapter/postgres"
	"github.com/silverhammermba/bananagrams/internal/domain"
	"github.com/silverhammermba/bananagrams/pkg/ctxutil"
)

const (
	table = "dictionary_entries"

	// importChunk bounds the rows of one multi-row INSERT.
	importChunk = 1000
)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides dictionary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new dictionary entry repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// Import inserts entries in one transaction. A word already present keeps
// its stored definition unless it is still unresolved and the entry carries
// a definition or the not-found marker. Returns the number of inserted or
// updated rows.
func (r *Repo) Import(ctx context.Context, entries []domain.Entry) (int, error) {
	entries = dedupe(entries)
	if len(entries) == 0 {
		return 0, nil
	}

	var inserted int
	err := r.txm.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)
		for start := 0; start < len(entries); start += importChunk {
			end := min(start+importChunk, len(entries))

			insert := builder.Insert(table).Columns("word", "definition")
			for _, e := range entries[start:end] {
				insert = insert.Values(e.Word, e.Definition)
			}
			insert = insert.Suffix(`ON CONFLICT (word) DO UPDATE
				SET definition = EXCLUDED.definition, updated_at = now()
				WHERE dictionary_entries.definition IS NULL AND EXCLUDED.definition IS NOT NULL`)

			query, args, err := insert.ToSql()
			if err != nil {
				return fmt.Errorf("build import query: %w", err)
			}

			tag, err := q.Exec(ctx, query, args...)
			if err != nil {
				return postgres.MapError(err, "dictionary_entry", entries[start].Word)
			}
			inserted += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("import dictionary entries: %w", err)
	}

	return inserted, nil
}

// dedupe keeps the first position of each word and its last definition,
// as the dictionary file does. One upsert statement may not touch a row twice.
func dedupe(entries []domain.Entry) []domain.Entry {
	out := make([]domain.Entry, 0, len(entries))
	index := make(map[string]int, len(entries))
	for _, e := range entries {
		if i, ok := index[e.Word]; ok {
			out[i].Definition = e.Definition
			continue
		}
		index[e.Word] = len(out)
		out = append(out, e)
	}
	return out
}

// PendingWords returns unresolved words in insertion order.
func (r *Repo) PendingWords(ctx context.Context) ([]string, error) {
	query, args, err := builder.Select("word").
		From(table).
		Where(squirrel.Eq{"definition": nil}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pending query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query pending words: %w", err)
	}

	words, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan pending words: %w", err)
	}
	return words, nil
}

// SetDefinition records the definition of an existing word. An empty
// definition marks the word as not found. The run ID from ctx, if any,
// is stored alongside.
func (r *Repo) SetDefinition(ctx context.Context, word, definition string) error {
	update := builder.Update(table).
		Set("definition", domain.NormalizeDefinition(definition)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"word": word})
	if runID, ok := ctxutil.RunIDFromCtx(ctx); ok {
		update = update.Set("last_run_id", runID)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "dictionary_entry", word)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "dictionary_entry", word)
	}
	return nil
}

// Flush is a no-op: every SetDefinition is committed on its own.
func (r *Repo) Flush(context.Context) error { return nil }

// Counts returns the number of entries per resolution state.
func (r *Repo) Counts(ctx context.Context) (domain.StateCounts, error) {
	query, args, err := builder.Select(
		"count(*) FILTER (WHERE definition IS NULL)",
		"count(*) FILTER (WHERE definition = '')",
		"count(*) FILTER (WHERE definition <> '')",
	).From(table).ToSql()
	if err != nil {
		return domain.StateCounts{}, fmt.Errorf("build counts query: %w", err)
	}

	var unresolved, notFound, resolved int64
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).
		Scan(&unresolved, &notFound, &resolved)
	if err != nil {
		return domain.StateCounts{}, fmt.Errorf("count dictionary entries: %w", err)
	}

	return domain.StateCounts{
		Unresolved: int(unresolved),
		NotFound:   int(notFound),
		Resolved:   int(resolved),
	}, nil
}

// Entries returns every entry in insertion order.
func (r *Repo) Entries(ctx context.Context) ([]domain.Entry, error) {
	query, args, err := builder.Select("word", "definition").
		From(table).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build entries query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query dictionary entries: %w", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Entry, error) {
		var e domain.Entry
		err := row.Scan(&e.Word, &e.Definition)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan dictionary entries: %w", err)
	}
	return entries, nil
}
