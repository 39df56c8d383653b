// Package definer runs the definition pass over every unresolved word of a
// dictionary store.
package definer

import (
	"context"

	"github.com/silverhammermba/bananagrams/internal/domain"
)

// Store is the dictionary contract consumed by the pipeline.
// Implemented by store.FileStore and dictentry.Repo.
type Store interface {
	// PendingWords returns the unresolved words in store order.
	PendingWords(ctx context.Context) ([]string, error)
	// SetDefinition records a definition; "" records the not-found marker.
	SetDefinition(ctx context.Context, word, definition string) error
	// Flush persists pending changes. Called at checkpoints and at the end.
	Flush(ctx context.Context) error
	Counts(ctx context.Context) (domain.StateCounts, error)
}
