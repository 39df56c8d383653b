package store

import (
	"context"
	"slices"

	"github.com/silverhammermba/bananagrams/internal/domain"
)

// FileStore binds a Dictionary to the file it was loaded from.
type FileStore struct {
	path string
	dict *Dictionary
}

// Open seeds path from seedPath if needed and loads it. seedPath may be
// empty when no seeding is wanted.
func Open(path, seedPath string) (*FileStore, bool, error) {
	seeded := false
	if seedPath != "" {
		var err error
		if seeded, err = EnsureSeeded(path, seedPath); err != nil {
			return nil, false, err
		}
	}

	d, err := Load(path)
	if err != nil {
		return nil, seeded, err
	}
	return &FileStore{path: path, dict: d}, seeded, nil
}

// Dictionary returns the loaded dictionary.
func (s *FileStore) Dictionary() *Dictionary { return s.dict }

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// PendingWords returns the unresolved words in file order.
func (s *FileStore) PendingWords(_ context.Context) ([]string, error) {
	return slices.Collect(s.dict.Pending()), nil
}

// SetDefinition records a definition in memory. Flush persists it.
func (s *FileStore) SetDefinition(_ context.Context, word, definition string) error {
	return s.dict.SetDefinition(word, definition)
}

// Counts returns the number of entries per state.
func (s *FileStore) Counts(_ context.Context) (domain.StateCounts, error) {
	return s.dict.Counts(), nil
}

// Entries returns all entries in file order.
func (s *FileStore) Entries(_ context.Context) ([]domain.Entry, error) {
	return s.dict.Entries(), nil
}

// Flush writes the dictionary back to its file.
func (s *FileStore) Flush(_ context.Context) error {
	return s.dict.Save(s.path)
}

// Merge copies recorded definitions into the dictionary. Unresolved
// entries and words missing from the file are ignored. Returns the number
// of entries applied; Flush persists them.
func (s *FileStore) Merge(entries []domain.Entry) int {
	n := 0
	for _, e := range entries {
		if e.Definition == nil {
			continue
		}
		if err := s.dict.SetDefinition(e.Word, *e.Definition); err != nil {
			continue
		}
		n++
	}
	return n
}
