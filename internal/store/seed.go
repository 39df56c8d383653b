package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// EnsureSeeded copies seedPath to path when path does not exist yet.
// It reports whether a copy was made.
func EnsureSeeded(path, seedPath string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("store: stat %s: %w", path, err)
	}

	src, err := os.Open(seedPath)
	if err != nil {
		return false, fmt.Errorf("store: open seed %s: %w", seedPath, err)
	}
	defer src.Close()

	if err := writeAtomic(path, func(w io.Writer) error {
		_, err := io.Copy(w, src)
		return err
	}); err != nil {
		return false, err
	}
	return true, nil
}
