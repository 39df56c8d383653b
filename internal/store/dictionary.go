// Package store keeps the word list and its definitions in a flat text file.
//
// One entry per line:
//
//	word               unresolved
//	word --            looked up, nothing usable found
//	word definition    resolved
//
// The game client splits lines at the first space and would show the `--`
// marker as a definition. Ship the output of `export -format text` (or the
// cpp header) to the game, not this file.
package store

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/silverhammermba/bananagrams/internal/domain"
)

// NotFoundMarker is written in place of a definition for words whose lookup
// produced nothing usable. WordNet uses it as its own separator, so it never
// appears as a gloss.
const NotFoundMarker = "--"

const maxLineSize = 1 << 20

// Dictionary is an ordered word → definition mapping.
// It is not safe for concurrent use.
type Dictionary struct {
	entries    []domain.Entry
	index      map[string]int
	duplicates int
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{index: make(map[string]int)}
}

// Load reads a dictionary file.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}
	return d, nil
}

// Parse reads dictionary lines from r. Blank lines are skipped. When a word
// repeats, the entry keeps its first position and takes the later definition.
func Parse(r io.Reader) (*Dictionary, error) {
	d := New()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		word, def, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		d.put(word, def)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return d, nil
}

// parseLine splits a line at its first whitespace run.
func parseLine(line string) (string, *string, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil, false
	}

	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, nil, true
	}

	word := line[:i]
	rest := strings.TrimSpace(line[i:])
	switch rest {
	case "":
		return word, nil, true
	case NotFoundMarker:
		empty := ""
		return word, &empty, true
	default:
		return word, &rest, true
	}
}

func (d *Dictionary) put(word string, def *string) {
	if i, ok := d.index[word]; ok {
		d.duplicates++
		d.entries[i].Definition = def
		return
	}
	d.index[word] = len(d.entries)
	d.entries = append(d.entries, domain.Entry{Word: word, Definition: def})
}

// Add appends an unresolved word. Existing words are left untouched.
func (d *Dictionary) Add(word string) bool {
	if _, ok := d.index[word]; ok || word == "" {
		return false
	}
	d.put(word, nil)
	return true
}

// Get returns the entry for word.
func (d *Dictionary) Get(word string) (domain.Entry, bool) {
	i, ok := d.index[word]
	if !ok {
		return domain.Entry{}, false
	}
	return d.entries[i], true
}

// Pending yields unresolved words in file order. Entries resolved while
// iterating are not yielded.
func (d *Dictionary) Pending() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < len(d.entries); i++ {
			if d.entries[i].Definition != nil {
				continue
			}
			if !yield(d.entries[i].Word) {
				return
			}
		}
	}
}

// SetDefinition records the definition of word. Empty text records the
// not-found marker.
func (d *Dictionary) SetDefinition(word, text string) error {
	i, ok := d.index[word]
	if !ok {
		return fmt.Errorf("store: word %q: %w", word, domain.ErrNotFound)
	}
	text = domain.NormalizeDefinition(text)
	d.entries[i].Definition = &text
	return nil
}

// Entries returns a copy of all entries in order.
func (d *Dictionary) Entries() []domain.Entry {
	out := make([]domain.Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Counts returns the number of entries per state.
func (d *Dictionary) Counts() domain.StateCounts {
	var c domain.StateCounts
	for _, e := range d.entries {
		c.Add(e.State())
	}
	return c
}

// Duplicates returns how many repeated words were merged while parsing.
func (d *Dictionary) Duplicates() int {
	return d.duplicates
}

// WriteTo writes every entry in order.
func (d *Dictionary) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for _, e := range d.entries {
		n, err := bw.WriteString(formatLine(e))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}

func formatLine(e domain.Entry) string {
	switch e.State() {
	case domain.StateUnresolved:
		return e.Word + "\n"
	case domain.StateNotFound:
		return e.Word + " " + NotFoundMarker + "\n"
	default:
		return e.Word + " " + *e.Definition + "\n"
	}
}

// Save writes the dictionary to path through a temporary file in the same
// directory that is renamed over the target.
func (d *Dictionary) Save(path string) error {
	return writeAtomic(path, func(w io.Writer) error {
		_, err := d.WriteTo(w)
		return err
	})
}

func writeAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("store: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("store: sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("store: chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("store: rename to %s: %w", path, err)
	}
	return nil
}
