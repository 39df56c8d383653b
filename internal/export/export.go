// Package export renders a dictionary as an embeddable C++ header, a JSON
// object or the plain word list the game client reads at runtime.
// Unresolved and not-found entries are written with an empty definition.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/silverhammermba/bananagrams/internal/domain"
)

// Format selects the output encoding.
type Format string

const (
	FormatCPP  Format = "cpp"
	FormatJSON Format = "json"
	// FormatText is the dictionary file without the not-found marker:
	// `word` or `word definition` per line.
	FormatText Format = "text"
)

// ParseFormat validates a format name. Empty means cpp.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatCPP:
		return FormatCPP, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatText:
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: unknown export format %q", domain.ErrValidation, s)
	}
}

// Write encodes entries in file order.
func Write(w io.Writer, entries []domain.Entry, format Format) error {
	switch format {
	case FormatCPP:
		return WriteCPP(w, entries)
	case FormatJSON:
		return WriteJSON(w, entries)
	case FormatText:
		return WriteText(w, entries)
	default:
		return fmt.Errorf("%w: unknown export format %q", domain.ErrValidation, format)
	}
}

const cppHeader = `#include <map>
#include <string>

static const std::map<std::string, std::string> dictionary =
{
`

// WriteCPP writes a header declaring a std::map from word to definition.
func WriteCPP(w io.Writer, entries []domain.Entry) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(cppHeader)
	for _, e := range entries {
		fmt.Fprintf(bw, "\t{%s, %s},\n", cppQuote(e.Word), cppQuote(e.DefinitionText()))
	}
	bw.WriteString("};\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	return nil
}

// cppQuote returns s as a C++ narrow string literal. UTF-8 passes through;
// other control bytes get three-digit octal escapes, which cannot absorb
// the digits that follow them.
func cppQuote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&b, `\%03o`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// WriteJSON writes a single JSON object whose keys keep file order.
func WriteJSON(w io.Writer, entries []domain.Entry) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("{")
	for i, e := range entries {
		key, err := json.Marshal(e.Word)
		if err != nil {
			return fmt.Errorf("export: encode word %q: %w", e.Word, err)
		}
		val, err := json.Marshal(e.DefinitionText())
		if err != nil {
			return fmt.Errorf("export: encode definition of %q: %w", e.Word, err)
		}
		if i > 0 {
			bw.WriteString(",")
		}
		bw.WriteString("\n  ")
		bw.Write(key)
		bw.WriteString(": ")
		bw.Write(val)
	}
	if len(entries) > 0 {
		bw.WriteString("\n")
	}
	bw.WriteString("}\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write json: %w", err)
	}
	return nil
}

// WriteText writes one line per entry in the shape the game client splits
// at the first space: `word` when there is no definition, else
// `word definition`.
func WriteText(w io.Writer, entries []domain.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		bw.WriteString(e.Word)
		if def := e.DefinitionText(); def != "" {
			bw.WriteByte(' ')
			bw.WriteString(def)
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write text: %w", err)
	}
	return nil
}
