package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares a word for lookup and comparison:
//   - applies Unicode NFC composition
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return ""
	}
	return compressSpaces(strings.ToLower(text))
}

// NormalizeGloss cleans a gloss fragment without changing its case:
// NFC composition, control characters removed, whitespace runs collapsed
// to one space and the result trimmed.
func NormalizeGloss(text string) string {
	text = norm.NFC.String(text)
	text = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
	return compressSpaces(strings.TrimSpace(text))
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// NormalizeDefinition makes a definition fit on one dictionary line:
// line breaks become spaces and surrounding whitespace is trimmed.
func NormalizeDefinition(text string) string {
	return strings.TrimSpace(lineBreaks.Replace(text))
}

func compressSpaces(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
