// Package wordnet parses the overview output of the WordNet command line tool
// (`wn <word> -over`) into candidate definitions.
// Pure function: raw text in, domain structs out. No process or file dependencies.
package wordnet

import (
	"regexp"
	"strings"

	"github.com/silverhammermba/bananagrams/internal/domain"
)

// glossSeparator divides the synonym list from the gloss on an entry line.
const glossSeparator = " -- "

var (
	// "Overview of noun cat"
	headerRe = regexp.MustCompile(`^Overview of (\w+)`)
	// "2. (1) guy, cat, hombre, bozo"
	synonymsRe = regexp.MustCompile(`^\d+\. (?:\(\d+\))?(.*)`)
	// "(an informal term for a youth or man; "a nice guy")"
	glossRe = regexp.MustCompile(`^\((.*)\)`)
)

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines   int
	Headers      int
	Entries      int
	SkippedLines int
}

// Parse turns the overview text for one word into a candidate set.
// Categories appear in the order of their first header; entries that occur
// before any header are grouped under the empty category. Lines matching
// neither a header nor an entry are skipped. Empty input yields an empty set.
func Parse(raw string) (domain.CandidateSet, Stats) {
	var (
		set      domain.CandidateSet
		stats    Stats
		category string
	)
	index := make(map[string]int)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		stats.TotalLines++

		if m := headerRe.FindStringSubmatch(line); m != nil {
			category = m[1]
			stats.Headers++
			continue
		}

		sense, ok := parseEntry(line)
		if !ok {
			if strings.TrimSpace(line) != "" {
				stats.SkippedLines++
			}
			continue
		}
		stats.Entries++

		i, seen := index[category]
		if !seen {
			i = len(set)
			index[category] = i
			set = append(set, domain.CategoryGroup{Category: category})
		}
		set[i].Senses = append(set[i].Senses, sense)
	}

	return set, stats
}

// parseEntry parses a single numbered sense line.
// Returns false when the line is not an entry or either half is malformed.
func parseEntry(line string) (domain.Sense, bool) {
	synPart, glossPart, found := strings.Cut(line, glossSeparator)
	if !found {
		return domain.Sense{}, false
	}

	m := synonymsRe.FindStringSubmatch(synPart)
	if m == nil {
		return domain.Sense{}, false
	}
	synonyms := splitTrimmed(m[1], ",")

	g := glossRe.FindStringSubmatch(glossPart)
	if g == nil {
		return domain.Sense{}, false
	}
	clauses := splitTrimmed(g[1], ";")

	if len(synonyms) == 0 || len(clauses) == 0 {
		return domain.Sense{}, false
	}

	return domain.Sense{Synonyms: synonyms, Clauses: clauses}, true
}

// splitTrimmed splits s on sep, normalizes every part and drops empty ones.
func splitTrimmed(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = domain.NormalizeGloss(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
