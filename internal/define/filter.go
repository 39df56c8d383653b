package define

import (
	"strings"
	"unicode"

	"github.com/silverhammermba/bananagrams/internal/domain"
)

// FilterStats counts what the filter removed.
type FilterStats struct {
	ProperNouns     int // senses rejected for an uppercase synonym
	UsageExamples   int // clauses dropped for starting with a quote
	EmptySenses     int // senses rejected because no clause survived
	EmptyCategories int
}

// Filter removes candidates that make poor short definitions:
//   - senses with any synonym containing an uppercase letter
//     (proper nouns, acronyms, abbreviations);
//   - clauses that start with a double quote (usage examples);
//   - senses left without clauses, and categories left without senses.
//
// The input set is not modified.
func Filter(set domain.CandidateSet) (domain.CandidateSet, FilterStats) {
	var (
		out   domain.CandidateSet
		stats FilterStats
	)

	for _, group := range set {
		var senses []domain.Sense
		for _, sense := range group.Senses {
			if hasUppercase(sense.Synonyms) {
				stats.ProperNouns++
				continue
			}

			clauses := make([]string, 0, len(sense.Clauses))
			for _, c := range sense.Clauses {
				if isUsageExample(c) {
					stats.UsageExamples++
					continue
				}
				clauses = append(clauses, c)
			}
			if len(clauses) == 0 {
				stats.EmptySenses++
				continue
			}

			senses = append(senses, domain.Sense{
				Synonyms: append([]string(nil), sense.Synonyms...),
				Clauses:  clauses,
			})
		}

		if len(senses) == 0 {
			stats.EmptyCategories++
			continue
		}
		out = append(out, domain.CategoryGroup{Category: group.Category, Senses: senses})
	}

	return out, stats
}

func hasUppercase(words []string) bool {
	for _, w := range words {
		if strings.IndexFunc(w, unicode.IsUpper) >= 0 {
			return true
		}
	}
	return false
}

func isUsageExample(clause string) bool {
	return strings.HasPrefix(clause, `"`)
}
