package define

import (
	"unicode/utf8"

	"github.com/silverhammermba/bananagrams/internal/domain"
)

// Range is an inclusive min/max pair over one feature.
type Range struct {
	Min int
	Max int
}

func (r *Range) observe(v int, first bool) {
	if first || v < r.Min {
		r.Min = v
	}
	if first || v > r.Max {
		r.Max = v
	}
}

// Bounds holds the per-word feature ranges used to normalize scores.
// They are computed over one word's filtered candidates only.
type Bounds struct {
	CategorySize Range // senses per category
	SynonymCount Range // synonyms per sense
	ClauseLength Range // runes per clause
}

// ComputeBounds scans every category, sense and clause of set.
// An empty set yields zero ranges.
func ComputeBounds(set domain.CandidateSet) Bounds {
	var (
		b                          Bounds
		firstCat, firstSyn, firstC = true, true, true
	)

	for _, group := range set {
		if len(group.Senses) == 0 {
			continue
		}
		b.CategorySize.observe(len(group.Senses), firstCat)
		firstCat = false

		for _, sense := range group.Senses {
			b.SynonymCount.observe(len(sense.Synonyms), firstSyn)
			firstSyn = false

			for _, clause := range sense.Clauses {
				b.ClauseLength.observe(clauseLength(clause), firstC)
				firstC = false
			}
		}
	}

	return b
}

// Normalize maps v into [0,1] relative to r. When the range is degenerate
// (min == max) every value scores 1.0. invert flips the scale so that
// smaller values score higher.
func Normalize(v int, r Range, invert bool) float64 {
	if r.Min == r.Max {
		return 1.0
	}
	s := float64(v-r.Min) / float64(r.Max-r.Min)
	if invert {
		return 1.0 - s
	}
	return s
}

func clauseLength(clause string) int {
	return utf8.RuneCountInString(clause)
}
