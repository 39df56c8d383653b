package define

import (
	"regexp"

	"github.com/silverhammermba/bananagrams/internal/domain"
)

// Weights scale each feature score before they are summed.
type Weights struct {
	Category      float64
	Synonyms      float64
	Brevity       float64
	SelfReference float64
}

// DefaultWeights returns equal weights, i.e. the plain four-factor sum.
func DefaultWeights() Weights {
	return Weights{Category: 1, Synonyms: 1, Brevity: 1, SelfReference: 1}
}

// Rank scores every clause of set for word and returns the highest total.
// Ties keep the first clause seen in category, sense, clause order.
// The boolean is false when set has no clauses.
func Rank(word string, set domain.CandidateSet, w Weights) (domain.ScoredCandidate, bool) {
	var (
		best  domain.ScoredCandidate
		found bool
	)
	for _, c := range Score(word, set, w) {
		if !found || c.Total > best.Total {
			best = c
			found = true
		}
	}
	return best, found
}

// Score computes the feature scores of every clause in set, in iteration
// order. Bounds are taken over set itself.
func Score(word string, set domain.CandidateSet, w Weights) []domain.ScoredCandidate {
	bounds := ComputeBounds(set)
	selfRef := selfReferenceMatcher(word)

	out := make([]domain.ScoredCandidate, 0, set.ClauseCount())
	for _, group := range set {
		catScore := Normalize(len(group.Senses), bounds.CategorySize, false)
		for _, sense := range group.Senses {
			synScore := Normalize(len(sense.Synonyms), bounds.SynonymCount, false)
			for _, clause := range sense.Clauses {
				s := domain.Scores{
					Category:      catScore,
					Synonyms:      synScore,
					Brevity:       Normalize(clauseLength(clause), bounds.ClauseLength, true),
					SelfReference: 1.0,
				}
				if selfRef(clause) {
					s.SelfReference = 0.0
				}
				out = append(out, domain.ScoredCandidate{
					Category: group.Category,
					Synonyms: sense.Synonyms,
					Clause:   clause,
					Scores:   s,
					Total:    w.total(s),
				})
			}
		}
	}
	return out
}

func (w Weights) total(s domain.Scores) float64 {
	return w.Category*s.Category +
		w.Synonyms*s.Synonyms +
		w.Brevity*s.Brevity +
		w.SelfReference*s.SelfReference
}

// selfReferenceMatcher reports whether a clause uses word as a whole word.
// Matching is case-sensitive.
func selfReferenceMatcher(word string) func(string) bool {
	if word == "" {
		return func(string) bool { return false }
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
	return re.MatchString
}
