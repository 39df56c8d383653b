package define

import (
	"fmt"

	"github.com/silverhammermba/bananagrams/internal/domain"
)

// Policy names accepted by NewPolicy.
const (
	PolicyWeighted     = "weighted"
	PolicyShortest     = "shortest"
	PolicyFirstLiteral = "first-literal"
)

// Policy picks the winning clause from a filtered candidate set.
type Policy interface {
	Name() string
	Pick(word string, set domain.CandidateSet) (domain.ScoredCandidate, bool)
}

// NewPolicy returns the ranking policy registered under name.
func NewPolicy(name string, w Weights) (Policy, error) {
	switch name {
	case "", PolicyWeighted:
		return WeightedPolicy{Weights: w}, nil
	case PolicyShortest:
		return ShortestPolicy{Weights: w}, nil
	case PolicyFirstLiteral:
		return FirstLiteralPolicy{Weights: w}, nil
	default:
		return nil, domain.NewValidationError("ranking.policy", fmt.Sprintf("unknown policy %q", name))
	}
}

// WeightedPolicy picks the clause with the highest weighted feature sum.
type WeightedPolicy struct {
	Weights Weights
}

func (WeightedPolicy) Name() string { return PolicyWeighted }

func (p WeightedPolicy) Pick(word string, set domain.CandidateSet) (domain.ScoredCandidate, bool) {
	return Rank(word, set, p.Weights)
}

// ShortestPolicy picks the clause with the fewest characters.
// Weights only affect the reported totals.
type ShortestPolicy struct {
	Weights Weights
}

func (ShortestPolicy) Name() string { return PolicyShortest }

func (p ShortestPolicy) Pick(word string, set domain.CandidateSet) (domain.ScoredCandidate, bool) {
	var (
		best    domain.ScoredCandidate
		bestLen int
		found   bool
	)
	for _, c := range Score(word, set, p.Weights) {
		n := clauseLength(c.Clause)
		if !found || n < bestLen {
			best, bestLen, found = c, n, true
		}
	}
	return best, found
}

// FirstLiteralPolicy picks the first clause that does not use the word
// itself. When every clause does, the first clause wins.
type FirstLiteralPolicy struct {
	Weights Weights
}

func (FirstLiteralPolicy) Name() string { return PolicyFirstLiteral }

func (p FirstLiteralPolicy) Pick(word string, set domain.CandidateSet) (domain.ScoredCandidate, bool) {
	scored := Score(word, set, p.Weights)
	if len(scored) == 0 {
		return domain.ScoredCandidate{}, false
	}
	for _, c := range scored {
		if c.Scores.SelfReference == 1.0 {
			return c, true
		}
	}
	return scored[0], true
}
