package domain

// Sense is one synonym group of a word together with its gloss clauses.
type Sense struct {
	Synonyms []string
	Clauses  []string
}

// CategoryGroup holds the senses a lexical source reported under one
// category label (noun, verb, adj, ...). Labels are opaque.
type CategoryGroup struct {
	Category string
	Senses   []Sense
}

// CandidateSet is the structured lookup result for one word.
// Categories keep the order in which the source first reported them.
type CandidateSet []CategoryGroup

// Empty reports whether the set holds no senses at all.
func (s CandidateSet) Empty() bool {
	return s.SenseCount() == 0
}

// SenseCount returns the number of senses across all categories.
func (s CandidateSet) SenseCount() int {
	n := 0
	for _, g := range s {
		n += len(g.Senses)
	}
	return n
}

// ClauseCount returns the number of clauses across all senses.
func (s CandidateSet) ClauseCount() int {
	n := 0
	for _, g := range s {
		for _, sense := range g.Senses {
			n += len(sense.Clauses)
		}
	}
	return n
}

// Scores holds the per-axis feature scores of a candidate clause, each in [0,1].
type Scores struct {
	Category      float64
	Synonyms      float64
	Brevity       float64
	SelfReference float64
}

// ScoredCandidate is a single clause with the scores it was ranked by.
type ScoredCandidate struct {
	Category string
	Synonyms []string
	Clause   string
	Scores   Scores
	Total    float64
}
