// Package define resolves a word to its single best short definition:
// candidates from a lexical source are filtered, scored on normalized
// features and ranked by a pluggable policy.
package define

import (
	"context"
	"log/slog"

	"github.com/silverhammermba/bananagrams/internal/domain"
)

// Source looks up the candidate definitions of one word.
// An empty set means the source has no entry for the word.
type Source interface {
	Candidates(ctx context.Context, word string) (domain.CandidateSet, error)
}

// Result is the outcome of resolving one word.
type Result struct {
	Word string
	// Definition is the winning clause, or "" when nothing usable was found.
	Definition string
	Winner     *domain.ScoredCandidate
	Parsed     int // senses returned by the source
	Kept       int // senses surviving the filter
	Filter     FilterStats
	// LookupErr is the source failure, if any. A failed lookup resolves
	// exactly like a lookup without candidates.
	LookupErr error
}

// Found reports whether a definition was chosen.
func (r Result) Found() bool {
	return r.Winner != nil
}

// Define filters set and lets policy pick the winner for word.
func Define(word string, set domain.CandidateSet, policy Policy) Result {
	filtered, stats := Filter(set)
	res := Result{
		Word:   word,
		Parsed: set.SenseCount(),
		Kept:   filtered.SenseCount(),
		Filter: stats,
	}

	winner, ok := policy.Pick(word, filtered)
	if !ok {
		return res
	}
	res.Winner = &winner
	res.Definition = winner.Clause
	return res
}

// Resolver runs lookup, filter and ranking for one word at a time.
type Resolver struct {
	src    Source
	policy Policy
	log    *slog.Logger
}

// NewResolver creates a Resolver.
func NewResolver(log *slog.Logger, src Source, policy Policy) *Resolver {
	return &Resolver{
		src:    src,
		policy: policy,
		log:    log.With("component", "resolver", "policy", policy.Name()),
	}
}

// Resolve looks word up and picks its definition. It never fails: lookup
// errors are reported in Result.LookupErr and treated as "no candidates".
func (r *Resolver) Resolve(ctx context.Context, word string) Result {
	set, err := r.src.Candidates(ctx, word)
	if err != nil {
		r.log.DebugContext(ctx, "lookup failed", slog.String("word", word), slog.String("error", err.Error()))
		res := Define(word, nil, r.policy)
		res.LookupErr = err
		return res
	}

	res := Define(word, set, r.policy)
	if res.Found() {
		r.log.DebugContext(ctx, "word defined",
			slog.String("word", word),
			slog.Int("parsed", res.Parsed),
			slog.Int("kept", res.Kept),
			slog.String("category", res.Winner.Category),
			slog.Float64("score", res.Winner.Total),
		)
	} else {
		r.log.DebugContext(ctx, "no usable definition",
			slog.String("word", word),
			slog.Int("parsed", res.Parsed),
		)
	}
	return res
}
