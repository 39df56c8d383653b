package define

import (
	"math"
	"testing"

	"github.com/silverhammermba/bananagrams/internal/domain"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		v      int
		r      Range
		invert bool
		want   float64
	}{
		{name: "degenerate range scores one", v: 5, r: Range{Min: 5, Max: 5}, want: 1.0},
		{name: "degenerate range inverted scores one", v: 5, r: Range{Min: 5, Max: 5}, invert: true, want: 1.0},
		{name: "minimum", v: 2, r: Range{Min: 2, Max: 6}, want: 0.0},
		{name: "maximum", v: 6, r: Range{Min: 2, Max: 6}, want: 1.0},
		{name: "middle", v: 4, r: Range{Min: 2, Max: 6}, want: 0.5},
		{name: "inverted minimum", v: 2, r: Range{Min: 2, Max: 6}, invert: true, want: 1.0},
		{name: "inverted maximum", v: 6, r: Range{Min: 2, Max: 6}, invert: true, want: 0.0},
		{name: "inverted quarter", v: 3, r: Range{Min: 2, Max: 6}, invert: true, want: 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize(tt.v, tt.r, tt.invert)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Normalize(%d, %+v, %v) = %v, want %v", tt.v, tt.r, tt.invert, got, tt.want)
			}
		})
	}
}

func TestComputeBounds(t *testing.T) {
	t.Parallel()

	set := domain.CandidateSet{
		{Category: "noun", Senses: []domain.Sense{
			{Synonyms: []string{"cat", "true cat"}, Clauses: []string{"feline mammal", "wildcats"}},
			{Synonyms: []string{"guy", "cat", "hombre", "bozo"}, Clauses: []string{"an informal term"}},
		}},
		{Category: "verb", Senses: []domain.Sense{
			{Synonyms: []string{"cat"}, Clauses: []string{"beat"}},
		}},
	}

	b := ComputeBounds(set)
	if b.CategorySize != (Range{Min: 1, Max: 2}) {
		t.Errorf("CategorySize = %+v, want {1 2}", b.CategorySize)
	}
	if b.SynonymCount != (Range{Min: 1, Max: 4}) {
		t.Errorf("SynonymCount = %+v, want {1 4}", b.SynonymCount)
	}
	if b.ClauseLength != (Range{Min: 4, Max: 16}) {
		t.Errorf("ClauseLength = %+v, want {4 16}", b.ClauseLength)
	}
}

func TestComputeBounds_CountsRunes(t *testing.T) {
	t.Parallel()

	set := domain.CandidateSet{{Category: "noun", Senses: []domain.Sense{
		{Synonyms: []string{"café"}, Clauses: []string{"café", "tea"}},
	}}}

	b := ComputeBounds(set)
	if b.ClauseLength != (Range{Min: 3, Max: 4}) {
		t.Errorf("ClauseLength = %+v, want {3 4}", b.ClauseLength)
	}
}

func TestComputeBounds_SingleCandidateIsDegenerate(t *testing.T) {
	t.Parallel()

	set := domain.CandidateSet{{Category: "noun", Senses: []domain.Sense{
		{Synonyms: []string{"cat"}, Clauses: []string{"a whip"}},
	}}}

	b := ComputeBounds(set)
	for name, r := range map[string]Range{
		"category": b.CategorySize,
		"synonyms": b.SynonymCount,
		"clauses":  b.ClauseLength,
	} {
		if r.Min != r.Max {
			t.Errorf("%s range %+v is not degenerate", name, r)
		}
		if Normalize(r.Min, r, false) != 1.0 || Normalize(r.Min, r, true) != 1.0 {
			t.Errorf("%s: degenerate range must score 1.0", name)
		}
	}
}

func TestComputeBounds_Empty(t *testing.T) {
	t.Parallel()

	if b := ComputeBounds(nil); b != (Bounds{}) {
		t.Errorf("ComputeBounds(nil) = %+v, want zero", b)
	}
}
