package define

import (
	"testing"

	"github.com/silverhammermba/bananagrams/internal/domain"
)

func TestFilter_Rules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		set         domain.CandidateSet
		wantSenses  int
		wantClauses int
		wantStats   FilterStats
	}{
		{
			name: "lowercase sense kept",
			set: domain.CandidateSet{{Category: "noun", Senses: []domain.Sense{
				{Synonyms: []string{"cat", "true cat"}, Clauses: []string{"feline mammal"}},
			}}},
			wantSenses:  1,
			wantClauses: 1,
		},
		{
			name: "uppercase synonym rejects whole sense",
			set: domain.CandidateSet{{Category: "noun", Senses: []domain.Sense{
				{Synonyms: []string{"Caterpillar", "cat"}, Clauses: []string{"a large tracked vehicle"}},
				{Synonyms: []string{"cat"}, Clauses: []string{"a whip"}},
			}}},
			wantSenses:  1,
			wantClauses: 1,
			wantStats:   FilterStats{ProperNouns: 1},
		},
		{
			name: "acronym rejected",
			set: domain.CandidateSet{{Category: "noun", Senses: []domain.Sense{
				{Synonyms: []string{"computed tomography", "CT"}, Clauses: []string{"a method of examining body organs"}},
			}}},
			wantStats: FilterStats{ProperNouns: 1, EmptyCategories: 1},
		},
		{
			name: "usage examples dropped",
			set: domain.CandidateSet{{Category: "noun", Senses: []domain.Sense{
				{Synonyms: []string{"guy", "cat"}, Clauses: []string{"an informal term for a youth or man", `"a nice guy"`, `"the guy's only doing it"`}},
			}}},
			wantSenses:  1,
			wantClauses: 1,
			wantStats:   FilterStats{UsageExamples: 2},
		},
		{
			name: "sense with only examples rejected",
			set: domain.CandidateSet{{Category: "verb", Senses: []domain.Sense{
				{Synonyms: []string{"cat"}, Clauses: []string{`"he catted"`}},
				{Synonyms: []string{"cat"}, Clauses: []string{"beat with a whip"}},
			}}},
			wantSenses:  1,
			wantClauses: 1,
			wantStats:   FilterStats{UsageExamples: 1, EmptySenses: 1},
		},
		{
			name: "quote inside clause kept",
			set: domain.CandidateSet{{Category: "noun", Senses: []domain.Sense{
				{Synonyms: []string{"word"}, Clauses: []string{`a unit of language, as in "cat"`}},
			}}},
			wantSenses:  1,
			wantClauses: 1,
		},
		{
			name: "non-ascii uppercase rejected",
			set: domain.CandidateSet{{Category: "noun", Senses: []domain.Sense{
				{Synonyms: []string{"Émile"}, Clauses: []string{"a name"}},
			}}},
			wantStats: FilterStats{ProperNouns: 1, EmptyCategories: 1},
		},
		{
			name: "empty set",
			set:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, stats := Filter(tt.set)
			if got.SenseCount() != tt.wantSenses {
				t.Errorf("SenseCount() = %d, want %d", got.SenseCount(), tt.wantSenses)
			}
			if got.ClauseCount() != tt.wantClauses {
				t.Errorf("ClauseCount() = %d, want %d", got.ClauseCount(), tt.wantClauses)
			}
			if stats != tt.wantStats {
				t.Errorf("stats = %+v, want %+v", stats, tt.wantStats)
			}
		})
	}
}

func TestFilter_DropsEmptyCategories(t *testing.T) {
	t.Parallel()

	set := domain.CandidateSet{
		{Category: "noun", Senses: []domain.Sense{{Synonyms: []string{"CAT"}, Clauses: []string{"a scan"}}}},
		{Category: "verb", Senses: []domain.Sense{{Synonyms: []string{"cat"}, Clauses: []string{"beat with a whip"}}}},
	}

	got, stats := Filter(set)
	if len(got) != 1 || got[0].Category != "verb" {
		t.Fatalf("expected only the verb category, got %+v", got)
	}
	if stats.EmptyCategories != 1 {
		t.Errorf("EmptyCategories = %d, want 1", stats.EmptyCategories)
	}
}

func TestFilter_Monotonic(t *testing.T) {
	t.Parallel()

	set := domain.CandidateSet{
		{Category: "noun", Senses: []domain.Sense{
			{Synonyms: []string{"cat", "true cat"}, Clauses: []string{"feline mammal", "wildcats"}},
			{Synonyms: []string{"guy", "cat"}, Clauses: []string{"an informal term", `"a nice guy"`}},
			{Synonyms: []string{"Caterpillar", "cat"}, Clauses: []string{"a tracked vehicle"}},
		}},
		{Category: "verb", Senses: []domain.Sense{
			{Synonyms: []string{"cat"}, Clauses: []string{`"only an example"`}},
		}},
	}

	got, _ := Filter(set)
	if got.SenseCount() > set.SenseCount() {
		t.Errorf("filtered senses %d > parsed senses %d", got.SenseCount(), set.SenseCount())
	}
	if got.ClauseCount() > set.ClauseCount() {
		t.Errorf("filtered clauses %d > parsed clauses %d", got.ClauseCount(), set.ClauseCount())
	}

	for _, g := range got {
		for _, s := range g.Senses {
			if hasUppercase(s.Synonyms) {
				t.Errorf("uppercase synonym survived: %v", s.Synonyms)
			}
			if len(s.Clauses) == 0 {
				t.Error("sense without clauses survived")
			}
			for _, c := range s.Clauses {
				if isUsageExample(c) {
					t.Errorf("usage example survived: %q", c)
				}
			}
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	set := domain.CandidateSet{{Category: "noun", Senses: []domain.Sense{
		{Synonyms: []string{"guy"}, Clauses: []string{"a man", `"a nice guy"`}},
	}}}

	got, _ := Filter(set)
	got[0].Senses[0].Synonyms[0] = "changed"

	if len(set[0].Senses[0].Clauses) != 2 {
		t.Errorf("input clauses modified: %q", set[0].Senses[0].Clauses)
	}
	if set[0].Senses[0].Synonyms[0] != "guy" {
		t.Errorf("input synonyms share storage with output")
	}
}
