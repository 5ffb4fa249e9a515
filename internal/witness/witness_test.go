package witness

import (
	"testing"

	"github.com/satkit/bce/internal/formula"
	"github.com/satkit/bce/internal/occurrence"
)

func buildOccurrence(t *testing.T, n int, clauses [][]formula.Literal) *occurrence.Index {
	t.Helper()
	occ, err := occurrence.New(n)
	if err != nil {
		t.Fatal(err)
	}
	for cid, lits := range clauses {
		occ.Record(formula.ClauseID(cid), lits)
	}
	return occ
}

func drainLiterals(g *LiteralGenerator) []formula.Literal {
	var out []formula.Literal
	for {
		l, ok := g.Next()
		if !ok {
			break
		}
		out = append(out, l)
	}
	return out
}

func TestLiteralGeneratorSequential(t *testing.T) {
	occ := buildOccurrence(t, 4, [][]formula.Literal{{1, -2, 3}})
	g, err := NewLiteralGenerator([]formula.Literal{-2, 1, 3}, occ, Sequential, nil)
	if err != nil {
		t.Fatal(err)
	}
	got := drainLiterals(g)
	want := []formula.Literal{-2, 1, 3}
	assertLiterals(t, got, want)
}

func TestLiteralGeneratorMinMaxClauseOverlap(t *testing.T) {
	// count(-(-2)) = count(2) = 2; count(-1) = 1; count(-3) = 0.
	occ := buildOccurrence(t, 4, [][]formula.Literal{
		{2, 4}, {2, -4}, {-1, 4},
	})
	gMin, err := NewLiteralGenerator([]formula.Literal{-2, 1, 3}, occ, MinClauseOverlap, nil)
	if err != nil {
		t.Fatal(err)
	}
	assertLiterals(t, drainLiterals(gMin), []formula.Literal{3, 1, -2})

	gMax, err := NewLiteralGenerator([]formula.Literal{-2, 1, 3}, occ, MaxClauseOverlap, nil)
	if err != nil {
		t.Fatal(err)
	}
	assertLiterals(t, drainLiterals(gMax), []formula.Literal{-2, 1, 3})
}

func TestLiteralGeneratorRandomRequiresSeed(t *testing.T) {
	occ := buildOccurrence(t, 2, nil)
	if _, err := NewLiteralGenerator([]formula.Literal{1, 2}, occ, Random, nil); err == nil {
		t.Fatal("want error when Random has no seed")
	}
}

func TestSetGeneratorRejectsShortClause(t *testing.T) {
	occ := buildOccurrence(t, 2, [][]formula.Literal{{1}})
	if _, err := NewSetGenerator([]formula.Literal{1}, occ, Sequential, nil, nil, nil); err == nil {
		t.Fatal("want error for a clause with fewer than 2 literals")
	}
}

func TestSetGeneratorFiltersZeroOccurrenceLiterals(t *testing.T) {
	// count(-1) = 1, count(-2) = 0, count(-3) = 1: literal 2 must be
	// filtered out before enumeration.
	occ := buildOccurrence(t, 4, [][]formula.Literal{{-1, 4}, {-3, 4}})
	g, err := NewSetGenerator([]formula.Literal{1, 2, 3}, occ, Sequential, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	var sizes []int
	for {
		set, ok := g.Next()
		if !ok {
			break
		}
		sizes = append(sizes, len(set))
		for _, l := range set {
			if l == 2 {
				t.Fatalf("literal 2 has no occurrences of its negation and must be filtered out, got %v", set)
			}
		}
	}
	if len(sizes) == 0 {
		t.Fatal("expected at least one candidate set")
	}
}

// P7: the blocking-set generator enumerates each qualifying subset exactly
// once, in non-decreasing size.
func TestSetGeneratorEnumeratesAllSizesOnce(t *testing.T) {
	occ := buildOccurrence(t, 5, [][]formula.Literal{{-1}, {-2}, {-3}, {-4}})
	g, err := NewSetGenerator([]formula.Literal{1, 2, 3, 4}, occ, Sequential, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	seen := map[string]bool{}
	lastSize := 0
	count := 0
	for {
		set, ok := g.Next()
		if !ok {
			break
		}
		count++
		if len(set) < lastSize {
			t.Fatalf("set size decreased: %v after a size-%d set", set, lastSize)
		}
		lastSize = len(set)
		key := literalKey(set)
		if seen[key] {
			t.Fatalf("set %v emitted more than once", set)
		}
		seen[key] = true
	}
	// Sum_{k=1}^{4} C(4,k) = 15.
	if count != 15 {
		t.Fatalf("emitted %d sets, want 15", count)
	}
}

func TestSetGeneratorSizeBounds(t *testing.T) {
	occ := buildOccurrence(t, 5, [][]formula.Literal{{-1}, {-2}, {-3}, {-4}})
	min, max := 2, 2
	g, err := NewSetGenerator([]formula.Literal{1, 2, 3, 4}, occ, Sequential, nil, &min, &max)
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for {
		set, ok := g.Next()
		if !ok {
			break
		}
		if len(set) != 2 {
			t.Fatalf("set %v has size %d, want 2", set, len(set))
		}
		count++
	}
	if count != 6 { // C(4,2)
		t.Fatalf("emitted %d size-2 sets, want 6", count)
	}
}

func TestSetGeneratorMinExceedsMax(t *testing.T) {
	occ := buildOccurrence(t, 3, [][]formula.Literal{{-1}, {-2}})
	min, max := 2, 1
	if _, err := NewSetGenerator([]formula.Literal{1, 2}, occ, Sequential, nil, &min, &max); err == nil {
		t.Fatal("want error when min_size > max_size")
	}
}

func TestSetGeneratorMaxExceedsFilteredLiterals(t *testing.T) {
	occ := buildOccurrence(t, 3, [][]formula.Literal{{-1}, {-2}})
	max := 5
	if _, err := NewSetGenerator([]formula.Literal{1, 2}, occ, Sequential, nil, nil, &max); err == nil {
		t.Fatal("want error when max_size exceeds the number of filtered literals")
	}
}

func literalKey(set []formula.Literal) string {
	var out []byte
	for _, l := range set {
		out = append(out, []byte(l.String())...)
		out = append(out, ',')
	}
	return string(out)
}

func assertLiterals(t *testing.T, got, want []formula.Literal) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
