package eliminate

import (
	"testing"

	"github.com/satkit/bce/internal/formula"
	"github.com/satkit/bce/internal/witness"
)

func mustFormula(t *testing.T, n int, clauses [][]formula.Literal) *formula.Formula {
	t.Helper()
	f, err := formula.New(n, len(clauses))
	if err != nil {
		t.Fatal(err)
	}
	for cid, lits := range clauses {
		if _, err := f.AddClause(formula.ClauseID(cid), lits); err != nil {
			t.Fatal(err)
		}
	}
	return f
}

// S3: C2 is blocked by literal -2.
func TestDetermineBlockingLiteralPositive(t *testing.T) {
	f := mustFormula(t, 3, [][]formula.Literal{
		{1, 2, -3}, // C0
		{-1, 2, 3}, // C1
		{1, -2, 3}, // C2
	})
	c, ok := f.GetClause(2)
	if !ok {
		t.Fatal("C2 should be stored")
	}
	gen, err := witness.NewLiteralGenerator(c.Literals(), f.LiteralOccurrence(), witness.Sequential, nil)
	if err != nil {
		t.Fatal(err)
	}
	l, found, err := DetermineBlockingLiteral(f, f.LiteralOccurrence(), 2, gen)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("C2 should be blocked")
	}
	if l != -2 {
		t.Fatalf("blocking literal = %d, want -2", l)
	}
}

// S4: C2 has no blocking literal.
func TestDetermineBlockingLiteralNegative(t *testing.T) {
	f := mustFormula(t, 3, [][]formula.Literal{
		{1, 2, -3}, // C0
		{-1, 2, 3}, // C1
		{1, 2, 3},  // C2
	})
	c, ok := f.GetClause(2)
	if !ok {
		t.Fatal("C2 should be stored")
	}
	gen, err := witness.NewLiteralGenerator(c.Literals(), f.LiteralOccurrence(), witness.Sequential, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, found, err := DetermineBlockingLiteral(f, f.LiteralOccurrence(), 2, gen)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("C2 should not be blocked")
	}
}

func TestDetermineBlockingLiteralUnknownClause(t *testing.T) {
	f := mustFormula(t, 2, nil)
	occ := f.LiteralOccurrence()
	gen, err := witness.NewLiteralGenerator([]formula.Literal{1, 2}, occ, witness.Sequential, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := DetermineBlockingLiteral(f, occ, 99, gen); err == nil {
		t.Fatal("want error for an unknown clause id")
	}
}

// S5: C3 is set-blocked by {-1, -2, -5} under size bounds {3, 3}.
func TestDetermineBlockingSetPositive(t *testing.T) {
	f := mustFormula(t, 5, [][]formula.Literal{
		{1, 2, 3, 4, 5},    // C0
		{1, -2, 3},         // C1
		{-1, 2, 3},         // C2
		{-1, -2, -3, 4, -5}, // C3
	})
	c, ok := f.GetClause(3)
	if !ok {
		t.Fatal("C3 should be stored")
	}
	min, max := 3, 3
	gen, err := witness.NewSetGenerator(c.Literals(), f.LiteralOccurrence(), witness.Sequential, nil, &min, &max)
	if err != nil {
		t.Fatal(err)
	}
	set, found, err := DetermineBlockingSet(f, f.LiteralOccurrence(), 3, gen)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("C3 should be set-blocked")
	}
	want := map[formula.Literal]bool{-1: true, -2: true, -5: true}
	if len(set) != len(want) {
		t.Fatalf("blocking set = %v, want %v", set, want)
	}
	for _, l := range set {
		if !want[l] {
			t.Fatalf("blocking set = %v, want %v", set, want)
		}
	}
}

func TestDetermineBlockingSetRequiresTwoLiterals(t *testing.T) {
	f := mustFormula(t, 2, nil)
	occ := f.LiteralOccurrence()
	if _, err := witness.NewSetGenerator([]formula.Literal{1}, occ, witness.Sequential, nil, nil, nil); err == nil {
		t.Fatal("want error building a set generator over a unit clause")
	}
}
