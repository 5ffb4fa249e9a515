// Package formula implements the clause/formula data model (component A):
// variables, literals, clauses, and the whole-formula invariants I1-I4
// described in the preprocessor specification.
package formula

import "fmt"

// Literal is a signed, nonzero DIMACS literal. Its absolute value is a
// variable id in [1, n]; its sign is the literal's polarity. Unlike the
// reference CDCL solver this package is descended from (which packs a
// literal as variable*2+polarity for dense array indexing), Literal here is
// the DIMACS integer itself, because both the occurrence index (§4.1) and
// the interval tree (§4.2) key directly off signed literal values and their
// midpoints.
type Literal int

// VarID returns the variable id of l, always positive.
func (l Literal) VarID() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// IsPositive returns true if l is the positive literal of its variable.
func (l Literal) IsPositive() bool {
	return l > 0
}

// Opposite returns the literal of the same variable with opposite polarity.
func (l Literal) Opposite() Literal {
	return -l
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", int(l))
}

// ClauseID is a stable, non-negative identifier for a stored clause, chosen
// by the caller of Formula.AddClause. AddClause rejects an id only while a
// clause is stored under it, so an id freed by a deletion can be used
// again; gaps from deletions are permitted (I4).
type ClauseID int
