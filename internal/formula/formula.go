package formula

import (
	"fmt"
	"sort"
	"strings"

	"github.com/satkit/bce/internal/bceerr"
	"github.com/satkit/bce/internal/occurrence"
)

// Formula is a CNF formula: a mapping from clause id to clause, together
// with the declared number of variables and the literal-occurrence index
// that is kept in lockstep with every mutation (I2).
type Formula struct {
	nVariables int
	clauses    map[ClauseID]*Clause
	occ        *occurrence.Index

	// assigned holds the variable assignments induced by single-literal
	// clauses encountered during construction (§3 Lifecycle). The core
	// treats the formula as already simplified with respect to these and
	// never revisits them; no method reads them back, and Stringify does
	// not emit them.
	assigned map[int]bool
}

// New returns a new, empty Formula declared over numVariables variables,
// with capacity hinted by numClauses.
func New(numVariables, numClauses int) (*Formula, error) {
	if numVariables < 0 || numClauses < 0 {
		return nil, bceerr.New(bceerr.InvalidArgument, "numVariables and numClauses must be non-negative")
	}
	occ, err := occurrence.New(numVariables)
	if err != nil {
		return nil, err
	}
	return &Formula{
		nVariables: numVariables,
		clauses:    make(map[ClauseID]*Clause, numClauses),
		occ:        occ,
		assigned:   make(map[int]bool),
	}, nil
}

// NVariables returns the formula's declared number of variables.
func (f *Formula) NVariables() int {
	return f.nVariables
}

// LiteralOccurrence returns the formula's literal-occurrence index.
func (f *Formula) LiteralOccurrence() *occurrence.Index {
	return f.occ
}

// AddClause builds a clause from literals and, unless it is tautological or
// reduces to a single literal, stores it under cid and records its
// occurrences. It reports whether a clause was actually stored.
//
// A single-literal clause induces a variable assignment (§3 Lifecycle) and
// is not stored; an empty clause (an empty input) is never valid and
// returns an InvalidArgument error, since it can only arise from a
// malformed caller input.
func (f *Formula) AddClause(cid ClauseID, literals []Literal) (bool, error) {
	for _, l := range literals {
		if l == 0 || l.VarID() > f.nVariables {
			return false, bceerr.New(bceerr.OutOfRange, "literal %d out of range for %d variables", l, f.nVariables)
		}
	}
	if _, exists := f.clauses[cid]; exists {
		return false, bceerr.New(bceerr.InvalidArgument, "clause id %d already in use", cid)
	}

	c, ok := newClause(literals)
	if !ok {
		return false, nil // tautology: never stored
	}
	switch c.Len() {
	case 0:
		return false, bceerr.New(bceerr.InvalidArgument, "clause %d has no literals", cid)
	case 1:
		l := c.literals[0]
		f.assigned[l.VarID()] = l.IsPositive()
		return false, nil
	default:
		f.clauses[cid] = c
		f.occ.Record(cid, c.literals)
		return true, nil
	}
}

// GetClause returns the clause stored under cid, or nil and false if no
// such clause exists.
func (f *Formula) GetClause(cid ClauseID) (*Clause, bool) {
	c, ok := f.clauses[cid]
	return c, ok
}

// GetClauses returns the formula's clause-id-to-clause mapping. Callers must
// not mutate the returned map or its clauses directly; use RemoveClause and
// RemoveLiteralFromFormula instead so the occurrence index stays consistent
// (I2).
func (f *Formula) GetClauses() map[ClauseID]*Clause {
	return f.clauses
}

// RemoveClause deletes cid's clause from the formula and from the
// occurrence index. It returns a NotFound error (recoverable as a no-op by
// the caller) if cid is not present.
func (f *Formula) RemoveClause(cid ClauseID) error {
	c, ok := f.clauses[cid]
	if !ok {
		return bceerr.New(bceerr.NotFound, "no clause with id %d", cid)
	}
	for _, l := range c.literals {
		f.occ.Forget(cid, l)
	}
	delete(f.clauses, cid)
	return nil
}

// RemoveLiteralFromFormula removes l from every clause currently containing
// it, updating the occurrence index as it goes. A clause that becomes empty
// as a result is removed from the formula entirely.
func (f *Formula) RemoveLiteralFromFormula(l Literal) {
	set, ok := f.occ.Get(l)
	if !ok || len(set) == 0 {
		return
	}
	cids := make([]ClauseID, 0, len(set))
	for cid := range set {
		cids = append(cids, cid)
	}
	for _, cid := range cids {
		c := f.clauses[cid]
		if c == nil {
			continue
		}
		c.removeLiteral(l)
		f.occ.Forget(cid, l)
		if c.Len() == 0 {
			delete(f.clauses, cid)
		}
	}
}

// Stringify reproduces the formula in DIMACS CNF text format:
//
//	p cnf n k
//	<clause>
//	...
//
// Clauses are emitted in ascending clause-id order.
func (f *Formula) Stringify() string {
	ids := make([]ClauseID, 0, len(f.clauses))
	for cid := range f.clauses {
		ids = append(ids, cid)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	sb := strings.Builder{}
	fmt.Fprintf(&sb, "p cnf %d %d\n", f.nVariables, len(ids))
	for _, cid := range ids {
		c := f.clauses[cid]
		for _, l := range c.literals {
			fmt.Fprintf(&sb, "%d ", int(l))
		}
		sb.WriteString("0\n")
	}
	return sb.String()
}
