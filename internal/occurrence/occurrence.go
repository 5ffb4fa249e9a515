// Package occurrence implements the literal-occurrence index (component B):
// for each signed literal, the set of clause ids whose clause contains it.
//
// Grounded on original_source/include/dimacs/literalOccurrenceLookup.hpp and
// its .cpp: storage is a single flat array of size 2*n+1, indexed by the
// bijection index(l) = |l| if l < 0, else n+l, with index 0 reserved as the
// out-of-range sentinel.
package occurrence

import (
	"math"

	"github.com/satkit/bce/internal/bceerr"
	"github.com/satkit/bce/internal/formula"
)

// Index is the literal-occurrence index for a formula declared over n
// variables.
type Index struct {
	n       int
	entries []map[formula.ClauseID]struct{} // entries[0] is unused (sentinel)
}

// New returns a new, empty Index sized for n declared variables. It fails if
// n exceeds the maximum number of variables the index can address.
func New(n int) (*Index, error) {
	if n < 0 {
		return nil, bceerr.New(bceerr.InvalidArgument, "number of variables must be non-negative, got %d", n)
	}
	if n > (math.MaxInt-1)/2 {
		return nil, bceerr.New(bceerr.InvalidArgument, "lookup data structure can handle at most %d variables", (math.MaxInt-1)/2)
	}
	entries := make([]map[formula.ClauseID]struct{}, 2*n+1)
	return &Index{n: n, entries: entries}, nil
}

// index maps a signed literal to its slot, or 0 (the sentinel) if the
// literal is zero or out of range.
func (idx *Index) index(l formula.Literal) int {
	if l == 0 || l.VarID() > idx.n {
		return 0
	}
	if l < 0 {
		return l.VarID()
	}
	return idx.n + int(l)
}

// Get returns the set of clause ids containing l, or nil and false if
// |l| > n.
func (idx *Index) Get(l formula.Literal) (map[formula.ClauseID]struct{}, bool) {
	i := idx.index(l)
	if i == 0 {
		return nil, false
	}
	return idx.entries[i], true
}

// Count returns the number of clauses containing l, or 0 if |l| > n.
func (idx *Index) Count(l formula.Literal) int {
	i := idx.index(l)
	if i == 0 {
		return 0
	}
	return len(idx.entries[i])
}

// Record adds cid to the occurrence set of every distinct literal in
// literals.
func (idx *Index) Record(cid formula.ClauseID, literals []formula.Literal) {
	for _, l := range literals {
		i := idx.index(l)
		if i == 0 {
			continue
		}
		if idx.entries[i] == nil {
			idx.entries[i] = make(map[formula.ClauseID]struct{}, 1)
		}
		idx.entries[i][cid] = struct{}{}
	}
}

// Forget removes cid from l's occurrence set.
func (idx *Index) Forget(cid formula.ClauseID, l formula.Literal) {
	i := idx.index(l)
	if i == 0 {
		return
	}
	delete(idx.entries[i], cid)
}

// OverlappingClauses returns the ids of every clause containing l, as a
// plain slice. It implements the overlapSource capability set used by the
// BCE/SBCE eliminators (spec.md §9): the occurrence index is one of the two
// interchangeable overlap sources, the AVL interval tree (internal/interval)
// being the other.
func (idx *Index) OverlappingClauses(l formula.Literal) []formula.ClauseID {
	set, ok := idx.Get(l)
	if !ok || len(set) == 0 {
		return nil
	}
	out := make([]formula.ClauseID, 0, len(set))
	for cid := range set {
		out = append(out, cid)
	}
	return out
}
