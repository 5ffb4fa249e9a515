// Package eliminate implements the blocked-clause and set-blocked-clause
// eliminators (components F and G): the blocking-condition checks that
// drive a preprocessing pass.
package eliminate

import (
	"github.com/satkit/bce/internal/bceerr"
	"github.com/satkit/bce/internal/formula"
	"github.com/satkit/bce/internal/resetset"
	"github.com/satkit/bce/internal/witness"
)

// overlapSource is the capability set shared with the candidate selector
// and the blocking-literal/blocking-set generators. The literal-occurrence
// index reports the clauses that contain literal l; the AVL interval tree
// reports every clause whose literal interval spans l, a superset. The
// checks below keep only the reported clauses that contain the literal.
type overlapSource interface {
	OverlappingClauses(l formula.Literal) []formula.ClauseID
}

// DetermineBlockingLiteral implements determine_blocking_literal (§4.5): it
// asks gen for candidate literals of F's clause cid, in turn, and returns
// the first one that blocks C, or ok=false if the generator is exhausted
// without finding one. It fails only if cid does not name a clause in F.
func DetermineBlockingLiteral(f *formula.Formula, overlap overlapSource, cid formula.ClauseID, gen *witness.LiteralGenerator) (formula.Literal, bool, error) {
	c, ok := f.GetClause(cid)
	if !ok {
		return 0, false, bceerr.New(bceerr.NotFound, "no clause with id %d", cid)
	}

	for {
		l, ok := gen.Next()
		if !ok {
			return 0, false, nil
		}

		var resolutionEnv []formula.ClauseID
		for _, cidPrime := range overlap.OverlappingClauses(l.Opposite()) {
			if cPrime, ok := f.GetClause(cidPrime); ok && cPrime.Contains(l.Opposite()) {
				resolutionEnv = append(resolutionEnv, cidPrime)
			}
		}
		if len(resolutionEnv) == 0 {
			continue
		}

		diff := literalSet(c.Literals(), l)
		if allResolventsTautological(f, resolutionEnv, l, diff) {
			return l, true, nil
		}
	}
}

// DetermineBlockingSet implements determine_blocking_set (§4.6): it asks
// gen for candidate blocking sets of F's clause cid, in turn, and returns
// the first one that set-blocks C, or ok=false if the generator is
// exhausted without finding one.
func DetermineBlockingSet(f *formula.Formula, overlap overlapSource, cid formula.ClauseID, gen *witness.SetGenerator) ([]formula.Literal, bool, error) {
	c, ok := f.GetClause(cid)
	if !ok {
		return nil, false, bceerr.New(bceerr.NotFound, "no clause with id %d", cid)
	}

	for {
		set, ok := gen.Next()
		if !ok {
			return nil, false, nil
		}

		inL := literalMembership(set)
		diff := literalSetMinus(c.Literals(), inL)

		env := resetset.New()
		var envIDs []formula.ClauseID
		for _, l := range set {
			for _, cidPrime := range overlap.OverlappingClauses(l.Opposite()) {
				if cPrime, ok := f.GetClause(cidPrime); !ok || !cPrime.Contains(l.Opposite()) {
					continue
				}
				if !env.Contains(cidPrime) {
					env.Add(cidPrime)
					envIDs = append(envIDs, cidPrime)
				}
			}
		}
		if len(envIDs) == 0 {
			continue
		}

		if allSetResolventsTautological(f, envIDs, inL, diff) {
			return set, true, nil
		}
	}
}

// literalSet returns the literals of c other than exclude, as a lookup set.
func literalSet(literals []formula.Literal, exclude formula.Literal) map[formula.Literal]struct{} {
	out := make(map[formula.Literal]struct{}, len(literals))
	for _, l := range literals {
		if l != exclude {
			out[l] = struct{}{}
		}
	}
	return out
}

// literalMembership returns a lookup set for set.
func literalMembership(set []formula.Literal) map[formula.Literal]struct{} {
	out := make(map[formula.Literal]struct{}, len(set))
	for _, l := range set {
		out[l] = struct{}{}
	}
	return out
}

// literalSetMinus returns the literals of literals that are not in inSet.
func literalSetMinus(literals []formula.Literal, inSet map[formula.Literal]struct{}) map[formula.Literal]struct{} {
	out := make(map[formula.Literal]struct{}, len(literals))
	for _, l := range literals {
		if _, excluded := inSet[l]; !excluded {
			out[l] = struct{}{}
		}
	}
	return out
}

// allResolventsTautological checks, for every clause in resolutionEnv,
// that some literal k of that clause has ¬k ∈ diff, excluding k == l
// itself (§4.5 step 3d). A dangling clause id in the overlap source (one
// removed from F but not yet forgotten by the index) is treated as
// vacuously satisfied.
func allResolventsTautological(f *formula.Formula, resolutionEnv []formula.ClauseID, l formula.Literal, diff map[formula.Literal]struct{}) bool {
	for _, cidPrime := range resolutionEnv {
		cPrime, ok := f.GetClause(cidPrime)
		if !ok {
			continue
		}
		found := false
		for _, k := range cPrime.Literals() {
			if k == l {
				continue
			}
			if _, ok := diff[k.Opposite()]; ok {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// allSetResolventsTautological checks, for every clause id in env, that
// some literal k of that clause satisfies ¬k ∈ diff and k ∉ L (§4.6 step
// 3c).
func allSetResolventsTautological(f *formula.Formula, env []formula.ClauseID, inL map[formula.Literal]struct{}, diff map[formula.Literal]struct{}) bool {
	for _, cidPrime := range env {
		cPrime, ok := f.GetClause(cidPrime)
		if !ok {
			continue
		}
		found := false
		for _, k := range cPrime.Literals() {
			if _, excluded := inL[k]; excluded {
				continue
			}
			if _, ok := diff[k.Opposite()]; ok {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
