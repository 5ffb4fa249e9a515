// Package witness implements the blocking-literal and blocking-set
// generators (component E): lazy, non-restartable sequences of candidate
// witnesses within a clause, driven by the same four ordering heuristics.
package witness

import (
	"math/rand/v2"

	"github.com/satkit/bce/internal/bceerr"
	"github.com/satkit/bce/internal/formula"
	"github.com/satkit/bce/internal/priority"
)

// overlapSource is the capability set shared with the candidate selector
// and the eliminators: the literal-occurrence index reports the clauses
// that contain literal l, the AVL interval tree every clause whose literal
// interval spans l (a superset).
type overlapSource interface {
	OverlappingClauses(l formula.Literal) []formula.ClauseID
}

// Heuristic selects the order in which literals are offered as witness
// candidates.
type Heuristic int

const (
	// Sequential emits literals in the clause's given order.
	Sequential Heuristic = iota
	// Random emits literals in an order shuffled once at init.
	Random
	// MinClauseOverlap emits literals ascending by the number of clauses
	// the overlap source reports for ¬l (count(¬l) in F for the occurrence
	// index).
	MinClauseOverlap
	// MaxClauseOverlap is the descending counterpart.
	MaxClauseOverlap
)

// orderLiterals returns literals reordered per h, never mutating literals
// itself. seed must be non-nil iff h is Random.
func orderLiterals(literals []formula.Literal, overlap overlapSource, h Heuristic, seed *uint64) ([]formula.Literal, error) {
	if h == Random && seed == nil {
		return nil, bceerr.New(bceerr.InvalidArgument, "rng seed is required for the random heuristic")
	}
	if h != Random && seed != nil {
		return nil, bceerr.New(bceerr.InvalidArgument, "rng seed is only valid for the random heuristic")
	}

	switch h {
	case Sequential:
		out := make([]formula.Literal, len(literals))
		copy(out, literals)
		return out, nil
	case Random:
		out := make([]formula.Literal, len(literals))
		copy(out, literals)
		rng := rand.New(rand.NewPCG(*seed, *seed))
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out, nil
	case MinClauseOverlap, MaxClauseOverlap:
		keys := make([]float64, len(literals))
		for i, l := range literals {
			keys[i] = float64(len(overlap.OverlappingClauses(l.Opposite())))
			if h == MaxClauseOverlap {
				keys[i] = -keys[i]
			}
		}
		perm := priority.Order(keys)
		out := make([]formula.Literal, len(literals))
		for i, p := range perm {
			out[i] = literals[p]
		}
		return out, nil
	default:
		return nil, bceerr.New(bceerr.InvalidArgument, "unknown heuristic %v", h)
	}
}

// LiteralGenerator is a lazy, non-restartable sequence of a clause's
// literals, ordered per a Heuristic.
type LiteralGenerator struct {
	literals []formula.Literal
	pos      int
}

// NewLiteralGenerator builds a LiteralGenerator over clauseLiterals.
func NewLiteralGenerator(clauseLiterals []formula.Literal, overlap overlapSource, h Heuristic, seed *uint64) (*LiteralGenerator, error) {
	ordered, err := orderLiterals(clauseLiterals, overlap, h, seed)
	if err != nil {
		return nil, err
	}
	return &LiteralGenerator{literals: ordered}, nil
}

// Next returns the next candidate literal, or false once exhausted.
func (g *LiteralGenerator) Next() (formula.Literal, bool) {
	if g.pos >= len(g.literals) {
		return 0, false
	}
	l := g.literals[g.pos]
	g.pos++
	return l, true
}

// SetGenerator is a lazy, non-restartable sequence of a clause's literal
// subsets, sized within [minSize, maxSize] and emitted in non-decreasing
// size, lexicographic order within a size.
type SetGenerator struct {
	literals         []formula.Literal
	minSize, maxSize int

	k           int
	idx         []int
	initialized bool
	done        bool
}

// NewSetGenerator builds a SetGenerator over clauseLiterals. minSize and
// maxSize default to 1 and len(filtered literals) respectively when nil.
// It fails fast (InvalidArgument) if clauseLiterals has fewer than two
// literals, if maxSize exceeds the number of literals for whose negation
// the overlap source reports at least one clause, or if minSize > maxSize.
func NewSetGenerator(clauseLiterals []formula.Literal, overlap overlapSource, h Heuristic, seed *uint64, minSize, maxSize *int) (*SetGenerator, error) {
	if len(clauseLiterals) < 2 {
		return nil, bceerr.New(bceerr.InvalidArgument, "blocking sets require at least 2 literals, got %d", len(clauseLiterals))
	}

	filtered := make([]formula.Literal, 0, len(clauseLiterals))
	for _, l := range clauseLiterals {
		if len(overlap.OverlappingClauses(l.Opposite())) > 0 {
			filtered = append(filtered, l)
		}
	}

	ordered, err := orderLiterals(filtered, overlap, h, seed)
	if err != nil {
		return nil, err
	}

	min, max := 1, len(ordered)
	if minSize != nil {
		min = *minSize
	}
	if maxSize != nil {
		max = *maxSize
	}
	if min < 1 {
		return nil, bceerr.New(bceerr.InvalidArgument, "min_size must be at least 1, got %d", min)
	}
	if min > max {
		return nil, bceerr.New(bceerr.InvalidArgument, "min_size %d exceeds max_size %d", min, max)
	}
	if max > len(ordered) {
		return nil, bceerr.New(bceerr.InvalidArgument, "max_size %d exceeds %d filtered literals", max, len(ordered))
	}

	return &SetGenerator{literals: ordered, minSize: min, maxSize: max}, nil
}

// Next returns the next candidate blocking set, or false once exhausted.
func (g *SetGenerator) Next() ([]formula.Literal, bool) {
	if g.done {
		return nil, false
	}
	if !g.initialized {
		g.initialized = true
		g.k = g.minSize
		if !g.resetIdx() {
			g.done = true
			return nil, false
		}
	} else if !g.advance() {
		g.done = true
		return nil, false
	}

	out := make([]formula.Literal, g.k)
	for i, id := range g.idx {
		out[i] = g.literals[id]
	}
	return out, true
}

// resetIdx sets idx to the first combination of size k, skipping any size
// for which no combination exists by advancing k up to maxSize.
func (g *SetGenerator) resetIdx() bool {
	for g.k <= g.maxSize {
		if g.k <= len(g.literals) {
			g.idx = make([]int, g.k)
			for i := range g.idx {
				g.idx[i] = i
			}
			return true
		}
		g.k++
	}
	return false
}

// advance moves to the next combination of the current size, rolling over
// to the first combination of the next size (and resetIdx-ing) once the
// current size is exhausted.
func (g *SetGenerator) advance() bool {
	if nextCombination(g.idx, len(g.literals)) {
		return true
	}
	g.k++
	return g.resetIdx()
}

// nextCombination advances idx (a strictly increasing slice of indices
// into [0,n)) to the lexicographically next combination of the same size,
// reporting false once idx was already the last such combination.
func nextCombination(idx []int, n int) bool {
	k := len(idx)
	i := k - 1
	for i >= 0 && idx[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < k; j++ {
		idx[j] = idx[j-1] + 1
	}
	return true
}
