// Package candidate implements the candidate selector (component D): a
// lazy, non-restartable sequence of clause ids to check for blocking,
// ordered by a configurable heuristic.
package candidate

import (
	"math/rand/v2"
	"sort"

	"github.com/satkit/bce/internal/bceerr"
	"github.com/satkit/bce/internal/formula"
	"github.com/satkit/bce/internal/priority"
	"github.com/satkit/bce/internal/queue"
)

// Heuristic selects the order in which the selector emits candidates.
type Heuristic int

const (
	// Sequential emits candidates in ascending clause-id order.
	Sequential Heuristic = iota
	// Random emits candidates in an order shuffled once at init.
	Random
	// MinOverlap emits candidates ascending by the size of the union of
	// occurrences of the negation of each of the clause's literals.
	MinOverlap
	// MaxOverlap is the descending counterpart of MinOverlap.
	MaxOverlap
	// MinLength emits candidates ascending by clause length.
	MinLength
	// MaxLength is the descending counterpart of MinLength.
	MaxLength
)

func (h Heuristic) String() string {
	switch h {
	case Sequential:
		return "sequential"
	case Random:
		return "random"
	case MinOverlap:
		return "minOverlap"
	case MaxOverlap:
		return "maxOverlap"
	case MinLength:
		return "minLength"
	case MaxLength:
		return "maxLength"
	default:
		return "unknown"
	}
}

// overlapSource is the capability set shared with the eliminators
// (spec.md §9): the literal-occurrence index reports the clauses that
// contain literal l, the AVL interval tree every clause whose literal
// interval spans l (a superset). The overlap metric counts whatever the
// given source reports.
type overlapSource interface {
	OverlappingClauses(l formula.Literal) []formula.ClauseID
}

// Config configures a Selector.
type Config struct {
	// NumRequested upper-bounds the number of candidates emitted; it is
	// capped internally at the number of (post-filter) clauses.
	NumRequested int
	// Heuristic selects the emission order.
	Heuristic Heuristic
	// RNGSeed seeds the shuffle used by the Random heuristic. It must be
	// set iff Heuristic is Random.
	RNGSeed *uint64
	// MaxClauseLength, if set, filters out clauses with more literals than
	// this upfront.
	MaxClauseLength *int
}

// Selector is a lazy, non-restartable sequence of clause ids.
type Selector struct {
	pending        *queue.Queue[formula.ClauseID]
	numGeneratable int
}

// New builds a Selector over f's clauses (using overlap to compute the
// overlap metric, when needed) per cfg.
func New(f *formula.Formula, overlap overlapSource, cfg Config) (*Selector, error) {
	if cfg.NumRequested < 0 {
		return nil, bceerr.New(bceerr.InvalidArgument, "num_requested must be non-negative, got %d", cfg.NumRequested)
	}
	if cfg.Heuristic == Random && cfg.RNGSeed == nil {
		return nil, bceerr.New(bceerr.InvalidArgument, "rng seed is required for the random heuristic")
	}
	if cfg.Heuristic != Random && cfg.RNGSeed != nil {
		return nil, bceerr.New(bceerr.InvalidArgument, "rng seed is only valid for the random heuristic")
	}

	clauses := f.GetClauses()
	ids := make([]formula.ClauseID, 0, len(clauses))
	for cid, c := range clauses {
		if cfg.MaxClauseLength != nil && c.Len() > *cfg.MaxClauseLength {
			continue
		}
		ids = append(ids, cid)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	numGeneratable := cfg.NumRequested
	if numGeneratable > len(ids) {
		numGeneratable = len(ids)
	}

	ordered, err := order(f, overlap, cfg.Heuristic, cfg.RNGSeed, ids)
	if err != nil {
		return nil, err
	}
	ordered = ordered[:numGeneratable]

	pending := queue.New[formula.ClauseID](numGeneratable)
	for _, cid := range ordered {
		pending.Push(cid)
	}

	return &Selector{pending: pending, numGeneratable: numGeneratable}, nil
}

// Next returns the next candidate clause id, or false once NumGeneratable
// candidates have been emitted.
func (s *Selector) Next() (formula.ClauseID, bool) {
	if s.pending.IsEmpty() {
		return 0, false
	}
	return s.pending.Pop(), true
}

// NumGeneratable returns min(num_requested, |filtered clauses|), the total
// number of candidates this Selector will ever emit.
func (s *Selector) NumGeneratable() int {
	return s.numGeneratable
}

func order(f *formula.Formula, overlap overlapSource, h Heuristic, seed *uint64, ids []formula.ClauseID) ([]formula.ClauseID, error) {
	switch h {
	case Sequential:
		return ids, nil
	case Random:
		shuffled := make([]formula.ClauseID, len(ids))
		copy(shuffled, ids)
		rng := rand.New(rand.NewPCG(*seed, *seed))
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		return shuffled, nil
	case MinOverlap, MaxOverlap:
		keys := make([]float64, len(ids))
		for i, cid := range ids {
			keys[i] = float64(overlapCount(f, overlap, cid))
			if h == MaxOverlap {
				keys[i] = -keys[i]
			}
		}
		return permute(ids, keys), nil
	case MinLength, MaxLength:
		keys := make([]float64, len(ids))
		for i, cid := range ids {
			c, _ := f.GetClause(cid)
			keys[i] = float64(c.Len())
			if h == MaxLength {
				keys[i] = -keys[i]
			}
		}
		return permute(ids, keys), nil
	default:
		return nil, bceerr.New(bceerr.InvalidArgument, "unknown heuristic %v", h)
	}
}

// permute reorders ids ascending by the matching entry in keys, using the
// same heap-driven ordering as the blocking-literal generator.
func permute(ids []formula.ClauseID, keys []float64) []formula.ClauseID {
	perm := priority.Order(keys)
	out := make([]formula.ClauseID, len(ids))
	for i, p := range perm {
		out[i] = ids[p]
	}
	return out
}

// overlapCount returns |union{ overlap.OverlappingClauses(-l) : l in
// clause } |, the metric the MinOverlap/MaxOverlap heuristics sort by.
func overlapCount(f *formula.Formula, overlap overlapSource, cid formula.ClauseID) int {
	c, ok := f.GetClause(cid)
	if !ok {
		return 0
	}
	seen := make(map[formula.ClauseID]struct{})
	for _, l := range c.Literals() {
		for _, other := range overlap.OverlappingClauses(l.Opposite()) {
			seen[other] = struct{}{}
		}
	}
	return len(seen)
}
