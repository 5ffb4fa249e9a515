// Package bce is a small façade wiring the formula model, the
// literal-occurrence index or AVL interval tree, the candidate selector,
// and the BCE/SBCE eliminators into a single preprocessing entry point —
// in the spirit of the reference solver's sat.NewDefaultSolver()
// convenience constructor.
package bce

import (
	"github.com/satkit/bce/internal/bceerr"
	"github.com/satkit/bce/internal/candidate"
	"github.com/satkit/bce/internal/eliminate"
	"github.com/satkit/bce/internal/formula"
	"github.com/satkit/bce/internal/interval"
	"github.com/satkit/bce/internal/witness"
)

// OverlapSource reports the clauses that may contain literal l:
// *occurrence.Index returns exactly the clauses containing l, while
// *interval.Tree returns every clause whose literal interval spans l, a
// superset. A Pass picks one via Config.Eliminator.
type OverlapSource interface {
	OverlappingClauses(l formula.Literal) []formula.ClauseID
}

// Eliminator selects which overlap source backs a Pass.
type Eliminator int

const (
	// LiteralOccurrence backs the pass with the formula's
	// literal-occurrence index.
	LiteralOccurrence Eliminator = iota
	// AVL backs the pass with a freshly built interval tree.
	AVL
)

// Mode selects between blocked-clause elimination and its set-blocked
// generalization.
type Mode int

const (
	// BCE checks each candidate clause for a single blocking literal.
	BCE Mode = iota
	// SBCE checks each candidate clause for a blocking set of literals.
	SBCE
)

// Config configures a Pass.
type Config struct {
	Eliminator Eliminator
	Mode       Mode

	// Selection configures which clauses are checked and in what order.
	Selection candidate.Config

	// WitnessHeuristic orders the literals (BCE) or the literals that seed
	// blocking-set combinations (SBCE) offered as candidate witnesses.
	WitnessHeuristic witness.Heuristic
	// WitnessRNGSeed seeds WitnessHeuristic when it is witness.Random. It
	// must be set iff WitnessHeuristic is witness.Random.
	WitnessRNGSeed *uint64

	// BlockingSetMinSize and BlockingSetMaxSize bound the size of
	// candidate blocking sets in SBCE mode. Both default (nil) to 1 and
	// the number of eligible literals respectively; ignored in BCE mode.
	BlockingSetMinSize *int
	BlockingSetMaxSize *int

	// MaxMatches, if non-nil, stops the pass after that many clauses have
	// been eliminated, regardless of how many candidates remain
	// (§5's "stop after k matches" driver-level cancellation knob).
	MaxMatches *int
}

// Result reports the outcome of a Pass.
type Result struct {
	// Eliminated holds, in elimination order, the ids of every clause
	// removed from the formula during the pass.
	Eliminated []formula.ClauseID
}

// Preprocess runs one BCE or SBCE pass over f per cfg, removing blocked
// (or set-blocked) clauses as they are found so that later candidates see
// an up-to-date formula (§4.5's post-processing rule).
func Preprocess(f *formula.Formula, cfg Config) (*Result, error) {
	overlap, tree, err := buildOverlapSource(f, cfg.Eliminator)
	if err != nil {
		return nil, err
	}

	sel, err := candidate.New(f, overlap, cfg.Selection)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for {
		if cfg.MaxMatches != nil && len(res.Eliminated) >= *cfg.MaxMatches {
			break
		}
		cid, ok := sel.Next()
		if !ok {
			break
		}
		c, ok := f.GetClause(cid)
		if !ok {
			continue // removed by an earlier candidate's post-processing
		}

		found, err := checkCandidate(f, overlap, cid, c, cfg)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}

		lo, hi, hasBounds := c.Bounds()
		if err := f.RemoveClause(cid); err != nil {
			return nil, err
		}
		if tree != nil && hasBounds {
			tree.Remove(cid, lo, hi)
		}
		res.Eliminated = append(res.Eliminated, cid)
	}
	return res, nil
}

func checkCandidate(f *formula.Formula, overlap OverlapSource, cid formula.ClauseID, c *formula.Clause, cfg Config) (bool, error) {
	switch cfg.Mode {
	case BCE:
		gen, err := witness.NewLiteralGenerator(c.Literals(), overlap, cfg.WitnessHeuristic, cfg.WitnessRNGSeed)
		if err != nil {
			return false, err
		}
		_, found, err := eliminate.DetermineBlockingLiteral(f, overlap, cid, gen)
		return found, err
	case SBCE:
		gen, err := witness.NewSetGenerator(c.Literals(), overlap, cfg.WitnessHeuristic, cfg.WitnessRNGSeed, cfg.BlockingSetMinSize, cfg.BlockingSetMaxSize)
		if err != nil {
			return false, err
		}
		_, found, err := eliminate.DetermineBlockingSet(f, overlap, cid, gen)
		return found, err
	default:
		return false, bceerr.New(bceerr.InvalidArgument, "unknown mode %v", cfg.Mode)
	}
}

// buildOverlapSource returns the overlap source cfg.Eliminator selects. It
// also returns the interval tree itself (nil unless Eliminator is AVL) so
// Preprocess can keep it in sync with clause removals.
func buildOverlapSource(f *formula.Formula, e Eliminator) (OverlapSource, *interval.Tree, error) {
	switch e {
	case LiteralOccurrence:
		return f.LiteralOccurrence(), nil, nil
	case AVL:
		tree := interval.New()
		for cid, c := range f.GetClauses() {
			if lo, hi, ok := c.Bounds(); ok {
				tree.Insert(cid, lo, hi)
			}
		}
		return tree, tree, nil
	default:
		return nil, nil, bceerr.New(bceerr.InvalidArgument, "unknown eliminator %v", e)
	}
}
