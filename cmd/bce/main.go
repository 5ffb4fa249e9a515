// Command bce is the benchmark front-end for the blocked/set-blocked
// clause elimination preprocessor: it loads a DIMACS CNF instance, runs
// one preprocessing pass over it, and writes the result back out.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/satkit/bce"
	"github.com/satkit/bce/internal/bceerr"
	"github.com/satkit/bce/internal/candidate"
	"github.com/satkit/bce/internal/dimacsio"
	"github.com/satkit/bce/internal/witness"
)

var (
	flagCNF = flag.String(
		"cnf",
		"",
		"path to the input DIMACS CNF file (required)",
	)
	flagEliminator = flag.String(
		"blockedClauseEliminator",
		"literalOccurrence",
		"overlap source to use: literalOccurrence or avl",
	)
	flagClauseHeuristic = flag.String(
		"clauseSelectionHeuristic",
		"sequential",
		"candidate clause order: sequential, random, minOverlap, maxOverlap, minLength, or maxLength",
	)
	flagClauseSeed = flag.Int64(
		"clauseSelectionRngSeed",
		0,
		"rng seed for clauseSelectionHeuristic=random",
	)
	flagLiteralHeuristic = flag.String(
		"blockedClauseLiteralCandiateSelectionHeuristic",
		"sequential",
		"witness order: sequential, random, minClauseOverlap, or maxClauseOverlap",
	)
	flagLiteralSeed = flag.Int64(
		"blockedClauseLiteralCandiateSelectionRngSeed",
		0,
		"rng seed for blockedClauseLiteralCandiateSelectionHeuristic=random",
	)
	flagSetMin = flag.Int(
		"blockingSetMinimumSize",
		0,
		"minimum blocking-set size; setting this or -blockingSetMaximumSize switches to SBCE",
	)
	flagSetMax = flag.Int(
		"blockingSetMaximumSize",
		0,
		"maximum blocking-set size; setting this or -blockingSetMinimumSize switches to SBCE",
	)
	flagNCandidates = flag.Int(
		"nCandidates",
		0,
		"upper bound on candidates checked (0 means every clause)",
	)
	flagNMatches = flag.Int(
		"nMatches",
		0,
		"stop after this many eliminations (unset means unbounded)",
	)
)

type config struct {
	cnfPath    string
	passConfig bce.Config
}

func parseCandidateHeuristic(s string) (candidate.Heuristic, error) {
	switch s {
	case "sequential":
		return candidate.Sequential, nil
	case "random":
		return candidate.Random, nil
	case "minOverlap":
		return candidate.MinOverlap, nil
	case "maxOverlap":
		return candidate.MaxOverlap, nil
	case "minLength":
		return candidate.MinLength, nil
	case "maxLength":
		return candidate.MaxLength, nil
	default:
		return 0, bceerr.New(bceerr.InvalidArgument, "unknown clauseSelectionHeuristic %q", s)
	}
}

func parseWitnessHeuristic(s string) (witness.Heuristic, error) {
	switch s {
	case "sequential":
		return witness.Sequential, nil
	case "random":
		return witness.Random, nil
	case "minClauseOverlap":
		return witness.MinClauseOverlap, nil
	case "maxClauseOverlap":
		return witness.MaxClauseOverlap, nil
	default:
		return 0, bceerr.New(bceerr.InvalidArgument, "unknown blockedClauseLiteralCandiateSelectionHeuristic %q", s)
	}
}

func parseEliminator(s string) (bce.Eliminator, error) {
	switch s {
	case "literalOccurrence":
		return bce.LiteralOccurrence, nil
	case "avl":
		return bce.AVL, nil
	default:
		return 0, bceerr.New(bceerr.InvalidArgument, "unknown blockedClauseEliminator %q", s)
	}
}

func parseConfig() (*config, error) {
	flag.Parse()

	if *flagCNF == "" {
		return nil, fmt.Errorf("missing required -cnf flag")
	}

	visited := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { visited[f.Name] = true })

	eliminator, err := parseEliminator(*flagEliminator)
	if err != nil {
		return nil, err
	}
	clauseHeuristic, err := parseCandidateHeuristic(*flagClauseHeuristic)
	if err != nil {
		return nil, err
	}
	literalHeuristic, err := parseWitnessHeuristic(*flagLiteralHeuristic)
	if err != nil {
		return nil, err
	}

	var clauseSeed *uint64
	if visited["clauseSelectionRngSeed"] {
		v := uint64(*flagClauseSeed)
		clauseSeed = &v
	}
	var literalSeed *uint64
	if visited["blockedClauseLiteralCandiateSelectionRngSeed"] {
		v := uint64(*flagLiteralSeed)
		literalSeed = &v
	}
	var setMin, setMax *int
	if visited["blockingSetMinimumSize"] {
		v := *flagSetMin
		setMin = &v
	}
	if visited["blockingSetMaximumSize"] {
		v := *flagSetMax
		setMax = &v
	}
	var maxMatches *int
	if visited["nMatches"] {
		v := *flagNMatches
		maxMatches = &v
	}

	mode := bce.BCE
	if setMin != nil || setMax != nil {
		mode = bce.SBCE
	}

	numRequested := *flagNCandidates
	if numRequested == 0 {
		numRequested = 1<<31 - 1 // effectively unbounded; capped to |F| by the selector
	}

	return &config{
		cnfPath: *flagCNF,
		passConfig: bce.Config{
			Eliminator: eliminator,
			Mode:       mode,
			Selection: candidate.Config{
				NumRequested: numRequested,
				Heuristic:    clauseHeuristic,
				RNGSeed:      clauseSeed,
			},
			WitnessHeuristic:   literalHeuristic,
			WitnessRNGSeed:     literalSeed,
			BlockingSetMinSize: setMin,
			BlockingSetMaxSize: setMax,
			MaxMatches:         maxMatches,
		},
	}, nil
}

func run(cfg *config) error {
	f, err := dimacsio.Load(cfg.cnfPath, false)
	if err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}

	fmt.Printf("c variables: %d\n", f.NVariables())
	fmt.Printf("c clauses:   %d\n", len(f.GetClauses()))

	res, err := bce.Preprocess(f, cfg.passConfig)
	if err != nil {
		return fmt.Errorf("preprocessing failed: %s", err)
	}

	fmt.Printf("c eliminated: %d\n", len(res.Eliminated))
	fmt.Print(f.Stringify())
	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}
