// Package dimacsio adapts github.com/rhartert/dimacs, the external DIMACS
// CNF reader, to build a *formula.Formula instead of feeding a solver
// (compare parsers/parsers.go in the reference repo, which does the same
// for a sat.Solver).
package dimacsio

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/satkit/bce/internal/bceerr"
	"github.com/satkit/bce/internal/formula"
)

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			file.Close()
			return nil, err
		}
	}
	return rc, nil
}

// Load parses the DIMACS CNF file at filename (optionally gzip-compressed)
// into a new Formula.
func Load(filename string, gzipped bool) (*formula.Formula, error) {
	r, err := reader(filename, gzipped)
	if err != nil {
		return nil, bceerr.New(bceerr.ParseError, "opening %q: %s", filename, err)
	}
	defer r.Close()

	b := &builder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, bceerr.New(bceerr.ParseError, "parsing %q: %s", filename, err)
	}
	if b.err != nil {
		return nil, bceerr.New(bceerr.ParseError, "parsing %q: %s", filename, b.err)
	}
	if b.formula == nil {
		return nil, bceerr.New(bceerr.ParseError, "%q has no problem line", filename)
	}
	return b.formula, nil
}

// Save writes f to filename in DIMACS CNF text format.
func Save(filename string, f *formula.Formula) error {
	if err := os.WriteFile(filename, []byte(f.Stringify()), 0o644); err != nil {
		return bceerr.New(bceerr.ParseError, "writing %q: %s", filename, err)
	}
	return nil
}

// builder implements dimacs.Builder, accumulating a Formula. The interface's
// methods return no error, so failures are latched in err and surfaced by
// Load once dimacs.ReadBuilder returns.
type builder struct {
	formula *formula.Formula
	nextCID formula.ClauseID
	err     error
}

func (b *builder) Problem(nVars int, nClauses int) {
	if b.err != nil {
		return
	}
	f, err := formula.New(nVars, nClauses)
	if err != nil {
		b.err = err
		return
	}
	b.formula = f
}

func (b *builder) Clause(tmpClause []int) {
	if b.err != nil {
		return
	}
	if b.formula == nil {
		b.err = fmt.Errorf("clause line found before problem line")
		return
	}
	literals := make([]formula.Literal, len(tmpClause))
	for i, l := range tmpClause {
		literals[i] = formula.Literal(l)
	}
	if _, err := b.formula.AddClause(b.nextCID, literals); err != nil {
		b.err = err
		return
	}
	b.nextCID++
}

func (b *builder) Comment(_ string) {} // ignore comments
