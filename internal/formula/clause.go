package formula

import "strings"

// Clause is a finite set of literals, stored in ascending order by signed
// value. A Clause is never tautological: newClause rejects any set of
// literals containing both l and -l for some variable (I1).
type Clause struct {
	literals []Literal
}

// newClause builds a Clause from tmpLiterals, deduplicating and sorting
// them. The second return value is false if the literals form a
// tautology (some variable appears with both polarities), in which case
// the clause must not be stored (I1).
func newClause(tmpLiterals []Literal) (*Clause, bool) {
	seen := make(map[Literal]struct{}, len(tmpLiterals))
	lits := make([]Literal, 0, len(tmpLiterals))
	for _, l := range tmpLiterals {
		if _, ok := seen[l.Opposite()]; ok {
			return nil, false // tautology
		}
		if _, ok := seen[l]; ok {
			continue // duplicate literal
		}
		seen[l] = struct{}{}
		lits = append(lits, l)
	}
	insertionSortLiterals(lits)
	return &Clause{literals: lits}, true
}

// insertionSortLiterals sorts lits ascending by signed value. Clauses are
// small (rarely more than a few dozen literals) so an insertion sort avoids
// the overhead of a general-purpose sort for the common case.
func insertionSortLiterals(lits []Literal) {
	for i := 1; i < len(lits); i++ {
		l := lits[i]
		j := i - 1
		for j >= 0 && lits[j] > l {
			lits[j+1] = lits[j]
			j--
		}
		lits[j+1] = l
	}
}

// Literals returns the clause's literals in ascending order. The returned
// slice must not be mutated by the caller.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.literals)
}

// Bounds returns the clause's literal bounds: its smallest and largest
// signed literal. ok is false for an empty clause, which has no bounds.
func (c *Clause) Bounds() (lo, hi Literal, ok bool) {
	if len(c.literals) == 0 {
		return 0, 0, false
	}
	return c.literals[0], c.literals[len(c.literals)-1], true
}

// Contains reports whether l is one of the clause's literals.
func (c *Clause) Contains(l Literal) bool {
	lo, hi := 0, len(c.literals)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case c.literals[mid] == l:
			return true
		case c.literals[mid] < l:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return false
}

// removeLiteral removes l from the clause if present, preserving sort
// order. It reports whether l was found.
func (c *Clause) removeLiteral(l Literal) bool {
	for i, lit := range c.literals {
		if lit == l {
			c.literals = append(c.literals[:i], c.literals[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
