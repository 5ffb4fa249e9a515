// Package bceerr defines the error kinds shared across the preprocessor's
// packages so callers can distinguish a caller bug (ValidationError,
// InvalidArgument, OutOfRange) from a benign miss (NotFound) without
// depending on every package's concrete error type.
package bceerr

import "fmt"

// Kind classifies an Error. See package doc for the recovery expected of
// each kind.
type Kind int

const (
	// InvalidArgument marks a caller-supplied argument that is structurally
	// invalid (e.g. a negative size, min > max, a missing RNG seed).
	InvalidArgument Kind = iota + 1
	// OutOfRange marks a variable, literal, or index outside the bounds
	// declared for the formula or index it was used against.
	OutOfRange
	// ValidationError marks an interval-tree mutation whose bounds and
	// clause ID do not jointly match any stored entry.
	ValidationError
	// NotFound marks a lookup for a clause or interval absent from its
	// container. Callers may treat this as a no-op.
	NotFound
	// ParseError marks a DIMACS parsing failure.
	ParseError
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case OutOfRange:
		return "out of range"
	case ValidationError:
		return "validation error"
	case NotFound:
		return "not found"
	case ParseError:
		return "parse error"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type returned by this module's packages.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// New returns a new *Error of the given kind.
func New(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err carries the given Kind, so callers can write
// `errors.Is(err, bceerr.NotFound)`-style checks against a sentinel built
// from the kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel returns a zero-message *Error of the given kind, suitable for use
// as an errors.Is target: `errors.Is(err, bceerr.Sentinel(bceerr.NotFound))`.
func Sentinel(k Kind) *Error {
	return &Error{Kind: k}
}
