// Package mcerr defines the classified, fatal error kinds the checker can
// report to its caller, grounded in the error-kinds catalogue of the
// specification: every query either succeeds or fails with exactly one of
// these kinds. None are recovered inside the core; they are surfaced with a
// human-readable message.
package mcerr

import "fmt"

// Kind classifies why a query failed. Every Error carries exactly one.
type Kind string

const (
	// ParseError covers malformed formula text: missing or duplicated
	// sentinel, bad comparator, or an unparseable probability literal.
	ParseError Kind = "parse-error"

	// UnknownProposition is returned when a formula references an atomic
	// proposition absent from the AP map.
	UnknownProposition Kind = "unknown-proposition"

	// InvalidProbabilityBound is returned when a probability bound falls
	// outside [0,1].
	InvalidProbabilityBound Kind = "invalid-probability-bound"

	// InvalidMaxError is returned when max_error <= 0.
	InvalidMaxError Kind = "invalid-max-error"

	// GraphInvariantViolation is returned when an action's outgoing
	// weights do not sum to 1 within tolerance.
	GraphInvariantViolation Kind = "graph-invariant-violation"

	// PossiblyInfiniteReachability is propagated verbatim from the
	// reachability-graph producer collaborator.
	PossiblyInfiniteReachability Kind = "possibly-infinite-reachability"
)

// Error is a classified, fatal error. The current query cannot be retried;
// the caller should surface Message to the user.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New builds an Error of the given Kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether target is an *Error with the same Kind, so callers can
// write errors.Is(err, mcerr.New(mcerr.ParseError, "")) style checks against
// a zero-message sentinel, or more simply compare err.(*Error).Kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
