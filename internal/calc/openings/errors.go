package openings

import "errors"

var (
	// ErrInvalidGeometry reports non-positive dimensions, areas or distances.
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrUnknownSelector reports an occupancy group the tables do not cover.
	ErrUnknownSelector = errors.New("unknown table selector")
	// ErrMalformedTable reports reference data missing breakpoints or breaking
	// the table invariants. It is raised at load time.
	ErrMalformedTable = errors.New("malformed reference table")
	// ErrDivisionByZero reports a conformity check against a zero facade area.
	ErrDivisionByZero = errors.New("division by zero")
)
