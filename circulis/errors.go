package circulis

import "errors"

// Sentinel errors returned by List operations. Every failure wraps one of
// these three kinds, so callers can classify with errors.Is.
var (
	// ErrTypeMismatch is returned when an argument has the wrong type:
	// a nil function, a non-sequence operand, an element that cannot be
	// canonicalized or stored back into the container.
	ErrTypeMismatch = errors.New("circulis: argument has the wrong type")

	// ErrInvalidOperation is returned when an operation is not valid for
	// the container's current state, most commonly an empty container,
	// or an argument value outside the operation's contract.
	ErrInvalidOperation = errors.New("circulis: operation not valid for current state")

	// ErrIndexOutOfRange is returned when an index or range lies outside
	// the current bounds.
	ErrIndexOutOfRange = errors.New("circulis: index out of range")
)
