package compose

import "errors"

var (
	// ErrUnnamedType is returned when a type definition has no name.
	ErrUnnamedType = errors.New("compose: type has no name")

	// ErrInvalidName is returned when a method name is not a valid
	// identifier.
	ErrInvalidName = errors.New("compose: invalid method name")

	// ErrNilCallable is returned when a method is defined without a
	// function.
	ErrNilCallable = errors.New("compose: method function is nil")

	// ErrFieldCollision is returned when two configuration slots try
	// to define the same field.
	ErrFieldCollision = errors.New("compose: field defined twice")

	// ErrNoSuchMethod is returned when a call names a method the type
	// does not have.
	ErrNoSuchMethod = errors.New("compose: no such method")

	// ErrInternalMethod is returned when an internal method is called
	// through an instance instead of through its type.
	ErrInternalMethod = errors.New("compose: method is internal")
)
