package initializer

import "errors"

var (
	// ErrInvalidArgument indicates that an initializer was constructed
	// or invoked with parameters it cannot accept: a non-positive
	// scale, an unknown mode, distribution, or data format string, or
	// a malformed shape.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnresolvedIdentifier indicates that a name or configuration
	// could not be resolved to a constructible initializer.
	ErrUnresolvedIdentifier = errors.New("unresolved identifier")
)
