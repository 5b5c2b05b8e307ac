package domain

import "errors"

// Domain errors represent analysis failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidConfiguration indicates a parameter that determines the
	// meaning of the output (block size, chart width/height) is out of
	// range. It is never recovered by clamping or substituting a default.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNotFound indicates a requested scan report does not exist.
	ErrNotFound = errors.New("not found")
)
