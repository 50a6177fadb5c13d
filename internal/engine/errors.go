package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrNoConfig indicates no configuration matches the file identity.
	ErrNoConfig = errors.New("no matching comment configuration")
)
