package buffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrLineOutOfRange indicates a line number outside the buffer.
	ErrLineOutOfRange = errors.New("line out of range")

	// ErrColOutOfRange indicates a column outside the line's text.
	ErrColOutOfRange = errors.New("column out of range")
)
