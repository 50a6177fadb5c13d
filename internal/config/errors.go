package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrUnknownPosition indicates an unrecognized insert position name.
	ErrUnknownPosition = errors.New("unknown insert position")

	// ErrNoMatchKey indicates a configuration with neither language nor
	// extensions, which can never be resolved.
	ErrNoMatchKey = errors.New("no language or extensions")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
