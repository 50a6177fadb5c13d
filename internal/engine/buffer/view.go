package buffer

import "github.com/google/uuid"

// View is a read-only, line-indexed view over a text buffer.
// Host editors implement this over their own document model.
type View interface {
	// LineText returns the text of a line without its trailing newline.
	// Callers must pass a line in [0, LineCount()).
	LineText(line int) string

	// LineCount returns the number of lines in the buffer.
	// An empty buffer has one empty line.
	LineCount() int
}

// ID is an opaque buffer identity token. The engine uses it only for
// equality, to tell whether two invocations target the same buffer.
type ID string

// NewID mints a unique buffer identity.
func NewID() ID {
	return ID(uuid.NewString())
}
