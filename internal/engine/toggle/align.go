package toggle

import (
	"fmt"

	"github.com/dshills/linecomment/internal/engine/buffer"
)

// Memory records the alignment column carried between invocations so
// that repeated single-line toggles on adjacent lines build a vertically
// aligned block of markers one line at a time.
//
// Memory is an immutable value type. The zero value means "no memory".
type Memory struct {
	// Column is the last-used insertion column.
	Column int

	// Buffer identifies the buffer the column belongs to.
	Buffer buffer.ID

	// LastLine is the last line an aligned marker was inserted on.
	LastLine int

	valid bool
}

// NewMemory creates a valid memory record.
func NewMemory(column int, buf buffer.ID, lastLine int) Memory {
	return Memory{Column: column, Buffer: buf, LastLine: lastLine, valid: true}
}

// Valid returns true if the memory holds a usable alignment column.
func (m Memory) Valid() bool {
	return m.valid
}

// Continues reports whether an invocation starting at firstLine in the
// given buffer continues this memory's alignment run: same buffer, and
// exactly the next line after the last one touched.
func (m Memory) Continues(buf buffer.ID, firstLine int) bool {
	return m.valid && m.Buffer == buf && firstLine == m.LastLine+1
}

// String returns a human-readable representation of the memory.
func (m Memory) String() string {
	if !m.valid {
		return "Memory(none)"
	}
	return fmt.Sprintf("Memory(col=%d, line=%d)", m.Column, m.LastLine)
}
