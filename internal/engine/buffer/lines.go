package buffer

import (
	"fmt"
	"strings"
)

// Lines is an in-memory View backed by a slice of lines.
// It is not safe for concurrent use; callers that share a Lines across
// goroutines must serialize access.
type Lines struct {
	id         ID
	lines      []string
	trailingNL bool
}

// NewLines creates a buffer from pre-split lines.
// A nil or empty slice yields a buffer with a single empty line.
func NewLines(lines []string) *Lines {
	if len(lines) == 0 {
		lines = []string{""}
	}
	copied := make([]string, len(lines))
	copy(copied, lines)
	return &Lines{id: NewID(), lines: copied}
}

// NewLinesFromString creates a buffer by splitting text on newlines.
// A trailing newline is remembered and restored by String.
func NewLinesFromString(text string) *Lines {
	trailing := strings.HasSuffix(text, "\n")
	if trailing {
		text = text[:len(text)-1]
	}
	return &Lines{
		id:         NewID(),
		lines:      strings.Split(text, "\n"),
		trailingNL: trailing,
	}
}

// ID returns the buffer's identity token.
func (l *Lines) ID() ID {
	return l.id
}

// LineCount returns the number of lines.
func (l *Lines) LineCount() int {
	return len(l.lines)
}

// LineText returns the text of a line without its newline.
// Panics if line is out of range, matching the View contract that the
// caller validates line numbers.
func (l *Lines) LineText(line int) string {
	return l.lines[line]
}

// String reassembles the buffer content.
func (l *Lines) String() string {
	s := strings.Join(l.lines, "\n")
	if l.trailingNL {
		s += "\n"
	}
	return s
}

// Apply applies a plan atomically: either every edit is applied or the
// buffer is left unchanged. Edits are applied in plan order against the
// evolving content, which is safe because plans never target the same
// line twice.
func (l *Lines) Apply(p Plan) error {
	updated := make([]string, len(l.lines))
	copy(updated, l.lines)

	for _, e := range p.Edits {
		if e.Line < 0 || e.Line >= len(updated) {
			return fmt.Errorf("apply %s: %w", e, ErrLineOutOfRange)
		}
		text := updated[e.Line]
		if e.Col < 0 || e.Col+e.OldLen > len(text) {
			return fmt.Errorf("apply %s: %w", e, ErrColOutOfRange)
		}
		updated[e.Line] = text[:e.Col] + e.NewText + text[e.Col+e.OldLen:]
	}

	l.lines = updated
	return nil
}
