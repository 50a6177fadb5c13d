package caret

import (
	"fmt"
	"sort"
)

// Span is one caret or selection reduced to line space.
// Span is an immutable value type.
type Span struct {
	StartLine int // First line covered (inclusive)
	EndLine   int // Last line covered (inclusive)

	// HasSelection is true if the caret has an active selection, even a
	// selection contained in a single line. A bare caret has none.
	HasSelection bool
}

// NewSpan creates a selection span covering [start, end].
// Reversed bounds are normalized.
func NewSpan(start, end int) Span {
	if end < start {
		start, end = end, start
	}
	return Span{StartLine: start, EndLine: end, HasSelection: true}
}

// NewCaret creates a bare caret span on a single line.
func NewCaret(line int) Span {
	return Span{StartLine: line, EndLine: line}
}

// LineCount returns the number of lines the span covers.
func (s Span) LineCount() int {
	return s.EndLine - s.StartLine + 1
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if !s.HasSelection {
		return fmt.Sprintf("Caret(%d)", s.StartLine)
	}
	return fmt.Sprintf("Selection(%d-%d)", s.StartLine, s.EndLine)
}

// Set is the ordered collection of spans targeted by one invocation.
// The zero value is an empty set.
type Set struct {
	spans []Span
}

// NewSet creates a set from the given spans, ordered by document
// position (start line).
func NewSet(spans ...Span) Set {
	copied := make([]Span, len(spans))
	copy(copied, spans)
	sort.SliceStable(copied, func(i, j int) bool {
		return copied[i].StartLine < copied[j].StartLine
	})
	return Set{spans: copied}
}

// Spans returns the spans in document order.
func (s Set) Spans() []Span {
	return s.spans
}

// IsEmpty returns true if the set contains no spans.
func (s Set) IsEmpty() bool {
	return len(s.spans) == 0
}

// First returns the first line of the earliest span. This is the line
// whose state decides whether the whole batch adds or removes.
func (s Set) First() int {
	return s.spans[0].StartLine
}

// Lines returns the deduplicated, ascending union of all lines covered
// by the set's spans.
func (s Set) Lines() []int {
	seen := make(map[int]bool)
	var lines []int
	for _, sp := range s.spans {
		for n := sp.StartLine; n <= sp.EndLine; n++ {
			if !seen[n] {
				seen[n] = true
				lines = append(lines, n)
			}
		}
	}
	sort.Ints(lines)
	return lines
}

// SingleCaret returns true for the single-caret, no-selection case.
// Only such invocations consult and advance cross-invocation alignment
// memory, and only they move the caret afterwards.
func (s Set) SingleCaret() bool {
	return len(s.spans) == 1 && !s.spans[0].HasSelection &&
		s.spans[0].StartLine == s.spans[0].EndLine
}
