// Package caret models the carets and selections targeted by one toggle
// invocation, expressed in line space.
//
// A Span is a single caret or selection reduced to the lines it covers.
// A Set holds the spans of one invocation in document order and derives
// the batch facts the toggle engine needs: the full target-line list,
// the first line (which alone decides add vs remove), and whether the
// invocation is the single-caret, no-selection case that participates
// in cross-invocation alignment.
package caret
