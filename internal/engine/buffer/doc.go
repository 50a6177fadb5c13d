// Package buffer provides the line-indexed text surface the comment
// engine operates on.
//
// The engine never touches a host editor's document directly. It reads
// lines through the View interface and emits a Plan of line-local edits
// for the caller to apply. For hosts that do not have their own document
// model (tests, the CLI), Lines offers a concrete in-memory View that
// can apply plans atomically.
//
// Position Types:
//
// All coordinates are 0-indexed. A line number addresses a line in the
// buffer; a column is a byte offset within that line's text (without the
// trailing newline). Comment markers and indentation are ASCII, so byte
// columns inside the indentation region are also character columns.
package buffer
