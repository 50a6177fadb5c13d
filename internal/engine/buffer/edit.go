package buffer

import "fmt"

// Edit represents a single line-local text mutation.
// It replaces OldLen bytes starting at Col on the given line with NewText.
type Edit struct {
	Line    int    // The line to modify
	Col     int    // Byte column where the mutation starts
	OldLen  int    // Number of bytes replaced (0 for a pure insertion)
	NewText string // Replacement text ("" for a pure deletion)
}

// NewInsert creates an Edit that inserts text at a column.
func NewInsert(line, col int, text string) Edit {
	return Edit{Line: line, Col: col, NewText: text}
}

// NewDelete creates an Edit that deletes length bytes starting at a column.
func NewDelete(line, col, length int) Edit {
	return Edit{Line: line, Col: col, OldLen: length}
}

// NewReplace creates an Edit that replaces length bytes with new text.
func NewReplace(line, col, length int, text string) Edit {
	return Edit{Line: line, Col: col, OldLen: length, NewText: text}
}

// IsInsert returns true if this is a pure insertion.
func (e Edit) IsInsert() bool {
	return e.OldLen == 0 && e.NewText != ""
}

// IsDelete returns true if this is a pure deletion.
func (e Edit) IsDelete() bool {
	return e.OldLen > 0 && e.NewText == ""
}

// IsNoOp returns true if this edit changes nothing.
func (e Edit) IsNoOp() bool {
	return e.OldLen == 0 && e.NewText == ""
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.IsInsert() {
		return fmt.Sprintf("Insert(%d:%d, %q)", e.Line, e.Col, e.NewText)
	}
	if e.IsDelete() {
		return fmt.Sprintf("Delete(%d:%d, %d)", e.Line, e.Col, e.OldLen)
	}
	return fmt.Sprintf("Replace(%d:%d, %d, %q)", e.Line, e.Col, e.OldLen, e.NewText)
}

// CaretMove is an instruction to reposition the caret after a plan is
// applied. It is advisory; hosts without a caret may ignore it.
type CaretMove struct {
	Line int // Target line; the caret moves to its start
}

// Plan is an ordered list of edits produced by one toggle invocation,
// plus an optional caret repositioning instruction.
//
// Edits are ordered so that applying them as a sequence of absolute
// mutations never invalidates a later edit's offsets: removals are
// emitted in descending line order, insertions in ascending line order,
// and no two edits ever target the same line.
type Plan struct {
	Edits []Edit

	// Caret is valid only when MoveCaret is true.
	Caret     CaretMove
	MoveCaret bool
}

// Append adds an edit to the plan, dropping no-ops.
func (p *Plan) Append(e Edit) {
	if e.IsNoOp() {
		return
	}
	p.Edits = append(p.Edits, e)
}

// IsNoOp returns true if the plan mutates nothing and moves no caret.
func (p Plan) IsNoOp() bool {
	return len(p.Edits) == 0 && !p.MoveCaret
}
