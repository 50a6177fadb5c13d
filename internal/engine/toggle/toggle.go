package toggle

import (
	"strings"

	"github.com/dshills/linecomment/internal/config"
	"github.com/dshills/linecomment/internal/engine/buffer"
	"github.com/dshills/linecomment/internal/engine/caret"
	"github.com/dshills/linecomment/internal/engine/inspect"
)

// Toggle computes the edit plan for one toggle invocation and the
// alignment memory to carry into the next one.
//
// The first line of the earliest caret decides the direction: remove if
// it carries a configured marker, add otherwise. An empty caret set or
// an inert configuration yields an empty plan and leaves the memory
// untouched.
//
// For single-caret, no-selection invocations the plan also carries a
// caret move to the start of the line after the last targeted line,
// clamped to the last line of the buffer.
func Toggle(cfg config.Config, view buffer.View, carets caret.Set, buf buffer.ID, mem Memory) (buffer.Plan, Memory) {
	if carets.IsEmpty() || cfg.IsInert() {
		return buffer.Plan{}, mem
	}

	lines := carets.Lines()

	var plan buffer.Plan
	var next Memory
	if inspect.HasAnyMarker(view.LineText(carets.First()), cfg.Markers) {
		plan = removalPlan(cfg, view, lines)
		next = Memory{} // removal breaks any alignment run
	} else {
		plan, next = additionPlan(cfg, view, carets, lines, buf, mem)
	}

	if carets.SingleCaret() {
		target := lines[len(lines)-1] + 1
		if last := view.LineCount() - 1; target > last {
			target = last
		}
		plan.Caret = buffer.CaretMove{Line: target}
		plan.MoveCaret = true
	}

	return plan, next
}

// removalPlan deletes detected markers in descending line order, so an
// earlier line's removal never invalidates a later edit's offsets.
// Lines without a marker are left unmodified.
func removalPlan(cfg config.Config, view buffer.View, lines []int) buffer.Plan {
	var plan buffer.Plan
	for i := len(lines) - 1; i >= 0; i-- {
		n := lines[i]
		det, ok := inspect.DetectMarker(view.LineText(n), cfg.Markers)
		if !ok {
			continue
		}
		plan.Append(buffer.NewDelete(n, det.Col, len(det.Marker)))
	}
	return plan
}

// additionPlan inserts the primary marker on each target line in
// ascending order, at the column chosen by the insertion policy.
func additionPlan(cfg config.Config, view buffer.View, carets caret.Set, lines []int, buf buffer.ID, mem Memory) (buffer.Plan, Memory) {
	marker := cfg.Primary()
	if marker == "" {
		// Nothing can ever be inserted; detection (and so removal) is
		// unaffected, but this pass is a no-op.
		return buffer.Plan{}, mem
	}

	align := cfg.Position == config.AlignToPrevious

	// Multi-line batches under AlignToPrevious get one flat column,
	// decided before any edit is emitted, instead of a staircase.
	uniform := -1
	if align && len(lines) > 1 {
		uniform = uniformColumn(cfg, view, lines)
	}

	// Cross-invocation continuity applies only to the single-caret,
	// no-selection case; batches recompute from buffer content.
	running := -1
	if align && carets.SingleCaret() && mem.Continues(buf, lines[0]) {
		running = mem.Column
	}

	var plan buffer.Plan
	lastEdited := -1
	finalCol := 0
	for _, n := range lines {
		text := view.LineText(n)
		blank := inspect.IsBlank(text)
		if blank && cfg.SkipEmptyLines {
			continue
		}

		var col int
		switch cfg.Position {
		case config.ColumnStart:
			col = 0
			plan.Append(buffer.NewInsert(n, 0, marker))

		case config.AfterIndent:
			col = inspect.LeadingWhitespace(text)
			plan.Append(buffer.NewInsert(n, col, marker))

		case config.AlignToPrevious:
			candidate := running
			if uniform >= 0 {
				candidate = uniform
			}
			if candidate < 0 {
				candidate = previousLineColumn(cfg, view, n)
			}

			switch {
			case blank && cfg.IndentEmptyLines:
				// No content to clamp against: rebuild the line as
				// synthesized indentation plus the marker at the
				// alignment column.
				col = candidate
				plan.Append(buffer.NewReplace(n, 0, len(text), synthesizeIndent(view, n, col)+marker))
			case blank:
				// A blank line has no indentation, so its own column
				// collapses to 0. Columns already committed on earlier
				// lines stand as written.
				col = 0
				plan.Append(buffer.NewInsert(n, 0, marker))
			default:
				col = candidate
				if ws := inspect.LeadingWhitespace(text); ws < col {
					// Left-shift clamp: a marker is never inserted
					// into non-whitespace content.
					col = ws
				}
				plan.Append(buffer.NewInsert(n, col, marker))
			}
			running = col
		}

		lastEdited = n
		finalCol = col
	}

	if !align {
		return plan, Memory{}
	}
	if lastEdited < 0 {
		// Every line was skipped; no alignment state was consumed or
		// produced.
		return plan, mem
	}
	return plan, NewMemory(finalCol, buf, lastEdited)
}

// previousLineColumn scans upward from line n for the nearest preceding
// non-blank line and returns the column of its detected marker, or its
// leading-whitespace length if it has none. With no preceding non-blank
// line the current line's own indentation is used, matching AfterIndent.
func previousLineColumn(cfg config.Config, view buffer.View, n int) int {
	for i := n - 1; i >= 0; i-- {
		text := view.LineText(i)
		if inspect.IsBlank(text) {
			continue
		}
		if det, ok := inspect.DetectMarker(text, cfg.Markers); ok {
			return det.Col
		}
		return inspect.LeadingWhitespace(text)
	}
	return inspect.LeadingWhitespace(view.LineText(n))
}

// uniformColumn is the pre-pass for multi-line aligned batches: the
// candidate column from the first line's previous-line lookup, clamped
// by the shallowest indentation among the batch's non-blank lines.
// Blank lines never constrain the batch column.
func uniformColumn(cfg config.Config, view buffer.View, lines []int) int {
	col := previousLineColumn(cfg, view, lines[0])
	for _, n := range lines {
		text := view.LineText(n)
		if inspect.IsBlank(text) {
			continue
		}
		if ws := inspect.LeadingWhitespace(text); ws < col {
			col = ws
		}
	}
	return col
}

// synthesizeIndent builds indentation for a blank line being aligned:
// the previous non-blank line's leading whitespace, truncated to the
// alignment column and padded with spaces if shorter.
func synthesizeIndent(view buffer.View, n, col int) string {
	var indent string
	for i := n - 1; i >= 0; i-- {
		text := view.LineText(i)
		if inspect.IsBlank(text) {
			continue
		}
		indent = text[:inspect.LeadingWhitespace(text)]
		break
	}
	if len(indent) > col {
		indent = indent[:col]
	}
	return indent + strings.Repeat(" ", col-len(indent))
}
