// Package engine provides the comment toggle engine facade.
//
// The engine combines configuration matching, line inspection, the
// toggle mutator, and cross-invocation alignment memory behind one
// thread-safe API. A host hands it a resolved configuration, a buffer
// identity, a line-indexed view, and the current carets; the engine
// returns an ordered edit plan the host applies atomically (ideally as
// a single undo step).
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: line-indexed View, edit plans, and an in-memory Lines buffer
//   - caret: caret/selection spans of one invocation, in line space
//   - inspect: stateless line classification against a marker set
//   - toggle: the add/remove decision, column policies, alignment memory
//
// Configuration types live in internal/config.
//
// # Thread Safety
//
// Toggle operations are synchronous and complete before returning. The
// engine serializes access to the single shared alignment-memory slot
// with a mutex, so concurrent invocations from unrelated buffers cannot
// corrupt each other's alignment tracking.
//
// # Basic Usage
//
//	e := engine.New()
//
//	cfg, err := e.Resolve(".go", "")
//	if err != nil {
//		// no configuration for this file type
//	}
//
//	lines := buffer.NewLinesFromString("  foo()\n  bar()\n")
//	carets := caret.NewSet(caret.NewSpan(0, 1))
//	if err := e.ToggleLines(lines, carets, cfg); err != nil {
//		// edit plan could not be applied
//	}
//	// lines.String() == "  // foo()\n  // bar()\n"
package engine
