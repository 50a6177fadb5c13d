// Package toggle implements the comment toggle engine: given a comment
// configuration, a buffer view, and the carets of one invocation, it
// decides whether the batch adds or removes markers and produces the
// edit plan.
//
// The add/remove decision comes from the first targeted line alone: if
// that line already carries a configured marker the whole batch removes,
// otherwise the whole batch adds. A heterogeneous selection therefore
// toggles consistently in one direction.
//
// Removal deletes the detected marker substring and nothing else, in
// descending line order. Addition inserts the primary marker at a
// per-line column chosen by the configured insertion policy, in
// ascending line order. Under AlignToPrevious the column is carried
// from line to line (the running column), clamped left so a marker is
// never inserted into non-whitespace content, and — for multi-line
// batches — flattened to a single uniform column decided before any
// edit is emitted.
//
// Memory is the cross-invocation alignment state. It is an explicit
// value passed in and returned rather than package-level state, so the
// caller owns exactly one slot per process (or one per buffer if it
// prefers) and no hidden global couples unrelated buffers.
package toggle
