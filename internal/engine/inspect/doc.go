// Package inspect provides stateless helpers that classify a single line
// of text against a set of comment markers.
//
// The helpers answer three questions about a line:
//
//   - How much leading indentation does it have? (LeadingWhitespace)
//   - Is it blank? (IsBlank)
//   - Does it carry one of the configured markers, and at what column?
//     (DetectMarker, HasAnyMarker)
//
// Columns are byte offsets within the line. Only space and tab count as
// indentation; other Unicode whitespace is treated as content. Detection
// anchors at column 0 and at the first non-whitespace column, so a marker
// placed under any insertion policy can still be found after the policy
// changes.
package inspect
