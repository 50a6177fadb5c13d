package inspect

import (
	"sort"
	"strings"
)

// Detection identifies a comment marker found on a line.
// Detection is an immutable value type.
type Detection struct {
	Marker string // The matched marker string
	Col    int    // Byte column where the marker starts
}

// End returns the byte column immediately after the marker.
func (d Detection) End() int {
	return d.Col + len(d.Marker)
}

// LineState is the derived classification of a line against a marker set.
type LineState struct {
	// LeadingWhitespace is the number of leading space/tab bytes.
	LeadingWhitespace int

	// Blank is true if the line contains only spaces and tabs (or nothing).
	Blank bool

	// Detected holds the matched marker, valid only when HasMarker is true.
	Detected Detection

	// HasMarker is true if one of the markers was found on the line.
	HasMarker bool
}

// LeadingWhitespace returns the number of leading space or tab bytes.
// Other whitespace (e.g. full-width spaces) is not treated as indent.
func LeadingWhitespace(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return i
		}
	}
	return len(line)
}

// IsBlank reports whether the line is empty or contains only spaces and tabs.
func IsBlank(line string) bool {
	return LeadingWhitespace(line) == len(line)
}

// DetectMarker looks for one of the configured markers on the line.
// Markers are tried at column 0 first, then at the first non-whitespace
// column. Within each anchor longer markers win over shorter ones, so a
// line starting with "///" matches "///" rather than "//". Detection is
// independent of the insertion policy that placed the marker.
//
// Empty marker strings never match. Returns false if no marker matches
// at either anchor.
func DetectMarker(line string, markers []string) (Detection, bool) {
	if len(markers) == 0 {
		return Detection{}, false
	}

	sorted := byLengthDesc(markers)

	indent := LeadingWhitespace(line)
	anchors := []int{0}
	if indent > 0 {
		anchors = append(anchors, indent)
	}

	for _, col := range anchors {
		for _, m := range sorted {
			if m == "" {
				continue
			}
			if strings.HasPrefix(line[col:], m) {
				return Detection{Marker: m, Col: col}, true
			}
		}
	}

	return Detection{}, false
}

// HasAnyMarker reports whether DetectMarker would succeed on the line.
func HasAnyMarker(line string, markers []string) bool {
	_, ok := DetectMarker(line, markers)
	return ok
}

// State classifies a line in one pass.
func State(line string, markers []string) LineState {
	ws := LeadingWhitespace(line)
	st := LineState{
		LeadingWhitespace: ws,
		Blank:             ws == len(line),
	}
	st.Detected, st.HasMarker = DetectMarker(line, markers)
	return st
}

// byLengthDesc returns a copy of markers sorted by descending length.
// The sort is stable so configuration order breaks length ties.
func byLengthDesc(markers []string) []string {
	sorted := make([]string, len(markers))
	copy(sorted, markers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	return sorted
}
