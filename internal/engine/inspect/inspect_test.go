package inspect

import "testing"

func TestLeadingWhitespace(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"", 0},
		{"foo", 0},
		{"  foo", 2},
		{"\tfoo", 1},
		{" \t foo", 3},
		{"    ", 4},
		{"　foo", 0}, // full-width space is content, not indent
	}

	for _, tt := range tests {
		if got := LeadingWhitespace(tt.line); got != tt.want {
			t.Errorf("LeadingWhitespace(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\t", true},
		{" \t ", true},
		{"x", false},
		{"  x", false},
		{"　", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.line); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestDetectMarkerAtColumnZero(t *testing.T) {
	det, ok := DetectMarker("// foo", []string{"// "})
	if !ok {
		t.Fatal("expected marker to be detected")
	}
	if det.Marker != "// " || det.Col != 0 {
		t.Errorf("expected (%q, 0), got (%q, %d)", "// ", det.Marker, det.Col)
	}
}

func TestDetectMarkerAfterIndent(t *testing.T) {
	det, ok := DetectMarker("    # foo", []string{"# "})
	if !ok {
		t.Fatal("expected marker to be detected")
	}
	if det.Marker != "# " || det.Col != 4 {
		t.Errorf("expected (%q, 4), got (%q, %d)", "# ", det.Marker, det.Col)
	}
}

func TestDetectMarkerLongestFirst(t *testing.T) {
	// A line starting with "///" must match "///" (length-first), not "//".
	det, ok := DetectMarker("///x", []string{"//", "///"})
	if !ok {
		t.Fatal("expected marker to be detected")
	}
	if det.Marker != "///" {
		t.Errorf("expected longest marker %q, got %q", "///", det.Marker)
	}
	if det.Col != 0 {
		t.Errorf("expected column 0, got %d", det.Col)
	}
}

func TestDetectMarkerNotMidLine(t *testing.T) {
	// A marker in the middle of content must not be detected.
	if _, ok := DetectMarker("x // trailing", []string{"// "}); ok {
		t.Error("marker after content should not be detected")
	}
}

func TestDetectMarkerEmptyMarkers(t *testing.T) {
	if _, ok := DetectMarker("// foo", nil); ok {
		t.Error("empty marker list should never detect")
	}
	if _, ok := DetectMarker("// foo", []string{""}); ok {
		t.Error("empty marker string should never match")
	}
}

func TestDetectMarkerTabIndent(t *testing.T) {
	det, ok := DetectMarker("\t\t-- foo", []string{"-- "})
	if !ok {
		t.Fatal("expected marker to be detected")
	}
	if det.Col != 2 {
		t.Errorf("expected column 2, got %d", det.Col)
	}
}

func TestDetectionEnd(t *testing.T) {
	det := Detection{Marker: "// ", Col: 4}
	if det.End() != 7 {
		t.Errorf("expected end column 7, got %d", det.End())
	}
}

func TestHasAnyMarker(t *testing.T) {
	markers := []string{"// ", "//"}
	if !HasAnyMarker("  // x", markers) {
		t.Error("expected marker on commented line")
	}
	if HasAnyMarker("  x", markers) {
		t.Error("expected no marker on plain line")
	}
}

func TestState(t *testing.T) {
	st := State("  // foo", []string{"// "})
	if st.LeadingWhitespace != 2 {
		t.Errorf("expected leading whitespace 2, got %d", st.LeadingWhitespace)
	}
	if st.Blank {
		t.Error("line should not be blank")
	}
	if !st.HasMarker {
		t.Fatal("expected marker")
	}
	if st.Detected.Col != 2 {
		t.Errorf("expected marker at column 2, got %d", st.Detected.Col)
	}

	blank := State("   ", []string{"// "})
	if !blank.Blank {
		t.Error("whitespace-only line should be blank")
	}
	if blank.HasMarker {
		t.Error("blank line should have no marker")
	}
}
