package config

import "fmt"

// InsertPosition selects where the primary marker lands when adding.
type InsertPosition int

const (
	// ColumnStart inserts at column 0.
	ColumnStart InsertPosition = iota

	// AfterIndent inserts immediately after the line's leading whitespace.
	AfterIndent

	// AlignToPrevious aligns the marker with the previous line's marker
	// (or indentation), producing a vertical column of markers.
	AlignToPrevious
)

// String returns the position's configuration name.
func (p InsertPosition) String() string {
	switch p {
	case ColumnStart:
		return "column-start"
	case AfterIndent:
		return "after-indent"
	case AlignToPrevious:
		return "align-previous"
	default:
		return "unknown"
	}
}

// ParsePosition parses a configuration name into an InsertPosition.
func ParsePosition(s string) (InsertPosition, error) {
	switch s {
	case "column-start":
		return ColumnStart, nil
	case "after-indent":
		return AfterIndent, nil
	case "align-previous":
		return AlignToPrevious, nil
	default:
		return ColumnStart, fmt.Errorf("%w: %q", ErrUnknownPosition, s)
	}
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (p InsertPosition) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML input.
func (p *InsertPosition) UnmarshalText(text []byte) error {
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Config describes the comment style for a family of files.
type Config struct {
	// Name labels the configuration in diagnostics.
	Name string `toml:"name,omitempty"`

	// Language is the language identifier this configuration matches
	// (case-insensitive). Empty means no language rule.
	Language string `toml:"language,omitempty"`

	// Extensions are the file extensions this configuration matches
	// (case-insensitive, leading dot optional).
	Extensions []string `toml:"extensions,omitempty"`

	// Markers are the comment marker strings, in configuration order.
	// Markers[0] is the primary marker, the only one ever inserted;
	// every entry is checked when removing. An empty list makes the
	// configuration inert: it never detects and never inserts.
	Markers []string `toml:"markers"`

	// Position selects the insertion policy.
	Position InsertPosition `toml:"position"`

	// SkipEmptyLines leaves blank lines untouched when adding.
	SkipEmptyLines bool `toml:"skip_empty_lines"`

	// IndentEmptyLines gives blank lines synthesized indentation up to
	// the alignment column instead of skipping them. Only meaningful
	// with AlignToPrevious.
	IndentEmptyLines bool `toml:"indent_empty_lines"`
}

// Primary returns the marker used for insertion, or "" if none.
func (c Config) Primary() string {
	if len(c.Markers) == 0 {
		return ""
	}
	return c.Markers[0]
}

// IsInert returns true if the configuration can neither detect nor
// insert markers.
func (c Config) IsInert() bool {
	return len(c.Markers) == 0
}

// Validate checks that a loaded configuration is usable for matching.
// An inert configuration (no markers) is legal; a configuration with
// no language and no extensions can never be resolved and is rejected.
func (c Config) Validate() error {
	if c.Language == "" && len(c.Extensions) == 0 {
		return fmt.Errorf("config %q: %w", c.label(), ErrNoMatchKey)
	}
	return nil
}

func (c Config) label() string {
	if c.Name != "" {
		return c.Name
	}
	if c.Language != "" {
		return c.Language
	}
	return "unnamed"
}
