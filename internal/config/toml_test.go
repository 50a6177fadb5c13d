package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleTOML = `
[[configs]]
name = "go"
language = "go"
extensions = [".go"]
markers = ["// ", "//"]
position = "after-indent"
skip_empty_lines = true

[[configs]]
name = "aligned"
extensions = [".txt"]
markers = ["| "]
position = "align-previous"
indent_empty_lines = true
`

func TestLoad(t *testing.T) {
	configs, err := Load(strings.NewReader(sampleTOML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("expected 2 configs, got %d", len(configs))
	}

	goCfg := configs[0]
	if goCfg.Language != "go" || goCfg.Primary() != "// " {
		t.Errorf("unexpected go config: %+v", goCfg)
	}
	if goCfg.Position != AfterIndent {
		t.Errorf("expected after-indent, got %v", goCfg.Position)
	}
	if !goCfg.SkipEmptyLines {
		t.Error("expected skip_empty_lines")
	}

	aligned := configs[1]
	if aligned.Position != AlignToPrevious {
		t.Errorf("expected align-previous, got %v", aligned.Position)
	}
	if !aligned.IndentEmptyLines {
		t.Error("expected indent_empty_lines")
	}
}

func TestLoadBadPosition(t *testing.T) {
	_, err := Load(strings.NewReader(`
[[configs]]
language = "x"
markers = ["# "]
position = "diagonal"
`))
	if err == nil {
		t.Fatal("expected error for unknown position")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("expected ParseError, got %T", err)
	}
}

func TestLoadNoMatchKey(t *testing.T) {
	_, err := Load(strings.NewReader(`
[[configs]]
markers = ["# "]
`))
	if !errors.Is(err, ErrNoMatchKey) {
		t.Errorf("expected ErrNoMatchKey, got %v", err)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	_, err := Load(strings.NewReader("[[configs"))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("expected ParseError, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.toml")
	if err := os.WriteFile(path, []byte(sampleTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	configs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(configs) != 2 {
		t.Errorf("expected 2 configs, got %d", len(configs))
	}
}

func TestLoadFileMissing(t *testing.T) {
	configs, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Errorf("missing file should not be an error, got %v", err)
	}
	if configs != nil {
		t.Errorf("missing file should yield nil configs, got %v", configs)
	}
}

func TestDefaultConfigsResolvable(t *testing.T) {
	defaults := Default()
	if len(defaults) == 0 {
		t.Fatal("expected built-in defaults")
	}
	for _, c := range defaults {
		if err := c.Validate(); err != nil {
			t.Errorf("default config %q invalid: %v", c.Name, err)
		}
		if c.IsInert() {
			t.Errorf("default config %q has no markers", c.Name)
		}
	}

	if c, ok := Match(".go", "", defaults); !ok || c.Primary() != "// " {
		t.Error("expected .go to resolve to a // config")
	}
	if c, ok := Match("", "python", defaults); !ok || c.Primary() != "# " {
		t.Error("expected python to resolve to a # config")
	}
}
