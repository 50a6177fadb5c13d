// Package main is the entry point for the linecomment tool.
//
// linecomment toggles line comments on ranges of a file using the same
// engine a host editor would embed. It is both a usable batch tool and
// a demonstration of the engine's alignment behavior (interactive mode
// toggles line by line, carrying the alignment column between
// invocations the way repeated editor keypresses would).
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/fatih/color"

	"github.com/dshills/linecomment/internal/config"
	"github.com/dshills/linecomment/internal/config/watcher"
	"github.com/dshills/linecomment/internal/engine"
	"github.com/dshills/linecomment/internal/engine/buffer"
	"github.com/dshills/linecomment/internal/engine/caret"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath  string
	language    string
	lines       string
	write       bool
	diff        bool
	interactive bool
}

func main() {
	os.Exit(run())
}

func run() int {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to TOML configuration file")
	flag.StringVar(&opts.language, "lang", "", "Language identifier (overrides extension matching)")
	flag.StringVar(&opts.lines, "lines", "", `Target lines, 1-based, e.g. "3-7,10"`)
	flag.BoolVar(&opts.write, "write", false, "Rewrite the file in place")
	flag.BoolVar(&opts.diff, "diff", false, "Print a unified diff instead of the result")
	flag.BoolVar(&opts.interactive, "i", false, "Interactive mode: read line ranges from stdin")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("linecomment %s (%s)\n", version, commit)
		return 0
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: linecomment [flags] <file>")
		flag.PrintDefaults()
		return 2
	}
	path := flag.Arg(0)

	eng := engine.New()
	if opts.configPath != "" {
		if err := eng.LoadConfigFile(opts.configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	lines := buffer.NewLinesFromString(string(data))

	if opts.interactive {
		return runInteractive(eng, lines, path, opts)
	}

	cfg, err := eng.Resolve(filepath.Ext(path), opts.language)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	carets, err := parseRanges(opts.lines, lines.LineCount())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if err := eng.ToggleLines(lines, carets, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return emit(path, string(data), lines.String(), opts)
}

// emit writes the toggled content to its destination: a unified diff,
// the file itself, or stdout.
func emit(path, before, after string, opts options) int {
	switch {
	case opts.diff:
		printDiff(path, before, after)
	case opts.write:
		mode := fs.FileMode(0o644)
		if info, err := os.Stat(path); err == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, []byte(after), mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	default:
		fmt.Print(after)
	}
	return 0
}

// printDiff prints a colorized unified diff of the toggle.
func printDiff(path, before, after string) {
	if before == after {
		return
	}
	diff := udiff.Unified("a/"+path, "b/"+path, before, after)
	add := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			add.Print(line)
		case strings.HasPrefix(line, "-"):
			del.Print(line)
		default:
			fmt.Print(line)
		}
	}
}

// runInteractive reads line ranges from stdin, toggling and reprinting
// the buffer after each. A bare line number behaves like a single
// editor caret, so consecutive toggles on adjacent lines share an
// alignment column. With -config, edits to the configuration file are
// picked up live.
func runInteractive(eng *engine.Engine, lines *buffer.Lines, path string, opts options) int {
	if opts.configPath != "" {
		w, err := watcher.New(opts.configPath, func(configs []config.Config, err error) {
			if err != nil {
				fmt.Fprintf(os.Stderr, "config reload: %v\n", err)
				return
			}
			if configs != nil {
				eng.SetConfigs(configs)
				fmt.Fprintf(os.Stderr, "reloaded %d configurations\n", len(configs))
			}
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: config watch disabled: %v\n", err)
		} else {
			defer w.Close()
		}
	}

	printBuffer(lines)
	fmt.Print("> ")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "q" || input == "quit" {
			break
		}
		if input == "" {
			fmt.Print("> ")
			continue
		}

		if err := toggleOnce(eng, lines, path, opts.language, input); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		} else {
			printBuffer(lines)
		}
		fmt.Print("> ")
	}

	if opts.write {
		if err := os.WriteFile(path, []byte(lines.String()), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	return 0
}

// toggleOnce resolves the configuration fresh (it may have been
// reloaded) and toggles one range spec.
func toggleOnce(eng *engine.Engine, lines *buffer.Lines, path, language, spec string) error {
	cfg, err := eng.Resolve(filepath.Ext(path), language)
	if err != nil {
		return err
	}
	carets, err := parseRanges(spec, lines.LineCount())
	if err != nil {
		return err
	}
	return eng.ToggleLines(lines, carets, cfg)
}

// printBuffer prints the buffer with 1-based line numbers.
func printBuffer(lines *buffer.Lines) {
	for i := 0; i < lines.LineCount(); i++ {
		fmt.Printf("%4d| %s\n", i+1, lines.LineText(i))
	}
}

// parseRanges parses a 1-based range spec like "3-7,10" into a caret
// set. A bare number becomes a caret, "a-b" becomes a selection.
func parseRanges(spec string, lineCount int) (caret.Set, error) {
	var spans []caret.Span
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if before, after, ok := strings.Cut(part, "-"); ok {
			start, err := parseLineNum(before, lineCount)
			if err != nil {
				return caret.Set{}, err
			}
			end, err := parseLineNum(after, lineCount)
			if err != nil {
				return caret.Set{}, err
			}
			spans = append(spans, caret.NewSpan(start, end))
		} else {
			n, err := parseLineNum(part, lineCount)
			if err != nil {
				return caret.Set{}, err
			}
			spans = append(spans, caret.NewCaret(n))
		}
	}
	if len(spans) == 0 {
		return caret.Set{}, errors.New("no target lines (use -lines or pass a range)")
	}
	return caret.NewSet(spans...), nil
}

func parseLineNum(s string, lineCount int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("bad line number %q", s)
	}
	if n < 1 || n > lineCount {
		return 0, fmt.Errorf("line %d out of range 1-%d", n, lineCount)
	}
	return n - 1, nil
}
