package engine

import (
	"fmt"
	"sync"

	"github.com/dshills/linecomment/internal/config"
	"github.com/dshills/linecomment/internal/engine/buffer"
	"github.com/dshills/linecomment/internal/engine/caret"
	"github.com/dshills/linecomment/internal/engine/toggle"
)

// Re-export commonly used types for convenience.
type (
	// Config describes the comment style for a family of files.
	Config = config.Config

	// Plan is the ordered edit list produced by one toggle invocation.
	Plan = buffer.Plan

	// Edit is a single line-local text mutation.
	Edit = buffer.Edit

	// View is a read-only, line-indexed view over a buffer.
	View = buffer.View

	// BufferID is an opaque buffer identity token.
	BufferID = buffer.ID

	// Span is one caret or selection in line space.
	Span = caret.Span

	// Carets is the ordered caret set of one invocation.
	Carets = caret.Set
)

// Engine is the facade for the comment toggle engine. It holds the
// configuration list and the single cross-invocation alignment-memory
// slot, serialized by a mutex.
type Engine struct {
	mu      sync.Mutex
	configs []config.Config
	mem     toggle.Memory
}

// New creates an Engine. Without options it carries the built-in
// default configurations.
func New(opts ...Option) *Engine {
	e := &Engine{configs: config.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Configs returns a copy of the configuration list.
func (e *Engine) Configs() []config.Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]config.Config, len(e.configs))
	copy(out, e.configs)
	return out
}

// SetConfigs replaces the configuration list. Alignment memory is
// reset; a changed configuration invalidates any running column.
func (e *Engine) SetConfigs(configs []config.Config) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.configs = configs
	e.mem = toggle.Memory{}
}

// LoadConfigFile loads configurations from a TOML file, replacing the
// current list. A missing file leaves the current list in place.
func (e *Engine) LoadConfigFile(path string) error {
	configs, err := config.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading configs: %w", err)
	}
	if configs == nil {
		return nil
	}
	e.SetConfigs(configs)
	return nil
}

// Resolve returns the configuration for a file identified by extension
// and/or language. Language match wins over extension match.
func (e *Engine) Resolve(extension, language string) (config.Config, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	cfg, ok := config.Match(extension, language, e.configs)
	if !ok {
		return config.Config{}, fmt.Errorf("%w: ext=%q lang=%q", ErrNoConfig, extension, language)
	}
	return cfg, nil
}

// Toggle computes the edit plan for one invocation against the given
// buffer, consuming and updating the engine's alignment memory. The
// caller applies the returned plan atomically, in one undoable step.
func (e *Engine) Toggle(id buffer.ID, view buffer.View, carets caret.Set, cfg config.Config) buffer.Plan {
	e.mu.Lock()
	defer e.mu.Unlock()
	plan, mem := toggle.Toggle(cfg, view, carets, id, e.mem)
	e.mem = mem
	return plan
}

// ToggleLines toggles against an in-memory Lines buffer and applies the
// plan in one step.
func (e *Engine) ToggleLines(lines *buffer.Lines, carets caret.Set, cfg config.Config) error {
	plan := e.Toggle(lines.ID(), lines, carets, cfg)
	return lines.Apply(plan)
}

// ResetAlignment drops any cross-invocation alignment memory.
func (e *Engine) ResetAlignment() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mem = toggle.Memory{}
}
