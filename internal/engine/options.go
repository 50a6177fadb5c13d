package engine

import "github.com/dshills/linecomment/internal/config"

// Option configures an Engine during creation.
type Option func(*Engine)

// WithConfigs sets the configuration list, replacing the defaults.
func WithConfigs(configs []config.Config) Option {
	return func(e *Engine) {
		e.configs = configs
	}
}
