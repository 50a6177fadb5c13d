package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// configFile is the top-level TOML document shape.
type configFile struct {
	Configs []Config `toml:"configs"`
}

// LoadFile reads configurations from a TOML file.
// A missing file is not an error; it returns (nil, nil) so callers can
// fall back to Default().
func LoadFile(path string) ([]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return parse(path, data)
}

// Load reads configurations from an io.Reader.
func Load(r io.Reader) ([]Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return parse("<reader>", data)
}

// parse parses TOML data and validates each configuration.
func parse(source string, data []byte) ([]Config, error) {
	var file configFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
	}

	for _, c := range file.Configs {
		if err := c.Validate(); err != nil {
			return nil, &ParseError{
				Path:    source,
				Message: err.Error(),
				Err:     err,
			}
		}
	}

	return file.Configs, nil
}
