package config

import "strings"

// Match resolves the configuration for a file identified by extension
// and/or language. A language match takes precedence over an extension
// match; within each, the first matching configuration in list order
// wins. Both comparisons are case-insensitive, and extensions compare
// equal with or without their leading dot.
//
// Returns false if neither identifier matches any configuration.
func Match(extension, language string, configs []Config) (Config, bool) {
	if language != "" {
		for _, c := range configs {
			if c.Language != "" && strings.EqualFold(c.Language, language) {
				return c, true
			}
		}
	}

	if extension != "" {
		ext := normalizeExt(extension)
		for _, c := range configs {
			for _, e := range c.Extensions {
				if normalizeExt(e) == ext {
					return c, true
				}
			}
		}
	}

	return Config{}, false
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
