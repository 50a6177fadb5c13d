package config

// Default returns the built-in configuration set used when no config
// file is present. List order matters: the first match wins.
func Default() []Config {
	return []Config{
		{
			Name:           "go",
			Language:       "go",
			Extensions:     []string{".go"},
			Markers:        []string{"// ", "//"},
			Position:       AfterIndent,
			SkipEmptyLines: true,
		},
		{
			Name:           "c-family",
			Language:       "c",
			Extensions:     []string{".c", ".h", ".cpp", ".hpp", ".cc", ".java", ".js", ".ts", ".rs"},
			Markers:        []string{"// ", "//"},
			Position:       AfterIndent,
			SkipEmptyLines: true,
		},
		{
			Name:           "script",
			Language:       "python",
			Extensions:     []string{".py", ".rb", ".sh", ".bash", ".pl", ".yaml", ".yml", ".toml"},
			Markers:        []string{"# ", "#"},
			Position:       AfterIndent,
			SkipEmptyLines: true,
		},
		{
			Name:           "sql",
			Language:       "sql",
			Extensions:     []string{".sql"},
			Markers:        []string{"-- ", "--"},
			Position:       AfterIndent,
			SkipEmptyLines: true,
		},
		{
			Name:           "ini",
			Language:       "ini",
			Extensions:     []string{".ini", ".cfg", ".conf"},
			Markers:        []string{"; ", ";"},
			Position:       ColumnStart,
			SkipEmptyLines: true,
		},
		{
			Name:           "lisp",
			Language:       "lisp",
			Extensions:     []string{".lisp", ".el", ".clj"},
			Markers:        []string{";; ", ";;", ";"},
			Position:       AfterIndent,
			SkipEmptyLines: true,
		},
	}
}
