// Package config defines comment configurations and resolves them for a
// given file.
//
// A Config names the comment markers for a family of files, how the
// primary marker is positioned when inserted, and how blank lines are
// treated. Configurations are matched to files by language identifier
// or file extension; language wins over extension rules, and within
// each the first match in list order wins.
//
// Configurations load from TOML files:
//
//	[[configs]]
//	name = "go"
//	language = "go"
//	extensions = [".go"]
//	markers = ["// ", "//"]
//	position = "after-indent"
//	skip_empty_lines = true
//
// The engine treats a resolved Config as an immutable value for the
// duration of a toggle operation and never mutates it.
package config
