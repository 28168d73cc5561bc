// Package config provides configuration management for the sqlsplit CLI.
//
// Configuration is layered: built-in defaults, an optional sqlsplit.yaml
// file, SQLSPLIT_-prefixed environment variables, and command-line flags,
// each layer overriding the last.
package config

// Config holds all CLI configuration options.
type Config struct {
	// OutputDir is where split files land. Empty means a directory named
	// after the input file's base name, created in the working directory.
	OutputDir        string   `koanf:"output_dir"`
	TriggerCount     int      `koanf:"trigger_count"`
	IgnoreBlankLines bool     `koanf:"ignore_blank_lines"`
	Conditions       []string `koanf:"conditions"`
	Report           bool     `koanf:"report"`
	Verbose          bool     `koanf:"verbose"`
	OutputFormat     string   `koanf:"output"`
}

// Default configuration values.
const (
	DefaultTriggerCount = 1
	DefaultOutput       = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
