// Package meta compiles a classified pattern into the search engine its
// Kind names and runs it.
//
// The meta-engine is the single dispatch point over the closed set of
// algorithms. It normalizes the text, applies the begin displacement and
// falls back to the backtracker when the regex engine cannot take a
// pattern.
package meta

import (
	"github.com/coregx/seqmatch/brute"
	"github.com/coregx/seqmatch/rematch"
)

// Config controls engine construction.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnableRegex = false // range patterns go to the backtracker
//	engine, err := meta.Compile("AC(2,4)G", false, 0, config)
type Config struct {
	// MaxRecursionDepth caps the backtracker's recursion.
	// Default: 1000
	MaxRecursionDepth int

	// EnableRegex lets Regex-kind patterns use the regex engine. When false
	// they are searched by the backtracker.
	// Default: true
	EnableRegex bool

	// NonOverlappingRegex reports only the regex engine's leftmost,
	// non-overlapping hits instead of one hit per start offset.
	// Default: false
	NonOverlappingRegex bool

	// RegexCompiler compiles translated patterns. Nil selects coregex.
	RegexCompiler rematch.CompileFunc
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxRecursionDepth: brute.DefaultMaxDepth,
		EnableRegex:       true,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MaxRecursionDepth: 10 to 100,000
func (c Config) Validate() error {
	if c.MaxRecursionDepth < 10 || c.MaxRecursionDepth > 100_000 {
		return &ConfigError{
			Field:   "MaxRecursionDepth",
			Message: "must be between 10 and 100,000",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "seqmatch: invalid config: " + e.Field + ": " + e.Message
}
