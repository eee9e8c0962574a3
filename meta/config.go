// Package meta implements the engine facade that turns a pattern string into
// a ready-to-run matcher.
//
// The facade coordinates the pipeline stages:
//   - Parse: pattern string to syntax tree (package syntax)
//   - Compile: syntax tree to program (package nfa)
//   - Evaluate: program against text, by the configured Strategy
//
// Patterns whose language is a small finite set of strings, such as
// abc|def or a(b|c)d, additionally get an Aho-Corasick automaton that
// answers unanchored searches without running a virtual machine.
//
// Errors from every stage are wrapped in *Error, which records the stage and
// the pattern and unwraps to the underlying sentinel or typed error.
package meta

import (
	"math"

	"github.com/coregx/minire/nfa"
)

// Config controls engine behavior and resource limits.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.Strategy = nfa.Backtrack
//	engine, err := meta.CompileWithConfig("(ab|de)+", config)
type Config struct {
	// Strategy selects the virtual machine.
	// Default: nfa.SetSimulation
	Strategy nfa.Strategy

	// EnableLiteralFastPath enables the Aho-Corasick automaton for patterns
	// whose language is a finite set of non-empty strings. It only affects
	// Search.
	// Default: true
	EnableLiteralFastPath bool

	// MaxLiterals limits the number of strings extracted for the fast path.
	// Patterns with larger languages run on the virtual machine.
	// Default: 64
	MaxLiterals int

	// MaxBacktrackDepth caps the work stack of the backtracking engine.
	// Zero derives the limit from program and input size.
	// Default: 0
	MaxBacktrackDepth int

	// MaxInsts caps the size of the compiled program.
	// Default: math.MaxInt32
	MaxInsts int
}

// DefaultConfig returns a configuration with sensible defaults.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnableLiteralFastPath = false // always run the virtual machine
func DefaultConfig() Config {
	return Config{
		Strategy:              nfa.SetSimulation,
		EnableLiteralFastPath: true,
		MaxLiterals:           64,
		MaxBacktrackDepth:     0,
		MaxInsts:              math.MaxInt32,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges:
//   - Strategy: nfa.Backtrack or nfa.SetSimulation
//   - MaxLiterals: 1 to 1,000 (only checked with the fast path enabled)
//   - MaxBacktrackDepth: 0 or more
//   - MaxInsts: 2 or more
func (c Config) Validate() error {
	if c.Strategy != nfa.Backtrack && c.Strategy != nfa.SetSimulation {
		return &ConfigError{
			Field:   "Strategy",
			Message: "must be backtrack or pike, got " + c.Strategy.String(),
		}
	}

	if c.EnableLiteralFastPath {
		if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
			return &ConfigError{
				Field:   "MaxLiterals",
				Message: "must be between 1 and 1,000",
			}
		}
	}

	if c.MaxBacktrackDepth < 0 {
		return &ConfigError{
			Field:   "MaxBacktrackDepth",
			Message: "must not be negative",
		}
	}

	// One instruction for the character, one for match.
	if c.MaxInsts < 2 {
		return &ConfigError{
			Field:   "MaxInsts",
			Message: "must be at least 2",
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
	return "minire: invalid config: " + e.Field + ": " + e.Message
}
