// Package minire provides a minimal regular expression engine.
//
// The pattern language is deliberately small:
//   - literal characters, matched exactly (any Unicode character)
//   - concatenation: ab
//   - alternation: a|b, the left branch preferred
//   - grouping: (ab)
//   - quantifiers: a* (zero or more), a+ (one or more), a? (zero or one)
//   - escapes: \\ \( \) \| \+ \* \? match the character itself
//
// There are no character classes, anchors, wildcards or captures. A pattern
// is parsed into a syntax tree, compiled into a byte-code program of char,
// match, jump and split instructions, and executed by one of two virtual
// machines:
//   - Backtrack: depth-first, priority ordered, exponential in the worst case
//   - SetSimulation: Thompson simulation, O(len(program) * len(text))
//
// Matching is anchored at the start of the text and succeeds when any prefix
// matches; Search lifts the anchor.
//
// Basic usage:
//
//	re, err := minire.Compile("(ab|de)+")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ok, _ := re.Match("abcdcd") // true: "ab" is a matching prefix
//
// One-shot evaluation with an explicit strategy:
//
//	ok, err := minire.Match("abc?", "ab", minire.Backtrack)
//
// Errors carry the stage that failed. Parse errors unwrap to *syntax.Error
// with the offending position; resource limits unwrap to sentinels such as
// nfa.ErrBacktrackLimit.
package minire

import (
	"strings"

	"github.com/coregx/minire/meta"
	"github.com/coregx/minire/nfa"
	"github.com/coregx/minire/syntax"
)

// Strategy selects the virtual machine that executes a pattern.
type Strategy = nfa.Strategy

// Execution strategies.
const (
	Backtrack     = nfa.Backtrack
	SetSimulation = nfa.SetSimulation
)

// Config is the compilation configuration. See meta.Config.
type Config = meta.Config

// Regex is a compiled pattern.
//
// A Regex is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	re := minire.MustCompile("abc|def")
//	ok, _ := re.Search("xxdef") // true
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile parses a pattern and compiles it with DefaultConfig.
//
// Example:
//
//	re, err := minire.Compile("abc)")
//	// err: error parsing pattern "abc)": unexpected ) at position 3
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
//
// Example:
//
//	var greeting = minire.MustCompile("hel+o")
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("minire: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := minire.DefaultConfig()
//	config.Strategy = minire.Backtrack
//	re, err := minire.CompileWithConfig("(abc)*", config)
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() Config {
	return meta.DefaultConfig()
}

// Match compiles pattern and reports whether it matches a prefix of text,
// using strategy.
func Match(pattern, text string, strategy Strategy) (bool, error) {
	re, err := compileFor(pattern, strategy)
	if err != nil {
		return false, err
	}
	return re.Match(text)
}

// Search compiles pattern and reports whether it matches at any offset of
// text, using strategy.
func Search(pattern, text string, strategy Strategy) (bool, error) {
	re, err := compileFor(pattern, strategy)
	if err != nil {
		return false, err
	}
	return re.Search(text)
}

func compileFor(pattern string, strategy Strategy) (*Regex, error) {
	config := DefaultConfig()
	config.Strategy = strategy
	return CompileWithConfig(pattern, config)
}

// QuoteMeta returns a pattern that matches the literal text s.
//
// Example:
//
//	minire.QuoteMeta("a+b") // `a\+b`
func QuoteMeta(s string) string {
	n := 0
	for _, c := range s {
		if syntax.IsMeta(c) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + n)
	for _, c := range s {
		if syntax.IsMeta(c) {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Match reports whether the pattern matches a prefix of text.
//
// Example:
//
//	re := minire.MustCompile("abc?")
//	ok, _ := re.Match("ab") // true
func (r *Regex) Match(text string) (bool, error) {
	return r.engine.Match(text)
}

// MatchAt reports whether the pattern matches a prefix of text[at:].
// at must be a byte offset with 0 <= at <= len(text).
func (r *Regex) MatchAt(text string, at int) (bool, error) {
	return r.engine.MatchAt(text, at)
}

// Search reports whether the pattern matches starting at any offset.
func (r *Regex) Search(text string) (bool, error) {
	return r.engine.Search(text)
}

// SearchIndex returns the byte offset of the leftmost position at which the
// pattern matches, or -1.
//
// Example:
//
//	re := minire.MustCompile("cd")
//	i, _ := re.SearchIndex("abcdcd") // 2
func (r *Regex) SearchIndex(text string) (int, error) {
	return r.engine.SearchIndex(text)
}

// SearchIndexAt is SearchIndex starting at byte offset at.
func (r *Regex) SearchIndexAt(text string, at int) (int, error) {
	return r.engine.SearchIndexAt(text, at)
}

// Strategy returns the execution strategy.
func (r *Regex) Strategy() Strategy {
	return r.engine.Strategy()
}

// Program returns the compiled program. It must not be modified.
func (r *Regex) Program() *nfa.Program {
	return r.engine.Program()
}

// String returns the source pattern.
func (r *Regex) String() string {
	return r.pattern
}
