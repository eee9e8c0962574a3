package meta

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/minire/literal"
	"github.com/coregx/minire/nfa"
)

// Engine is a compiled pattern bound to an execution strategy.
//
// An Engine is immutable after Compile and safe for concurrent use.
type Engine struct {
	pattern     string
	prog        *nfa.Program
	strategy    nfa.Strategy
	vm          nfa.Engine
	literals    *literal.Seq           // nil unless the language is finite
	ahoCorasick *ahocorasick.Automaton // nil unless literals is set
}

// Pattern returns the source pattern.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Program returns the compiled program. It must not be modified.
func (e *Engine) Program() *nfa.Program {
	return e.prog
}

// Strategy returns the execution strategy.
func (e *Engine) Strategy() nfa.Strategy {
	return e.strategy
}

// Literals returns the finite language of the pattern used by the literal
// fast path, or nil when the fast path is not in use.
func (e *Engine) Literals() *literal.Seq {
	return e.literals
}

// MatchAt reports whether the pattern matches a prefix of text[at:].
// at is a byte offset with 0 <= at <= len(text).
func (e *Engine) MatchAt(text string, at int) (bool, error) {
	ok, err := e.vm.MatchAt(text, at)
	if err != nil {
		return false, e.evalError(err)
	}
	return ok, nil
}

// Match reports whether the pattern matches a prefix of text.
func (e *Engine) Match(text string) (bool, error) {
	return e.MatchAt(text, 0)
}

// Search reports whether the pattern matches starting at any offset of text.
func (e *Engine) Search(text string) (bool, error) {
	if e.ahoCorasick != nil {
		return e.ahoCorasick.IsMatch([]byte(text)), nil
	}
	start, err := e.SearchIndex(text)
	if err != nil {
		return false, err
	}
	return start >= 0, nil
}

// SearchIndex returns the smallest byte offset at which the pattern
// matches, or -1.
func (e *Engine) SearchIndex(text string) (int, error) {
	return e.SearchIndexAt(text, 0)
}

// SearchIndexAt is SearchIndex starting at byte offset at.
func (e *Engine) SearchIndexAt(text string, at int) (int, error) {
	start, err := e.vm.SearchAt(text, at)
	if err != nil {
		return -1, e.evalError(err)
	}
	return start, nil
}

func (e *Engine) evalError(err error) error {
	return &Error{Stage: StageEvaluate, Pattern: e.pattern, Err: err}
}
