package nfa

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Strategy selects the engine that executes a program.
//
// Both engines accept the same inputs on ordinary patterns. They differ in
// cost and failure modes:
//   - Backtrack explores alternatives depth-first in priority order. Its run
//     time is exponential on patterns like (a|a)*b and it fails with
//     ErrBacktrackLimit on loops that can repeat without consuming input,
//     such as (a*)*.
//   - SetSimulation advances all threads in lockstep and runs in
//     O(len(program) * len(input)) regardless of the pattern.
type Strategy uint8

const (
	// Backtrack uses the Backtracker
	Backtrack Strategy = iota

	// SetSimulation uses the PikeVM
	SetSimulation
)

// String returns the strategy name accepted by ParseStrategy
func (s Strategy) String() string {
	switch s {
	case Backtrack:
		return "backtrack"
	case SetSimulation:
		return "pike"
	default:
		return fmt.Sprintf("Strategy(%d)", s)
	}
}

// ParseStrategy maps a strategy name to a Strategy.
// Accepted names: "backtrack", "depth" for Backtrack and "pike", "pikevm",
// "set", "width" for SetSimulation.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "backtrack", "depth":
		return Backtrack, nil
	case "pike", "pikevm", "set", "width":
		return SetSimulation, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Engine executes a program against input text.
// Offsets are byte offsets into text.
type Engine interface {
	// MatchAt reports whether the program matches a prefix of text[at:].
	MatchAt(text string, at int) (bool, error)

	// SearchAt returns the smallest offset >= at from which MatchAt
	// succeeds, or -1 if there is none.
	SearchAt(text string, at int) (int, error)
}

// NewEngine returns the engine for strategy running prog.
func NewEngine(prog *Program, strategy Strategy) (Engine, error) {
	switch strategy {
	case Backtrack:
		return NewBacktracker(prog), nil
	case SetSimulation:
		return NewPikeVM(prog), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, strategy)
	}
}

// Evaluate runs prog anchored at offset at of text using strategy.
func Evaluate(prog *Program, text string, at int, strategy Strategy) (bool, error) {
	e, err := NewEngine(prog, strategy)
	if err != nil {
		return false, err
	}
	return e.MatchAt(text, at)
}

func checkOffset(text string, at int) error {
	if at < 0 || at > len(text) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidOffset, at, len(text))
	}
	return nil
}

// mayStartAt reports whether a match may start at off.
func mayStartAt(first *CharSet, text string, off int) bool {
	if first == nil {
		return true
	}
	if off >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[off:])
	return first.Contains(r)
}

// nextStart returns the first offset >= off at which a match may start,
// or -1 if there is none.
func nextStart(first *CharSet, text string, off int) int {
	if first == nil {
		return off
	}
	if off >= len(text) {
		return -1
	}
	i := first.Index(text[off:])
	if i < 0 {
		return -1
	}
	return off + i
}
