package nfa

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// CharSet is the set of characters a match can start with.
// Used to skip start offsets that cannot begin a match.
type CharSet struct {
	runes []rune    // sorted, unique
	ascii [128]bool // fast path for runes below utf8.RuneSelf
}

// FirstChars returns the set of characters every match of prog starts with.
// Returns nil if prog can match the empty string, since then any offset,
// including the end of input, may start a match.
func FirstChars(prog *Program) *CharSet {
	seen := make([]bool, prog.Len())
	stack := []int{0}
	set := &CharSet{}

	for len(stack) > 0 {
		pc := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[pc] {
			continue
		}
		seen[pc] = true

		inst := &prog.Insts[pc]
		switch inst.Op {
		case InstMatch:
			return nil
		case InstChar:
			set.add(inst.Char)
		case InstJump:
			stack = append(stack, inst.X)
		case InstSplit:
			stack = append(stack, inst.Y, inst.X)
		}
	}

	slices.Sort(set.runes)
	set.runes = slices.Compact(set.runes)
	return set
}

func (s *CharSet) add(r rune) {
	if r >= 0 && r < utf8.RuneSelf {
		s.ascii[r] = true
	}
	s.runes = append(s.runes, r)
}

// Contains returns true if r can start a match
func (s *CharSet) Contains(r rune) bool {
	if r >= 0 && r < utf8.RuneSelf {
		return s.ascii[r]
	}
	_, found := slices.BinarySearch(s.runes, r)
	return found
}

// Len returns the number of characters in the set
func (s *CharSet) Len() int {
	return len(s.runes)
}

// Runes returns the characters in ascending order.
func (s *CharSet) Runes() []rune {
	return slices.Clone(s.runes)
}

// Index returns the byte offset of the first character of text contained in
// the set, or -1 if there is none.
func (s *CharSet) Index(text string) int {
	if len(s.runes) == 1 {
		return strings.IndexRune(text, s.runes[0])
	}
	return strings.IndexFunc(text, s.Contains)
}
