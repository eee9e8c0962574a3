package nfa

import (
	"math"
	"unicode/utf8"

	"github.com/coregx/minire/internal/conv"
)

// Backtracker executes a program depth-first.
//
// At a split it follows the preferred target and remembers the other one;
// when a char instruction fails it resumes the most recently remembered
// alternative. Remembered alternatives live on an explicit stack, so deep
// inputs grow the heap rather than the goroutine stack.
//
// The engine does not memoize (pc, offset) pairs, so its run time is
// exponential on patterns such as (a|a)*b. Loops that can repeat without
// consuming input, such as (a*)*, grow the stack without bound and end in
// ErrBacktrackLimit.
//
// A Backtracker is immutable after configuration and safe for concurrent
// use; every call allocates its own stack.
type Backtracker struct {
	prog  *Program
	first *CharSet

	// maxDepth caps the number of remembered alternatives.
	// Zero derives the cap from the input length on each call.
	maxDepth int
}

// frame is a remembered alternative: resume at pc with input offset off.
type frame struct {
	pc  int
	off int
}

// NewBacktracker creates a new backtracker for the given program.
func NewBacktracker(prog *Program) *Backtracker {
	return &Backtracker{
		prog:  prog,
		first: FirstChars(prog),
	}
}

// SetMaxDepth caps the backtracking stack at n frames. A value <= 0
// restores the default of len(program) * (len(input)+1). Must not be called
// concurrently with searches.
func (b *Backtracker) SetMaxDepth(n int) {
	b.maxDepth = max(n, 0)
}

// MaxDepth returns the configured stack cap, 0 meaning derived per call
func (b *Backtracker) MaxDepth() int {
	return b.maxDepth
}

// depthLimit returns the stack cap for an input of n remaining bytes.
// No path that visits each (pc, offset) pair at most once is longer than
// len(program) * (n+1), and the stack never exceeds the current path.
func (b *Backtracker) depthLimit(n int) int {
	limit := math.MaxInt
	if positions, ok := conv.Inc(n); ok {
		if l, ok := conv.Mul(b.prog.Len(), positions); ok {
			limit = l
		}
	}
	if b.maxDepth > 0 && b.maxDepth < limit {
		limit = b.maxDepth
	}
	return limit
}

// MatchAt reports whether the program matches a prefix of text[at:].
func (b *Backtracker) MatchAt(text string, at int) (bool, error) {
	if err := checkOffset(text, at); err != nil {
		return false, err
	}
	if !mayStartAt(b.first, text, at) {
		return false, nil
	}
	return b.run(text, at)
}

// SearchAt returns the smallest offset >= at from which the program
// matches, or -1 if it matches nowhere.
func (b *Backtracker) SearchAt(text string, at int) (int, error) {
	if err := checkOffset(text, at); err != nil {
		return -1, err
	}
	off := at
	for {
		if off = nextStart(b.first, text, off); off < 0 {
			return -1, nil
		}
		matched, err := b.run(text, off)
		if err != nil {
			return -1, err
		}
		if matched {
			return off, nil
		}
		if off >= len(text) {
			return -1, nil
		}
		_, width := utf8.DecodeRuneInString(text[off:])
		next, ok := conv.Add(off, width)
		if !ok {
			return -1, ErrOffsetOverflow
		}
		off = next
	}
}

// Search is SearchAt from offset 0.
func (b *Backtracker) Search(text string) (int, error) {
	return b.SearchAt(text, 0)
}

// run executes the program from address 0 at offset at.
func (b *Backtracker) run(text string, at int) (bool, error) {
	insts := b.prog.Insts
	limit := b.depthLimit(len(text) - at)
	stack := make([]frame, 0, 16)

	pc, off := 0, at
	for {
		inst := &insts[pc]
		switch inst.Op {
		case InstMatch:
			return true, nil

		case InstChar:
			if off < len(text) {
				r, width := utf8.DecodeRuneInString(text[off:])
				if r == inst.Char {
					next, ok := conv.Inc(pc)
					if !ok {
						return false, ErrPCOverflow
					}
					if off, ok = conv.Add(off, width); !ok {
						return false, ErrOffsetOverflow
					}
					pc = next
					continue
				}
			}
			// Fall through to backtrack.

		case InstJump:
			pc = inst.X
			continue

		case InstSplit:
			if len(stack) >= limit {
				return false, ErrBacktrackLimit
			}
			stack = append(stack, frame{pc: inst.Y, off: off})
			pc = inst.X
			continue
		}

		n := len(stack)
		if n == 0 {
			return false, nil
		}
		pc, off = stack[n-1].pc, stack[n-1].off
		stack = stack[:n-1]
	}
}
