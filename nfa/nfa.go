// Package nfa compiles syntax trees into byte-code programs for a small
// non-deterministic automaton and executes them.
//
// A Program is a flat, address-indexed sequence of four instructions:
//
//	char c      consume one input character equal to c
//	match       accept
//	jump x      continue at x
//	split x, y  continue at both x and y, x preferred
//
// Two engines run the same program: the Backtracker explores alternatives
// depth-first in priority order, the PikeVM advances a deduplicated set of
// threads in lockstep over the input.
package nfa

import (
	"fmt"
	"strings"
)

// InstOp identifies the kind of an instruction.
type InstOp uint8

const (
	// InstChar consumes one character equal to Inst.Char.
	InstChar InstOp = iota

	// InstMatch accepts.
	InstMatch

	// InstJump transfers control to Inst.X without consuming input.
	InstJump

	// InstSplit continues at Inst.X and Inst.Y, X preferred.
	InstSplit
)

// String returns a human-readable representation of the InstOp
func (op InstOp) String() string {
	switch op {
	case InstChar:
		return "char"
	case InstMatch:
		return "match"
	case InstJump:
		return "jump"
	case InstSplit:
		return "split"
	default:
		return fmt.Sprintf("Unknown(%d)", op)
	}
}

// Inst is a single program instruction.
type Inst struct {
	Op   InstOp
	Char rune // InstChar
	X    int  // InstJump target, InstSplit preferred target
	Y    int  // InstSplit second target
}

// String returns a human-readable representation of the instruction
func (i Inst) String() string {
	switch i.Op {
	case InstChar:
		return fmt.Sprintf("char %c", i.Char)
	case InstMatch:
		return "match"
	case InstJump:
		return fmt.Sprintf("jump %04d", i.X)
	case InstSplit:
		return fmt.Sprintf("split %04d, %04d", i.X, i.Y)
	default:
		return i.Op.String()
	}
}

// Program is a compiled pattern. Addresses are indexes into Insts and stay
// valid for the lifetime of the program. A Program is never modified after
// compilation and may be shared between goroutines.
type Program struct {
	Insts []Inst
}

// Len returns the number of instructions
func (p *Program) Len() int {
	return len(p.Insts)
}

// String returns the program listing, one instruction per line.
func (p *Program) String() string {
	var b strings.Builder
	for pc, inst := range p.Insts {
		fmt.Fprintf(&b, "%04d: %s\n", pc, inst)
	}
	return b.String()
}

// Validate checks that the program is well-formed:
//   - it is non-empty and its last instruction is match
//   - every jump and split target is a valid address
func (p *Program) Validate() error {
	n := len(p.Insts)
	if n == 0 {
		return &BuildError{Message: "empty program", Addr: -1}
	}
	if p.Insts[n-1].Op != InstMatch {
		return &BuildError{
			Message: fmt.Sprintf("last instruction is %s, want match", p.Insts[n-1].Op),
			Addr:    n - 1,
		}
	}
	inRange := func(addr int) bool { return addr >= 0 && addr < n }
	for pc, inst := range p.Insts {
		switch inst.Op {
		case InstChar, InstMatch:
		case InstJump:
			if !inRange(inst.X) {
				return &BuildError{
					Message: fmt.Sprintf("invalid jump target %d", inst.X),
					Addr:    pc,
				}
			}
		case InstSplit:
			if !inRange(inst.X) || !inRange(inst.Y) {
				return &BuildError{
					Message: fmt.Sprintf("invalid split targets %d, %d", inst.X, inst.Y),
					Addr:    pc,
				}
			}
		default:
			return &BuildError{
				Message: fmt.Sprintf("unknown instruction %s", inst.Op),
				Addr:    pc,
			}
		}
	}
	return nil
}
