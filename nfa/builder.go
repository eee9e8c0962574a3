package nfa

import (
	"fmt"
	"math"

	"github.com/coregx/minire/internal/conv"
)

// Builder constructs programs incrementally. Instructions are appended at
// the program counter, which only advances through conv.Inc; forward
// references are emitted with a placeholder target and patched by address
// once the target is known.
type Builder struct {
	insts    []Inst
	pc       int
	maxInsts int
}

// NewBuilder creates a new builder limited only by the address space
func NewBuilder() *Builder {
	return NewBuilderWithLimit(math.MaxInt)
}

// NewBuilderWithLimit creates a builder that fails with ErrPCOverflow once
// a program would exceed maxInsts instructions.
func NewBuilderWithLimit(maxInsts int) *Builder {
	return &Builder{
		insts:    make([]Inst, 0, 16),
		maxInsts: maxInsts,
	}
}

// PC returns the address of the next instruction to be emitted
func (b *Builder) PC() int {
	return b.pc
}

// Len returns the number of instructions emitted so far
func (b *Builder) Len() int {
	return len(b.insts)
}

func (b *Builder) emit(inst Inst) (int, error) {
	addr := b.pc
	next, ok := conv.Inc(addr)
	if !ok || next > b.maxInsts {
		return addr, ErrPCOverflow
	}
	b.insts = append(b.insts, inst)
	b.pc = next
	return addr, nil
}

// AddChar emits a char instruction and returns its address
func (b *Builder) AddChar(c rune) (int, error) {
	return b.emit(Inst{Op: InstChar, Char: c})
}

// AddMatch emits a match instruction and returns its address
func (b *Builder) AddMatch() (int, error) {
	return b.emit(Inst{Op: InstMatch})
}

// AddJump emits a jump to target and returns its address
func (b *Builder) AddJump(target int) (int, error) {
	return b.emit(Inst{Op: InstJump, X: target})
}

// AddSplit emits a split to x (preferred) and y and returns its address
func (b *Builder) AddSplit(x, y int) (int, error) {
	return b.emit(Inst{Op: InstSplit, X: x, Y: y})
}

func (b *Builder) at(addr int, op InstOp) (*Inst, error) {
	if addr < 0 || addr >= len(b.insts) {
		return nil, &BuildError{Message: "address out of bounds", Addr: addr}
	}
	inst := &b.insts[addr]
	if inst.Op != op {
		return nil, &BuildError{
			Message: fmt.Sprintf("expected %s, got %s", op, inst.Op),
			Addr:    addr,
		}
	}
	return inst, nil
}

// PatchJump sets the target of the jump at addr.
func (b *Builder) PatchJump(addr, target int) error {
	inst, err := b.at(addr, InstJump)
	if err != nil {
		return err
	}
	inst.X = target
	return nil
}

// PatchSplit sets both targets of the split at addr.
func (b *Builder) PatchSplit(addr, x, y int) error {
	inst, err := b.at(addr, InstSplit)
	if err != nil {
		return err
	}
	inst.X, inst.Y = x, y
	return nil
}

// PatchSplitY sets the second target of the split at addr.
func (b *Builder) PatchSplitY(addr, y int) error {
	inst, err := b.at(addr, InstSplit)
	if err != nil {
		return err
	}
	inst.Y = y
	return nil
}

// Build validates and returns the program. The builder must not be used
// afterwards.
func (b *Builder) Build() (*Program, error) {
	prog := &Program{Insts: b.insts}
	if err := prog.Validate(); err != nil {
		return nil, err
	}
	return prog, nil
}
