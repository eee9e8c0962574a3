package nfa

import (
	"unicode/utf8"

	"github.com/coregx/minire/internal/conv"
	"github.com/coregx/minire/internal/sparse"
)

// PikeVM executes a program by Thompson simulation.
//
// It keeps the list of threads alive at the current input position, each a
// char instruction waiting for input. Every input character advances all
// threads at once; the epsilon-closure of the survivors becomes the next
// list. A sparse set deduplicates addresses within one position, so every
// address is processed at most once per character and loops introduced by
// star cannot spin. The cost is O(len(program) * len(input)) for any
// pattern.
//
// The PikeVM answers as soon as any thread reaches match; it does not rank
// competing matches beyond the start offset.
//
// A PikeVM is immutable and safe for concurrent use; every call allocates
// its own thread lists.
type PikeVM struct {
	prog  *Program
	first *CharSet
}

// thread is a char instruction waiting for input, tagged with the offset at
// which its match attempt started.
type thread struct {
	pc    int
	start int
}

// pikeState holds the mutable per-call state of a PikeVM run.
type pikeState struct {
	insts   []Inst
	clist   []thread
	nlist   []thread
	visited *sparse.SparseSet
	stack   []int
}

// NewPikeVM creates a new PikeVM for executing the given program
func NewPikeVM(prog *Program) *PikeVM {
	return &PikeVM{
		prog:  prog,
		first: FirstChars(prog),
	}
}

func (p *PikeVM) newState() *pikeState {
	capacity := max(p.prog.Len(), 16)
	return &pikeState{
		insts:   p.prog.Insts,
		clist:   make([]thread, 0, capacity),
		nlist:   make([]thread, 0, capacity),
		visited: sparse.NewSparseSet(conv.IntToUint32(p.prog.Len())),
		stack:   make([]int, 0, capacity),
	}
}

// addThread appends to list the char instructions in the epsilon-closure of
// pc that are not yet visited at this position. It returns true as soon as
// the closure reaches match. Split targets are explored preferred-first so
// list stays in priority order.
func (s *pikeState) addThread(list *[]thread, pc, start int) bool {
	s.stack = append(s.stack[:0], pc)
	for len(s.stack) > 0 {
		n := len(s.stack)
		pc := s.stack[n-1]
		s.stack = s.stack[:n-1]

		if !s.visited.Insert(conv.IntToUint32(pc)) {
			continue
		}
		inst := &s.insts[pc]
		switch inst.Op {
		case InstMatch:
			return true
		case InstChar:
			*list = append(*list, thread{pc: pc, start: start})
		case InstJump:
			s.stack = append(s.stack, inst.X)
		case InstSplit:
			s.stack = append(s.stack, inst.Y, inst.X)
		}
	}
	return false
}

// step advances every thread in clist over r into nlist. It returns the
// start offset of the first thread whose successor closure reaches match,
// or -1.
func (s *pikeState) step(r rune) (int, error) {
	s.visited.Clear()
	s.nlist = s.nlist[:0]
	for _, t := range s.clist {
		inst := &s.insts[t.pc]
		if inst.Op != InstChar || inst.Char != r {
			continue
		}
		next, ok := conv.Inc(t.pc)
		if !ok {
			return -1, ErrPCOverflow
		}
		if s.addThread(&s.nlist, next, t.start) {
			return t.start, nil
		}
	}
	return -1, nil
}

func (s *pikeState) swap() {
	s.clist, s.nlist = s.nlist, s.clist[:0]
}

// MatchAt reports whether the program matches a prefix of text[at:].
func (p *PikeVM) MatchAt(text string, at int) (bool, error) {
	if err := checkOffset(text, at); err != nil {
		return false, err
	}
	if !mayStartAt(p.first, text, at) {
		return false, nil
	}

	s := p.newState()
	if s.addThread(&s.clist, 0, at) {
		return true, nil
	}

	off := at
	for len(s.clist) > 0 && off < len(text) {
		r, width := utf8.DecodeRuneInString(text[off:])
		start, err := s.step(r)
		if err != nil {
			return false, err
		}
		if start >= 0 {
			return true, nil
		}
		s.swap()

		var ok bool
		if off, ok = conv.Add(off, width); !ok {
			return false, ErrOffsetOverflow
		}
	}
	return false, nil
}

// SearchAt returns the smallest offset >= at from which the program
// matches, or -1 if it matches nowhere.
//
// All start offsets are simulated in a single pass: a fresh thread is
// seeded at every offset behind the threads already running, so the thread
// list stays ordered by start offset. When a thread matches, threads with
// the same or a later start are dropped and seeding stops; the remaining
// earlier threads run on until they match or die.
func (p *PikeVM) SearchAt(text string, at int) (int, error) {
	if err := checkOffset(text, at); err != nil {
		return -1, err
	}

	s := p.newState()
	best := -1
	off := at
	for {
		if best < 0 && mayStartAt(p.first, text, off) {
			if s.addThread(&s.clist, 0, off) {
				best = off
				s.clist = dropFrom(s.clist, best)
			}
		}

		if len(s.clist) == 0 {
			if best >= 0 || off >= len(text) {
				return best, nil
			}
			// Nothing running; jump to the next possible start.
			_, width := utf8.DecodeRuneInString(text[off:])
			next, ok := conv.Add(off, width)
			if !ok {
				return -1, ErrOffsetOverflow
			}
			if off = nextStart(p.first, text, next); off < 0 {
				return -1, nil
			}
			s.visited.Clear()
			continue
		}

		if off >= len(text) {
			return best, nil
		}
		r, width := utf8.DecodeRuneInString(text[off:])
		start, err := s.step(r)
		if err != nil {
			return -1, err
		}
		if start >= 0 {
			best = start
			s.nlist = dropFrom(s.nlist, best)
		}
		s.swap()

		var ok bool
		if off, ok = conv.Add(off, width); !ok {
			return -1, ErrOffsetOverflow
		}
	}
}

// Search is SearchAt from offset 0.
func (p *PikeVM) Search(text string) (int, error) {
	return p.SearchAt(text, 0)
}

// dropFrom truncates list, ordered by start offset, to the threads that
// started before start.
func dropFrom(list []thread, start int) []thread {
	for i, t := range list {
		if t.start >= start {
			return list[:i]
		}
	}
	return list
}
