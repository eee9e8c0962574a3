// Package literal extracts literal strings from parsed patterns.
//
// A pattern built only from characters, concatenation, alternation and the
// optional quantifier denotes a finite language: every string it can match
// can be listed. When that list is small, a multi-string searcher can answer
// "does the text contain a match" without running a virtual machine.
//
// Key concepts:
//   - A Literal is one concrete string of the language, as UTF-8 bytes
//   - A Seq is the set of alternative literals, in pattern priority order
//   - Minimize drops literals that cannot change a containment answer
package literal

import (
	"bytes"
	"sort"
	"strings"
)

// Literal is one string of a pattern's language.
type Literal struct {
	// Bytes is the UTF-8 encoding of the string.
	Bytes []byte
}

// NewLiteral creates a Literal from b.
func NewLiteral(b []byte) Literal {
	return Literal{Bytes: b}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// IsEmpty reports whether the literal is the empty string.
func (l Literal) IsEmpty() bool {
	return len(l.Bytes) == 0
}

// String returns the literal as a string.
func (l Literal) String() string {
	return string(l.Bytes)
}

// Seq is an ordered set of literals. Duplicates are never stored.
type Seq struct {
	literals []Literal
}

// NewSeq creates a Seq from lits, dropping duplicates after the first.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("abc")),
//	    literal.NewLiteral([]byte("def")),
//	)
//	fmt.Println(seq.Len()) // Output: 2
func NewSeq(lits ...Literal) *Seq {
	s := &Seq{literals: make([]Literal, 0, len(lits))}
	for _, lit := range lits {
		s.add(lit)
	}
	return s
}

// add appends lit unless an equal literal is already present.
func (s *Seq) add(lit Literal) {
	for _, have := range s.literals {
		if bytes.Equal(have.Bytes, lit.Bytes) {
			return
		}
	}
	s.literals = append(s.literals, lit)
}

// Len returns the number of literals.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the i-th literal. It panics if i is out of range.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty reports whether the sequence holds no literals.
func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// HasEmpty reports whether the empty string is one of the literals.
// A pattern whose language contains it matches at every offset.
func (s *Seq) HasEmpty() bool {
	if s == nil {
		return false
	}
	for _, lit := range s.literals {
		if lit.IsEmpty() {
			return true
		}
	}
	return false
}

// Bytes returns the literals as byte slices, in order.
func (s *Seq) Bytes() [][]byte {
	out := make([][]byte, s.Len())
	for i := range out {
		out[i] = s.literals[i].Bytes
	}
	return out
}

// Strings returns the literals as strings, in order.
func (s *Seq) Strings() []string {
	out := make([]string, s.Len())
	for i := range out {
		out[i] = s.literals[i].String()
	}
	return out
}

// Clone returns a deep copy of the sequence.
func (s *Seq) Clone() *Seq {
	if s == nil {
		return nil
	}
	c := &Seq{literals: make([]Literal, len(s.literals))}
	for i, lit := range s.literals {
		c.literals[i] = Literal{Bytes: bytes.Clone(lit.Bytes)}
	}
	return c
}

// Minimize removes every literal that contains another literal of the
// sequence as a substring. Text contains some literal of the result exactly
// when it contains some literal of the full sequence, so the minimized set is
// enough for containment tests. The survivors are ordered shortest first.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("abc")),
//	    literal.NewLiteral([]byte("xabcx")),
//	    literal.NewLiteral([]byte("de")),
//	)
//	seq.Minimize()
//	fmt.Println(seq.Strings()) // Output: [de abc]
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}

	sort.SliceStable(s.literals, func(i, j int) bool {
		return len(s.literals[i].Bytes) < len(s.literals[j].Bytes)
	})

	kept := make([]Literal, 0, len(s.literals))
	for _, current := range s.literals {
		redundant := false
		for _, k := range kept {
			if bytes.Contains(current.Bytes, k.Bytes) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, current)
		}
	}
	s.literals = kept
}

// String returns a debug representation such as ["abc" "def"].
func (s *Seq) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('"')
		b.Write(s.literals[i].Bytes)
		b.WriteByte('"')
	}
	b.WriteByte(']')
	return b.String()
}
