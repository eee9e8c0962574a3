package syntax

import (
	"strconv"
	"strings"
)

// Op identifies the kind of a syntax tree node.
type Op uint8

const (
	// OpChar matches exactly one character, Node.Char.
	OpChar Op = iota + 1

	// OpSeq matches Subs in order. Subs is never empty.
	OpSeq

	// OpOr matches Subs[0] or, failing that, Subs[1].
	OpOr

	// OpStar matches zero or more repetitions of Subs[0].
	OpStar

	// OpPlus matches one or more repetitions of Subs[0].
	OpPlus

	// OpQuestion matches zero or one occurrence of Subs[0].
	OpQuestion
)

var opNames = [...]string{
	OpChar:     "Char",
	OpSeq:      "Seq",
	OpOr:       "Or",
	OpStar:     "Star",
	OpPlus:     "Plus",
	OpQuestion: "Question",
}

// String returns the name of the operator.
func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// Node is a node of the syntax tree produced by Parse.
// Every node is owned by exactly one parent; trees are never shared.
type Node struct {
	Op   Op
	Char rune    // OpChar only
	Subs []*Node // operands: OpSeq (>=1), OpOr (2), quantifiers (1)
}

// NewChar returns a node matching the character c.
func NewChar(c rune) *Node {
	return &Node{Op: OpChar, Char: c}
}

// NewSeq returns the concatenation of subs.
func NewSeq(subs ...*Node) *Node {
	return &Node{Op: OpSeq, Subs: subs}
}

// NewOr returns the alternation of a and b, a preferred.
func NewOr(a, b *Node) *Node {
	return &Node{Op: OpOr, Subs: []*Node{a, b}}
}

// NewRepeat wraps sub in the quantifier op (OpStar, OpPlus or OpQuestion).
func NewRepeat(op Op, sub *Node) *Node {
	return &Node{Op: op, Subs: []*Node{sub}}
}

// IsMeta reports whether c has a special meaning in a pattern and must be
// escaped with a backslash to be matched literally.
func IsMeta(c rune) bool {
	switch c {
	case '\\', '(', ')', '|', '+', '*', '?':
		return true
	}
	return false
}

// String returns a pattern equivalent to the tree. Alternations are always
// parenthesised so the shape of the tree is visible.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	switch n.Op {
	case OpChar:
		if IsMeta(n.Char) {
			b.WriteByte('\\')
		}
		b.WriteRune(n.Char)
	case OpSeq:
		for _, sub := range n.Subs {
			sub.write(b)
		}
	case OpOr:
		b.WriteByte('(')
		n.Subs[0].write(b)
		b.WriteByte('|')
		n.Subs[1].write(b)
		b.WriteByte(')')
	case OpStar, OpPlus, OpQuestion:
		sub := n.Subs[0]
		if sub.Op == OpSeq && len(sub.Subs) > 1 {
			b.WriteByte('(')
			sub.write(b)
			b.WriteByte(')')
		} else {
			sub.write(b)
		}
		switch n.Op {
		case OpStar:
			b.WriteByte('*')
		case OpPlus:
			b.WriteByte('+')
		default:
			b.WriteByte('?')
		}
	}
}

// Equal reports whether n and m describe the same tree.
func (n *Node) Equal(m *Node) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.Op != m.Op || n.Char != m.Char || len(n.Subs) != len(m.Subs) {
		return false
	}
	for i := range n.Subs {
		if !n.Subs[i].Equal(m.Subs[i]) {
			return false
		}
	}
	return true
}
