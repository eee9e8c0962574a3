// Package syntax parses patterns into syntax trees.
//
// The grammar is deliberately small:
//
//	c       literal character
//	\c      literal c, for c one of \ ( ) | + * ?
//	xy      x followed by y
//	x|y     x or y (lowest precedence, x preferred)
//	(x)     grouping
//	x*      zero or more x
//	x+      one or more x
//	x?      zero or one x
//
// Quantifiers bind tightest and apply to the immediately preceding
// character or group.
package syntax

// parser is a shift parser over two accumulators: concat collects the
// completed operands of the current alternative, alt collects the completed
// alternatives of the current group. Opening a group saves both on stack.
type parser struct {
	pattern string
	concat  []*Node
	alt     []*Node
	stack   []frame
}

type frame struct {
	concat []*Node
	alt    []*Node
}

// Parse parses pattern and returns its syntax tree.
// On failure the returned error is a *Error.
func Parse(pattern string) (*Node, error) {
	p := &parser{pattern: pattern}

	pos := 0
	escaped := false
	for _, c := range pattern {
		if escaped {
			escaped = false
			if !IsMeta(c) {
				return nil, p.error(ErrInvalidEscape, pos, c)
			}
			p.concat = append(p.concat, NewChar(c))
			pos++
			continue
		}

		switch c {
		case '\\':
			escaped = true
		case '*':
			if err := p.repeat(OpStar, pos); err != nil {
				return nil, err
			}
		case '+':
			if err := p.repeat(OpPlus, pos); err != nil {
				return nil, err
			}
		case '?':
			if err := p.repeat(OpQuestion, pos); err != nil {
				return nil, err
			}
		case '(':
			p.stack = append(p.stack, frame{concat: p.concat, alt: p.alt})
			p.concat, p.alt = nil, nil
		case ')':
			if err := p.closeGroup(pos); err != nil {
				return nil, err
			}
		case '|':
			if len(p.concat) == 0 {
				return nil, p.error(ErrNoPrev, pos, 0)
			}
			p.alt = append(p.alt, p.concatNode())
			p.concat = nil
		default:
			p.concat = append(p.concat, NewChar(c))
		}
		pos++
	}

	if escaped {
		return nil, p.error(ErrInvalidEscape, pos, 0)
	}
	if len(p.stack) > 0 {
		return nil, p.error(ErrNoRightParen, -1, 0)
	}
	if pattern == "" {
		pos = -1
	}
	return p.fold(pos)
}

// MustParse is like Parse but panics if the pattern cannot be parsed.
func MustParse(pattern string) *Node {
	n, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return n
}

func (p *parser) error(code ErrorCode, pos int, c rune) *Error {
	return &Error{Code: code, Pattern: p.pattern, Pos: pos, Char: c}
}

// repeat wraps the last completed operand in a quantifier.
func (p *parser) repeat(op Op, pos int) error {
	n := len(p.concat)
	if n == 0 {
		return p.error(ErrNoPrev, pos, 0)
	}
	p.concat[n-1] = NewRepeat(op, p.concat[n-1])
	return nil
}

// closeGroup folds the current group into one node and pushes it onto the
// enclosing concatenation.
func (p *parser) closeGroup(pos int) error {
	n := len(p.stack)
	if n == 0 {
		return p.error(ErrInvalidRightParen, pos, 0)
	}
	node, err := p.fold(pos)
	if err != nil {
		return err
	}
	outer := p.stack[n-1]
	p.stack = p.stack[:n-1]
	p.concat = append(outer.concat, node)
	p.alt = outer.alt
	return nil
}

// concatNode collapses the concatenation accumulator, which must be
// non-empty, into a single node.
func (p *parser) concatNode() *Node {
	if len(p.concat) == 1 {
		return p.concat[0]
	}
	return NewSeq(p.concat...)
}

// fold closes the last alternative and combines all alternatives.
func (p *parser) fold(pos int) (*Node, error) {
	if len(p.concat) == 0 {
		return nil, p.error(ErrEmpty, pos, 0)
	}
	return foldOr(append(p.alt, p.concatNode())), nil
}

// foldOr combines branches right-associatively so that the leftmost branch
// is tried first: [a b c] becomes Or(a, Or(b, c)).
func foldOr(branches []*Node) *Node {
	n := len(branches)
	node := branches[n-1]
	for i := n - 2; i >= 0; i-- {
		node = NewOr(branches[i], node)
	}
	return node
}
