package literal

import (
	"unicode/utf8"

	"github.com/coregx/minire/syntax"
)

// ExtractorConfig configures literal extraction limits.
type ExtractorConfig struct {
	// MaxLiterals limits the size of the extracted set. Alternations
	// multiply under concatenation: (a|b)(c|d)(e|f) already has eight
	// strings. Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the length in bytes of each extracted literal.
	// Default: 256.
	MaxLiteralLen int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 256,
	}
}

// Extractor computes the complete literal language of a syntax tree.
//
// Unlike a prefix or suffix extractor, the result is exact: a string is in
// the returned Seq if and only if the whole pattern matches exactly that
// string. Trees containing star or plus have infinite languages and yield
// no result.
//
// Example:
//
//	node := syntax.MustParse("a(b|c)d")
//	seq, ok := literal.New(literal.DefaultConfig()).Extract(node)
//	// ok == true, seq = ["abd" "acd"]
type Extractor struct {
	config ExtractorConfig
}

// New creates a new Extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// Extract returns the literal language of node, in match priority order.
// ok is false when the language is infinite or exceeds the configured
// limits.
func (e *Extractor) Extract(node *syntax.Node) (seq *Seq, ok bool) {
	lits, ok := e.extract(node)
	if !ok {
		return nil, false
	}
	seq = &Seq{literals: make([]Literal, 0, len(lits))}
	for _, lit := range lits {
		seq.add(Literal{Bytes: []byte(lit)})
	}
	return seq, true
}

// Extract is a convenience wrapper using DefaultConfig.
func Extract(node *syntax.Node) (*Seq, bool) {
	return New(DefaultConfig()).Extract(node)
}

// extract works on strings so intermediate products stay immutable.
func (e *Extractor) extract(node *syntax.Node) ([]string, bool) {
	switch node.Op {
	case syntax.OpChar:
		if utf8.RuneLen(node.Char) > e.config.MaxLiteralLen {
			return nil, false
		}
		return []string{string(node.Char)}, true

	case syntax.OpSeq:
		acc := []string{""}
		for _, sub := range node.Subs {
			lits, ok := e.extract(sub)
			if !ok {
				return nil, false
			}
			if acc, ok = e.cross(acc, lits); !ok {
				return nil, false
			}
		}
		return acc, true

	case syntax.OpOr:
		left, ok := e.extract(node.Subs[0])
		if !ok {
			return nil, false
		}
		right, ok := e.extract(node.Subs[1])
		if !ok {
			return nil, false
		}
		return e.union(left, right)

	case syntax.OpQuestion:
		// x? prefers x over skipping it.
		sub, ok := e.extract(node.Subs[0])
		if !ok {
			return nil, false
		}
		return e.union(sub, []string{""})

	default:
		// Star and plus repeat without bound.
		return nil, false
	}
}

// cross returns every concatenation a+b, a taken from left and b from
// right, in priority order.
func (e *Extractor) cross(left, right []string) ([]string, bool) {
	if len(left)*len(right) > e.config.MaxLiterals {
		return nil, false
	}
	out := make([]string, 0, len(left)*len(right))
	for _, a := range left {
		for _, b := range right {
			if len(a)+len(b) > e.config.MaxLiteralLen {
				return nil, false
			}
			out = append(out, a+b)
		}
	}
	return out, true
}

// union appends the strings of right not already in left.
func (e *Extractor) union(left, right []string) ([]string, bool) {
	seen := make(map[string]struct{}, len(left)+len(right))
	out := make([]string, 0, len(left)+len(right))
	for _, lits := range [][]string{left, right} {
		for _, lit := range lits {
			if _, dup := seen[lit]; dup {
				continue
			}
			seen[lit] = struct{}{}
			out = append(out, lit)
		}
	}
	if len(out) > e.config.MaxLiterals {
		return nil, false
	}
	return out, true
}
