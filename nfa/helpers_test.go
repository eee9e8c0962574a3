package nfa

import (
	"math/rand"
	"strings"

	"github.com/coregx/minire/syntax"
)

// randomTree builds a random syntax tree over the alphabet {a, b, c}.
// Quantifiers are never applied directly to quantifiers, so the rendered
// pattern is also valid stdlib regexp syntax.
func randomTree(rng *rand.Rand, depth int) *syntax.Node {
	if depth <= 0 {
		return syntax.NewChar(rune('a' + rng.Intn(3)))
	}
	switch rng.Intn(6) {
	case 0, 1:
		n := 2 + rng.Intn(2)
		subs := make([]*syntax.Node, n)
		for i := range subs {
			subs[i] = randomTree(rng, depth-1)
		}
		return syntax.NewSeq(subs...)
	case 2:
		return syntax.NewOr(randomTree(rng, depth-1), randomTree(rng, depth-1))
	case 3:
		sub := randomTree(rng, depth-1)
		if isRepeat(sub) {
			return sub
		}
		ops := []syntax.Op{syntax.OpStar, syntax.OpPlus, syntax.OpQuestion}
		return syntax.NewRepeat(ops[rng.Intn(len(ops))], sub)
	default:
		return syntax.NewChar(rune('a' + rng.Intn(3)))
	}
}

func isRepeat(n *syntax.Node) bool {
	switch n.Op {
	case syntax.OpStar, syntax.OpPlus, syntax.OpQuestion:
		return true
	}
	return false
}

// nullable reports whether n matches the empty string.
func nullable(n *syntax.Node) bool {
	switch n.Op {
	case syntax.OpChar:
		return false
	case syntax.OpSeq:
		for _, sub := range n.Subs {
			if !nullable(sub) {
				return false
			}
		}
		return true
	case syntax.OpOr:
		return nullable(n.Subs[0]) || nullable(n.Subs[1])
	case syntax.OpStar, syntax.OpQuestion:
		return true
	default:
		return nullable(n.Subs[0])
	}
}

// hasEmptyLoop reports whether n contains a star or plus whose body can
// match the empty string. The backtracker cannot terminate on those.
func hasEmptyLoop(n *syntax.Node) bool {
	if (n.Op == syntax.OpStar || n.Op == syntax.OpPlus) && nullable(n.Subs[0]) {
		return true
	}
	for _, sub := range n.Subs {
		if hasEmptyLoop(sub) {
			return true
		}
	}
	return false
}

// randomPatterns returns n random patterns without empty loops.
func randomPatterns(n int, seed int64) []string {
	rng := rand.New(rand.NewSource(seed))
	patterns := make([]string, 0, n)
	for len(patterns) < n {
		tree := randomTree(rng, 1+rng.Intn(4))
		if hasEmptyLoop(tree) {
			continue
		}
		patterns = append(patterns, tree.String())
	}
	return patterns
}

// randomInputs returns n random strings over {a, b, c, d} of length <= maxLen.
func randomInputs(n, maxLen int, seed int64) []string {
	rng := rand.New(rand.NewSource(seed))
	inputs := make([]string, n)
	for i := range inputs {
		var b strings.Builder
		for j := rng.Intn(maxLen + 1); j > 0; j-- {
			b.WriteByte(byte('a' + rng.Intn(4)))
		}
		inputs[i] = b.String()
	}
	return inputs
}
