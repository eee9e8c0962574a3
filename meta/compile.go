package meta

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/minire/literal"
	"github.com/coregx/minire/nfa"
	"github.com/coregx/minire/syntax"
)

// Compile compiles a pattern into an Engine using DefaultConfig.
//
// Example:
//
//	engine, err := meta.Compile("(ab|de)+")
//	if err != nil {
//	    return err
//	}
//	ok, _ := engine.Match("abcdcd") // true
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern into an Engine.
//
// Steps:
//  1. Validate config
//  2. Parse pattern to a syntax tree
//  3. Extract the literal language for the fast path (optional)
//  4. Compile the tree to a program
//  5. Build the virtual machine for config.Strategy
//
// A configuration error is returned as *ConfigError; any other failure as
// *Error carrying the stage.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	node, err := syntax.Parse(pattern)
	if err != nil {
		return nil, &Error{Stage: StageParse, Pattern: pattern, Err: err}
	}

	compiler := nfa.NewCompiler(nfa.CompilerConfig{
		MaxInsts:          config.MaxInsts,
		MaxRecursionDepth: nfa.DefaultCompilerConfig().MaxRecursionDepth,
	})
	prog, err := compiler.CompileNode(node)
	if err != nil {
		return nil, &Error{Stage: StageCompile, Pattern: pattern, Err: err}
	}

	vm, err := newVM(prog, config)
	if err != nil {
		return nil, &Error{Stage: StageCompile, Pattern: pattern, Err: err}
	}

	e := &Engine{
		pattern:  pattern,
		prog:     prog,
		strategy: config.Strategy,
		vm:       vm,
	}
	if config.EnableLiteralFastPath {
		e.literals, e.ahoCorasick = buildLiteralSearcher(node, config)
	}
	return e, nil
}

// newVM returns the virtual machine for config.Strategy.
func newVM(prog *nfa.Program, config Config) (nfa.Engine, error) {
	if config.Strategy == nfa.Backtrack {
		bt := nfa.NewBacktracker(prog)
		bt.SetMaxDepth(config.MaxBacktrackDepth)
		return bt, nil
	}
	return nfa.NewEngine(prog, config.Strategy)
}

// buildLiteralSearcher returns the literal language of node and an
// automaton recognizing any of its strings, or nils when the language is
// infinite, too large, or contains the empty string.
func buildLiteralSearcher(node *syntax.Node, config Config) (*literal.Seq, *ahocorasick.Automaton) {
	extractor := literal.New(literal.ExtractorConfig{
		MaxLiterals:   config.MaxLiterals,
		MaxLiteralLen: literal.DefaultConfig().MaxLiteralLen,
	})
	seq, ok := extractor.Extract(node)
	if !ok || seq.IsEmpty() || seq.HasEmpty() {
		return nil, nil
	}

	// Containment only needs the strings not covered by a shorter one.
	minimal := seq.Clone()
	minimal.Minimize()

	builder := ahocorasick.NewBuilder()
	for i := 0; i < minimal.Len(); i++ {
		builder.AddPattern(minimal.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		// The virtual machine answers the same question.
		return nil, nil
	}
	return seq, auto
}
