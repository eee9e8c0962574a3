package nfa

import (
	"errors"
	"math"

	"github.com/coregx/minire/syntax"
)

// CompilerConfig configures program generation
type CompilerConfig struct {
	// MaxInsts caps the number of instructions in a program. Exceeding it
	// fails with ErrPCOverflow. Zero means no limit beyond the address space.
	// Default: math.MaxInt32
	MaxInsts int

	// MaxRecursionDepth limits the nesting depth of the syntax tree.
	// Default: 1000
	MaxRecursionDepth int
}

// DefaultCompilerConfig returns a compiler configuration with sensible defaults
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		MaxInsts:          math.MaxInt32,
		MaxRecursionDepth: 1000,
	}
}

// Compiler translates syntax trees into programs.
// A Compiler is not safe for concurrent use; the programs it returns are.
type Compiler struct {
	config  CompilerConfig
	builder *Builder
	depth   int
}

// NewCompiler creates a new compiler with the given configuration
func NewCompiler(config CompilerConfig) *Compiler {
	if config.MaxInsts <= 0 {
		config.MaxInsts = math.MaxInt
	}
	if config.MaxRecursionDepth <= 0 {
		config.MaxRecursionDepth = 1000
	}
	return &Compiler{config: config}
}

// NewDefaultCompiler creates a new compiler with default configuration
func NewDefaultCompiler() *Compiler {
	return NewCompiler(DefaultCompilerConfig())
}

// Compile parses and compiles pattern with the default configuration.
func Compile(pattern string) (*Program, error) {
	return NewDefaultCompiler().Compile(pattern)
}

// Compile parses pattern and compiles it into a program.
// A parse failure is returned as a *CompileError wrapping the *syntax.Error.
func (c *Compiler) Compile(pattern string) (*Program, error) {
	node, err := syntax.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	prog, err := c.CompileNode(node)
	if err != nil {
		var cerr *CompileError
		if errors.As(err, &cerr) {
			cerr.Pattern = pattern
		}
		return nil, err
	}
	return prog, nil
}

// CompileNode compiles a syntax tree into a program ending in match.
// No partial program is returned on failure.
func (c *Compiler) CompileNode(node *syntax.Node) (*Program, error) {
	c.builder = NewBuilderWithLimit(c.config.MaxInsts)
	c.depth = 0

	if err := c.compile(node); err != nil {
		return nil, err
	}
	if _, err := c.builder.AddMatch(); err != nil {
		return nil, &CompileError{Err: err}
	}

	prog, err := c.builder.Build()
	if err != nil {
		return nil, &CompileError{Err: ErrInvalidProgram, Cause: err}
	}
	return prog, nil
}

// compile emits the code for node at the current program counter.
func (c *Compiler) compile(node *syntax.Node) error {
	c.depth++
	if c.depth > c.config.MaxRecursionDepth {
		return &CompileError{Err: ErrTooComplex}
	}
	defer func() { c.depth-- }()

	switch node.Op {
	case syntax.OpChar:
		if _, err := c.builder.AddChar(node.Char); err != nil {
			return &CompileError{Err: err}
		}
		return nil
	case syntax.OpSeq:
		for _, sub := range node.Subs {
			if err := c.compile(sub); err != nil {
				return err
			}
		}
		return nil
	case syntax.OpOr:
		return c.compileOr(node.Subs[0], node.Subs[1])
	case syntax.OpStar:
		return c.compileStar(node.Subs[0])
	case syntax.OpPlus:
		return c.compilePlus(node.Subs[0])
	case syntax.OpQuestion:
		return c.compileQuestion(node.Subs[0])
	default:
		return &CompileError{Err: ErrInvalidProgram, Cause: &BuildError{
			Message: "unknown syntax operator " + node.Op.String(),
			Addr:    c.builder.PC(),
		}}
	}
}

// compileOr emits:
//
//	    split L1, L2
//	L1: code for a
//	    jump L3
//	L2: code for b
//	L3:
func (c *Compiler) compileOr(a, b *syntax.Node) error {
	split, err := c.builder.AddSplit(-1, -1)
	if err != nil {
		return &CompileError{Err: err}
	}
	l1 := c.builder.PC()
	if err := c.compile(a); err != nil {
		return err
	}
	jump, err := c.builder.AddJump(-1)
	if err != nil {
		return &CompileError{Err: err}
	}
	if err := c.builder.PatchSplit(split, l1, c.builder.PC()); err != nil {
		return &CompileError{Err: ErrFailOr, Cause: err}
	}
	if err := c.compile(b); err != nil {
		return err
	}
	if err := c.builder.PatchJump(jump, c.builder.PC()); err != nil {
		return &CompileError{Err: ErrFailOr, Cause: err}
	}
	return nil
}

// compileStar emits:
//
//	L0: split L1, L2
//	L1: code for a
//	    jump L0
//	L2:
func (c *Compiler) compileStar(a *syntax.Node) error {
	split, err := c.builder.AddSplit(-1, -1)
	if err != nil {
		return &CompileError{Err: err}
	}
	l1 := c.builder.PC()
	if err := c.compile(a); err != nil {
		return err
	}
	if _, err := c.builder.AddJump(split); err != nil {
		return &CompileError{Err: err}
	}
	if err := c.builder.PatchSplit(split, l1, c.builder.PC()); err != nil {
		return &CompileError{Err: ErrFailStar, Cause: err}
	}
	return nil
}

// compilePlus emits:
//
//	L1: code for a
//	    split L1, L2
//	L2:
func (c *Compiler) compilePlus(a *syntax.Node) error {
	l1 := c.builder.PC()
	if err := c.compile(a); err != nil {
		return err
	}
	split, err := c.builder.AddSplit(-1, -1)
	if err != nil {
		return &CompileError{Err: err}
	}
	if err := c.builder.PatchSplit(split, l1, c.builder.PC()); err != nil {
		return &CompileError{Err: ErrFailPlus, Cause: err}
	}
	return nil
}

// compileQuestion emits:
//
//	    split L1, L2
//	L1: code for a
//	L2:
func (c *Compiler) compileQuestion(a *syntax.Node) error {
	split, err := c.builder.AddSplit(-1, -1)
	if err != nil {
		return &CompileError{Err: err}
	}
	l1 := c.builder.PC()
	if err := c.compile(a); err != nil {
		return err
	}
	if err := c.builder.PatchSplit(split, l1, c.builder.PC()); err != nil {
		return &CompileError{Err: ErrFailQuestion, Cause: err}
	}
	return nil
}
