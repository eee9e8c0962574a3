package nfa

import (
	"errors"
	"fmt"
)

// Resource-limit errors. They are returned, never panicked, and can be
// matched with errors.Is.
var (
	// ErrPCOverflow indicates that a program address would exceed the
	// representable range or the configured program size limit.
	ErrPCOverflow = errors.New("program counter overflow")

	// ErrOffsetOverflow indicates that an input offset would overflow.
	ErrOffsetOverflow = errors.New("input offset overflow")

	// ErrBacktrackLimit indicates that the backtracking engine exceeded its
	// depth limit. A path deeper than len(program) * (len(input)+1) must
	// loop without consuming input, as in (a*)*.
	ErrBacktrackLimit = errors.New("backtrack depth limit exceeded")

	// ErrTooComplex indicates the syntax tree is nested too deeply to compile
	ErrTooComplex = errors.New("pattern too complex")

	// ErrInvalidOffset indicates a start offset outside the input
	ErrInvalidOffset = errors.New("invalid input offset")

	// ErrUnknownStrategy indicates an unsupported Strategy value
	ErrUnknownStrategy = errors.New("unknown execution strategy")
)

// Internal invariant errors. They mean the code generator patched an
// address that does not hold the instruction it emitted there, which is a
// defect in the generator and never a property of the pattern.
var (
	ErrFailOr       = errors.New("failed to patch alternation")
	ErrFailStar     = errors.New("failed to patch star loop")
	ErrFailPlus     = errors.New("failed to patch plus loop")
	ErrFailQuestion = errors.New("failed to patch optional branch")

	// ErrInvalidProgram indicates that a finished program failed validation
	ErrInvalidProgram = errors.New("invalid program")
)

// IsInternal reports whether err signals a code generator defect rather
// than bad input or an exhausted resource.
func IsInternal(err error) bool {
	return errors.Is(err, ErrFailOr) ||
		errors.Is(err, ErrFailStar) ||
		errors.Is(err, ErrFailPlus) ||
		errors.Is(err, ErrFailQuestion) ||
		errors.Is(err, ErrInvalidProgram)
}

// CompileError wraps compilation errors with additional context
type CompileError struct {
	Pattern string // empty when compiling a tree directly
	Err     error  // the error kind, e.g. ErrFailOr or a *syntax.Error
	Cause   error  // underlying *BuildError for patch and validation failures
}

// Error implements the error interface
func (e *CompileError) Error() string {
	msg := e.Err.Error()
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.Pattern != "" {
		return fmt.Sprintf("compilation failed for pattern %q: %s", e.Pattern, msg)
	}
	return "compilation failed: " + msg
}

// Unwrap returns the error kind and its cause
func (e *CompileError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// BuildError reports a malformed instruction sequence: a patch applied to
// the wrong kind of instruction, or a program that fails Validate.
type BuildError struct {
	Message string
	Addr    int // -1 when not tied to an address
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.Addr >= 0 {
		return fmt.Sprintf("build error at %04d: %s", e.Addr, e.Message)
	}
	return "build error: " + e.Message
}
