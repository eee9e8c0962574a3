package meta

import "fmt"

// Stage names the pipeline stage an error came from.
type Stage uint8

const (
	// StageParse: the pattern is not well-formed.
	StageParse Stage = iota + 1

	// StageCompile: code generation failed or exceeded a limit.
	StageCompile

	// StageEvaluate: execution failed or exceeded a limit.
	StageEvaluate
)

// String returns the lower-case stage name
func (s Stage) String() string {
	switch s {
	case StageParse:
		return "parse"
	case StageCompile:
		return "compile"
	case StageEvaluate:
		return "evaluate"
	default:
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
}

// Error wraps a pipeline failure with the stage and pattern it belongs to.
type Error struct {
	Stage   Stage
	Pattern string
	Err     error
}

// Error implements the error interface.
// Parse errors already name the pattern and are returned unchanged.
func (e *Error) Error() string {
	if e.Stage == StageParse {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s error for pattern %q: %v", e.Stage, e.Pattern, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
