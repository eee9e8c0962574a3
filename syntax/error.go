package syntax

import "fmt"

// ErrorCode describes why a pattern failed to parse.
// Codes are errors themselves, so callers can test with errors.Is.
type ErrorCode string

const (
	// ErrInvalidEscape: a backslash is followed by a character that is not
	// one of \ ( ) | + * ?, or ends the pattern.
	ErrInvalidEscape ErrorCode = "invalid escape sequence"

	// ErrInvalidRightParen: a ')' has no matching '('.
	ErrInvalidRightParen ErrorCode = "unexpected )"

	// ErrNoPrev: a quantifier or '|' has no preceding expression.
	ErrNoPrev ErrorCode = "missing argument to repetition operator"

	// ErrNoRightParen: a '(' is never closed.
	ErrNoRightParen ErrorCode = "missing closing )"

	// ErrEmpty: the pattern, a group or an alternative is empty.
	ErrEmpty ErrorCode = "empty expression"
)

// Error implements the error interface
func (c ErrorCode) Error() string {
	return string(c)
}

// Error describes a failure to parse a pattern.
type Error struct {
	Code    ErrorCode
	Pattern string
	Pos     int  // rune index in Pattern, -1 when the failure has no position
	Char    rune // offending character for ErrInvalidEscape, 0 at end of pattern
}

// Error implements the error interface
func (e *Error) Error() string {
	switch {
	case e.Code == ErrInvalidEscape && e.Char == 0:
		return fmt.Sprintf("error parsing pattern %q: trailing backslash at position %d", e.Pattern, e.Pos)
	case e.Code == ErrInvalidEscape:
		return fmt.Sprintf("error parsing pattern %q: %s \\%c at position %d", e.Pattern, e.Code, e.Char, e.Pos)
	case e.Pos >= 0:
		return fmt.Sprintf("error parsing pattern %q: %s at position %d", e.Pattern, e.Code, e.Pos)
	default:
		return fmt.Sprintf("error parsing pattern %q: %s", e.Pattern, e.Code)
	}
}

// Unwrap returns the error code
func (e *Error) Unwrap() error {
	return e.Code
}
