package syntax

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"a", "a"},
		{"abc", "abc"},
		{`a\+b`, `a\+b`},
		{`\\\(\)\|\*\?`, `\\\(\)\|\*\?`},
		{"abc|def", "(abc|def)"},
		{"a|b|c", "(a|(b|c))"},
		{"(abc)*", "(abc)*"},
		{"(ab|de)+", "(ab|de)+"},
		{"abc?", "abc?"},
		{"a**", "a**"},
		{"((a))", "a"},
		{"x(a|b)y", "x(a|b)y"},
		{"日本*", "日本*"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			node, err := Parse(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, node.String())
		})
	}
}

func TestParse_Shape(t *testing.T) {
	tests := []struct {
		pattern string
		want    *Node
	}{
		{`a\+b`, NewSeq(NewChar('a'), NewChar('+'), NewChar('b'))},
		{"a|b|c", NewOr(NewChar('a'), NewOr(NewChar('b'), NewChar('c')))},
		{"ab*", NewSeq(NewChar('a'), NewRepeat(OpStar, NewChar('b')))},
		{"(ab)?", NewRepeat(OpQuestion, NewSeq(NewChar('a'), NewChar('b')))},
		{"(a|b)+c", NewSeq(NewRepeat(OpPlus, NewOr(NewChar('a'), NewChar('b'))), NewChar('c'))},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			node, err := Parse(tt.pattern)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(node), "got %s, want %s", node, tt.want)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		pattern string
		code    ErrorCode
		pos     int
		char    rune
	}{
		{"+b", ErrNoPrev, 0, 0},
		{"*b", ErrNoPrev, 0, 0},
		{"|b", ErrNoPrev, 0, 0},
		{"?b", ErrNoPrev, 0, 0},
		{"a||b", ErrNoPrev, 2, 0},
		{"(*a)", ErrNoPrev, 1, 0},
		{"日+|*", ErrNoPrev, 3, 0},
		{"(abc", ErrNoRightParen, -1, 0},
		{"((a)", ErrNoRightParen, -1, 0},
		{"abc)", ErrInvalidRightParen, 3, 0},
		{"(a))", ErrInvalidRightParen, 3, 0},
		{`a\d`, ErrInvalidEscape, 2, 'd'},
		{`a\`, ErrInvalidEscape, 2, 0},
		{"", ErrEmpty, -1, 0},
		{"()", ErrEmpty, 1, 0},
		{"a|", ErrEmpty, 2, 0},
		{"(a|)", ErrEmpty, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			node, err := Parse(tt.pattern)
			require.Error(t, err)
			assert.Nil(t, node, "no partial tree on failure")
			assert.True(t, errors.Is(err, tt.code), "got %v, want code %q", err, tt.code)

			var perr *Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.pos, perr.Pos)
			assert.Equal(t, tt.char, perr.Char)
			assert.Equal(t, tt.pattern, perr.Pattern)
		})
	}
}

func TestError_Message(t *testing.T) {
	_, err := Parse("abc)")
	require.Error(t, err)
	assert.Equal(t, `error parsing pattern "abc)": unexpected ) at position 3`, err.Error())

	_, err = Parse(`a\d`)
	require.Error(t, err)
	assert.Equal(t, `error parsing pattern "a\\d": invalid escape sequence \d at position 2`, err.Error())

	_, err = Parse("(a")
	require.Error(t, err)
	assert.Equal(t, `error parsing pattern "(a": missing closing )`, err.Error())
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() { MustParse("a(b|c)*") })
	assert.Panics(t, func() { MustParse("(") })
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "Star", OpStar.String())
	assert.Equal(t, "Op(42)", Op(42).String())
}

// TestParse_StringRoundTrip checks that rendering a tree yields a pattern
// that parses back to the same tree.
func TestParse_StringRoundTrip(t *testing.T) {
	patterns := []string{
		"abc|def", "(abc)*", "(ab|de)+", "abc?", `a\+b`, "a(b|c|d)*e", "((a|b)c)+?",
	}
	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			node := MustParse(pattern)
			again, err := Parse(node.String())
			require.NoError(t, err)
			assert.True(t, node.Equal(again), "%s re-parsed as %s", node, again)
		})
	}
}
