package nfa

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/minire/syntax"
)

func compileForTest(t testing.TB, pattern string) *Program {
	t.Helper()
	prog, err := Compile(pattern)
	require.NoError(t, err, "Compile(%q)", pattern)
	return prog
}

func listing(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestCompile_Listing(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"a", listing(
			"0000: char a",
			"0001: match",
		)},
		{"abc|def", listing(
			"0000: split 0001, 0005",
			"0001: char a",
			"0002: char b",
			"0003: char c",
			"0004: jump 0008",
			"0005: char d",
			"0006: char e",
			"0007: char f",
			"0008: match",
		)},
		{"(abc)*", listing(
			"0000: split 0001, 0005",
			"0001: char a",
			"0002: char b",
			"0003: char c",
			"0004: jump 0000",
			"0005: match",
		)},
		{"(ab|de)+", listing(
			"0000: split 0001, 0004",
			"0001: char a",
			"0002: char b",
			"0003: jump 0006",
			"0004: char d",
			"0005: char e",
			"0006: split 0000, 0007",
			"0007: match",
		)},
		{"abc?", listing(
			"0000: char a",
			"0001: char b",
			"0002: split 0003, 0004",
			"0003: char c",
			"0004: match",
		)},
		{`a\+b`, listing(
			"0000: char a",
			"0001: char +",
			"0002: char b",
			"0003: match",
		)},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			prog := compileForTest(t, tt.pattern)
			assert.Equal(t, tt.want, prog.String())
		})
	}
}

// TestCompile_WellFormed checks that every compiled program ends in match
// and only references addresses inside itself.
func TestCompile_WellFormed(t *testing.T) {
	patterns := []string{
		"a", "ab", "a|b", "a|b|c", "a*", "a+", "a?", "(a|b)*c", "((a|b)+|c?)d",
		"(((a)))", "a**", "a+?", "(ab|cd|ef)*(g|h)+i?", "日本語|中文+",
	}
	patterns = append(patterns, randomPatterns(200, 7)...)

	for _, pattern := range patterns {
		prog := compileForTest(t, pattern)
		insts := prog.Insts
		require.NotEmpty(t, insts, pattern)
		assert.Equal(t, InstMatch, insts[len(insts)-1].Op, pattern)
		for pc, inst := range insts {
			switch inst.Op {
			case InstJump:
				assert.True(t, inst.X >= 0 && inst.X < len(insts), "%s: jump at %d -> %d", pattern, pc, inst.X)
			case InstSplit:
				assert.True(t, inst.X >= 0 && inst.X < len(insts), "%s: split at %d -> %d", pattern, pc, inst.X)
				assert.True(t, inst.Y >= 0 && inst.Y < len(insts), "%s: split at %d -> %d", pattern, pc, inst.Y)
			}
		}
		assert.NoError(t, prog.Validate(), pattern)
	}
}

func TestCompile_ParseError(t *testing.T) {
	_, err := Compile("+b")
	require.Error(t, err)

	var serr *syntax.Error
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, 0, serr.Pos)
	assert.True(t, errors.Is(err, syntax.ErrNoPrev))
	assert.False(t, IsInternal(err), "bad input is not an internal error")
}

func TestCompile_PCOverflow(t *testing.T) {
	c := NewCompiler(CompilerConfig{MaxInsts: 4})

	// "abc" needs exactly four instructions including match.
	_, err := c.Compile("abc")
	require.NoError(t, err)

	tests := []string{"abcd", "a|b|c", "(ab)*", "abc?"}
	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			prog, err := c.Compile(pattern)
			require.Error(t, err)
			assert.Nil(t, prog)
			assert.True(t, errors.Is(err, ErrPCOverflow), "got %v", err)
			assert.False(t, IsInternal(err))

			var cerr *CompileError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, pattern, cerr.Pattern)
		})
	}
}

func TestCompile_TooComplex(t *testing.T) {
	c := NewCompiler(CompilerConfig{MaxRecursionDepth: 10})
	pattern := strings.Repeat("(", 20) + "a" + strings.Repeat(")*", 20)
	_, err := c.Compile(pattern)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooComplex))
}

func TestCompile_Reuse(t *testing.T) {
	c := NewDefaultCompiler()
	p1, err := c.Compile("a|b")
	require.NoError(t, err)
	p2, err := c.Compile("c")
	require.NoError(t, err)

	assert.Equal(t, 5, p1.Len(), "first program must not be affected by later compiles")
	assert.Equal(t, 2, p2.Len())
}

func TestIsInternal(t *testing.T) {
	for _, kind := range []error{ErrFailOr, ErrFailStar, ErrFailPlus, ErrFailQuestion, ErrInvalidProgram} {
		err := &CompileError{Err: kind, Cause: &BuildError{Message: "expected split, got char", Addr: 3}}
		assert.True(t, IsInternal(err), kind.Error())

		var berr *BuildError
		require.True(t, errors.As(err, &berr))
		assert.Equal(t, 3, berr.Addr)
	}
	assert.False(t, IsInternal(ErrPCOverflow))
	assert.False(t, IsInternal(ErrBacktrackLimit))
	assert.NotErrorIs(t, ErrFailPlus, ErrFailStar, "plus and star failures are distinct")
}

func TestCompileError_Message(t *testing.T) {
	err := &CompileError{
		Pattern: "a|b",
		Err:     ErrFailOr,
		Cause:   &BuildError{Message: "expected jump, got char", Addr: 2},
	}
	assert.Equal(t,
		`compilation failed for pattern "a|b": failed to patch alternation: build error at 0002: expected jump, got char`,
		err.Error())

	assert.Equal(t, "compilation failed: program counter overflow", (&CompileError{Err: ErrPCOverflow}).Error())
}
