package nfa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPikeVM_Pathological(t *testing.T) {
	// Exponential for depth-first search, linear for set simulation.
	prog := compileForTest(t, "(a|a)*(a|a)*(a|a)*b")
	input := strings.Repeat("a", 5000)

	pike := NewPikeVM(prog)
	ok, err := pike.MatchAt(input, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	start, err := pike.Search(input + "b")
	require.NoError(t, err)
	assert.Equal(t, 0, start)
}

func TestPikeVM_EmptyLoops(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"(a*)*", "", true},
		{"(a*)*b", "aaab", true},
		{"(a*)*b", "aaac", false},
		{"(a?)+b", "b", true},
		{"((a|b?)*)*c", "abbac", true},
		{"((a|b?)*)*c", "abbad", false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			ok, err := NewPikeVM(compileForTest(t, tt.pattern)).MatchAt(tt.input, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestPikeVM_SearchLeftmost(t *testing.T) {
	// The thread started at 1 matches first (at offset 3), but the one
	// started at 0 matches later and must win.
	prog := compileForTest(t, "abcde|bc")
	start, err := NewPikeVM(prog).Search("abcdef")
	require.NoError(t, err)
	assert.Equal(t, 0, start)

	start, err = NewPikeVM(prog).Search("abcdxf")
	require.NoError(t, err)
	assert.Equal(t, 1, start)
}

func TestDropFrom(t *testing.T) {
	list := []thread{{pc: 1, start: 0}, {pc: 2, start: 0}, {pc: 3, start: 2}, {pc: 4, start: 5}}
	assert.Len(t, dropFrom(list, 2), 2)
	assert.Len(t, dropFrom(list, 0), 0)
	assert.Len(t, dropFrom(list, 9), 4)
}
