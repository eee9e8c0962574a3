package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseSet_Basic(t *testing.T) {
	s := NewSparseSet(100)

	assert.True(t, s.IsEmpty(), "new set should be empty")
	assert.False(t, s.Contains(0), "empty set should not contain 0")

	assert.True(t, s.Insert(5), "first insert should return true")
	assert.True(t, s.Contains(5))
	assert.False(t, s.Insert(5), "duplicate insert should return false")
	assert.Equal(t, 1, s.Len())

	s.Insert(10)
	s.Insert(3)
	s.Insert(7)
	assert.Equal(t, 4, s.Len())

	s.Clear()
	assert.True(t, s.IsEmpty(), "set should be empty after clear")
	assert.False(t, s.Contains(5), "cleared set should not contain 5")
}

func TestSparseSet_InsertionOrder(t *testing.T) {
	s := NewSparseSet(100)
	for _, v := range []uint32{5, 2, 8, 1} {
		s.Insert(v)
	}
	assert.Equal(t, []uint32{5, 2, 8, 1}, s.Values())
}

func TestSparseSet_StaleSparseEntry(t *testing.T) {
	// After Clear the sparse array still holds old indexes; membership
	// must be decided by the dense array alone.
	s := NewSparseSet(8)
	s.Insert(3)
	s.Insert(4)
	s.Clear()
	s.Insert(4)

	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains(3))
	require.Equal(t, []uint32{4}, s.Values())
}

func TestSparseSet_OutOfRange(t *testing.T) {
	s := NewSparseSet(4)
	assert.False(t, s.Contains(4))
	assert.False(t, s.Contains(1<<31))
	assert.Equal(t, 4, s.Capacity())
	assert.Panics(t, func() { s.Insert(4) })
}
