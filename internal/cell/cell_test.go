package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndEmpty(t *testing.T) {
	empty := Empty[int](-70)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, -1, empty.Position())
	_, ok := empty.Value()
	assert.False(t, ok)

	c := New(-23, 5)
	v, ok := c.Value()
	require.True(t, ok)
	assert.Equal(t, -23, v)
	assert.Equal(t, 5, c.Position())

	s := New("hello, friend", -1)
	assert.Equal(t, "Cell(hello, friend)", s.String())
	assert.Equal(t, "Cell(<empty>)", Empty[string](0).String())
}

func TestSetAndClear(t *testing.T) {
	c := Empty[string](2)
	c.Set("hello")
	v, ok := c.Value()
	require.True(t, ok)
	assert.Equal(t, "hello", v)

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 2, c.Position())
}

func TestCompare(t *testing.T) {
	one, two := New(uint8(1), 0), New(uint8(2), 1)

	n, err := one.Compare(two)
	require.NoError(t, err)
	assert.Equal(t, -1, n)

	less, err := one.Less(two)
	require.NoError(t, err)
	assert.True(t, less)

	eq, err := one.Equal(New(uint8(1), 9))
	require.NoError(t, err)
	assert.True(t, eq, "position does not take part in equality")

	_, err = one.Compare(Empty[uint8](0))
	assert.ErrorIs(t, err, ErrEmptyCell)
	_, err = Empty[uint8](0).Less(one)
	assert.ErrorIs(t, err, ErrEmptyCell)
}
