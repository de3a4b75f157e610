package elementary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeDetectsStillLife(t *testing.T) {
	// Rule 204 is the identity.
	r, err := NewRule(Constant(0))
	require.NoError(t, err)
	require.NoError(t, r.SetInt(204))
	l, err := NewLattice(6, r)
	require.NoError(t, err)
	require.NoError(t, l.SeedFromInt(0b101100))
	_, err = l.Advance(3)
	require.NoError(t, err)

	s := Summarize(l)
	assert.Equal(t, 3, s.Generations)
	assert.Equal(t, []int{3, 3, 3, 3}, s.Live)
	assert.Equal(t, 0, s.CycleStart)
	assert.Equal(t, 1, s.Period)
	assert.InDelta(t, 0.5, s.Density, 1e-9)
}

func TestSummarizeDetectsRotation(t *testing.T) {
	// Rule 170 shifts left under periodic boundaries.
	r, err := NewRule(Periodic())
	require.NoError(t, err)
	require.NoError(t, r.SetInt(170))
	l, err := NewLattice(4, r)
	require.NoError(t, err)
	require.NoError(t, l.SeedFromInt(1))
	_, err = l.Advance(6)
	require.NoError(t, err)

	s := Summarize(l)
	assert.Equal(t, 0, s.CycleStart)
	assert.Equal(t, 4, s.Period)
	assert.Len(t, s.Live, 7)
}

func TestAnalyzeWithoutRepeat(t *testing.T) {
	l, err := NewLattice(23, nil)
	require.NoError(t, err)
	require.NoError(t, l.SeedFromInt(32))
	_, err = l.Advance(3)
	require.NoError(t, err)

	s := Analyze(l.History(), l.Cells())
	assert.Equal(t, -1, s.CycleStart)
	assert.Equal(t, 0, s.Period)
	assert.Equal(t, []int{1, 3, 3, 6}, s.Live)
}
