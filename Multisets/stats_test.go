package Multisets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStats_CountOf(t *testing.T) {
	u := From[int, uint32]([]int{1, 2, 2, 3, 3, 3})
	require.EqualValues(t, 3, u.CountOf(3))
	require.EqualValues(t, 5, u.CountOf(2, 3))
	require.EqualValues(t, 0, u.CountOf(7))
	// named twice, counted twice
	require.EqualValues(t, 6, u.CountOf(3, 3))
}

func TestStats_ProbabilityOf(t *testing.T) {
	u := From[int, uint32]([]int{1, 2, 2, 3, 3, 3})
	require.InDelta(t, 0.5, u.ProbabilityOf(3), 1e-12)
	require.InDelta(t, 1.0/6, u.ProbabilityOf(1), 1e-12)
	require.InDelta(t, 1, u.ProbabilityOf(1, 2, 3), 1e-12)
	require.Zero(t, u.ProbabilityOf(9))
}

func TestStats_ProbabilityWhere(t *testing.T) {
	u := From[int, uint32]([]int{1, 2, 2, 3, 3, 3})
	even := func(v int) bool { return v%2 == 0 }
	require.InDelta(t, 2.0/6, u.ProbabilityWhere(even), 1e-12)
	require.InDelta(t, 1, u.ProbabilityWhere(func(int) bool { return true }), 1e-12)
	require.Zero(t, u.ProbabilityWhere(func(int) bool { return false }))
}

func TestStats_ExpectedValue(t *testing.T) {
	u := From[int, uint32]([]int{1, 2, 2, 3, 3, 3})
	require.InDelta(t, 6, u.ExpectedValue(12, 3), 1e-12)
	require.InDelta(t, 10, u.ExpectedValue(12, 2, 3), 1e-12)
	require.Zero(t, u.ExpectedValue(12, 9))
}

func TestStats_Empty(t *testing.T) {
	u := New[int, uint32]()
	require.Zero(t, u.ProbabilityOf(1))
	require.Zero(t, u.ProbabilityWhere(func(int) bool { return true }))
	require.Zero(t, u.ExpectedValue(100, 1))
	require.Zero(t, u.CountOf(1))
}
