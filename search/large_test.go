package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamcycle/hamilton"
	"github.com/katalvlaran/hamcycle/search"
)

type iedge = hamilton.Edge[int]

// ring returns C_n on 0..n-1 followed by the given chord lengths, each chord
// length d contributing (i, i+d mod n) for i < limit[d] (n when absent).
func ring(n int, chords []int, limit map[int]int) []iedge {
	edges := make([]iedge, 0, n*(1+len(chords)))
	for _, d := range append([]int{1}, chords...) {
		count, ok := limit[d]
		if !ok {
			count = n
		}
		for i := 0; i < count; i++ {
			edges = append(edges, hamilton.E(i, (i+d)%n))
		}
	}

	return edges
}

// ringThenComplete is K_n with the ring edges listed first.
func ringThenComplete(n int) []iedge {
	edges := ring(n, nil, nil)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			edges = append(edges, hamilton.E(i, j))
		}
	}

	return edges
}

func TestNaive_LargeCombinationSpace(t *testing.T) {
	// |V|=20, |E|=74: C(74,20) fits in an int only with exact arithmetic.
	edges := ring(20, []int{2, 3, 4}, map[int]int{4: 14})
	require.Len(t, edges, 74)

	res, err := search.Naive(context.Background(), edges)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 0, res.Index)
	assert.Equal(t, edges[:20], res.Cycle)
	assert.Equal(t, 588989865562320376, res.Combinations)
}

func TestNaive_CountOverflowStillScans(t *testing.T) {
	edges := ringThenComplete(16)
	require.Len(t, edges, 120)

	res, err := search.Naive(context.Background(), edges)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 0, res.Index)
	assert.Equal(t, edges[:16], res.Cycle)
	assert.Equal(t, search.CombinationsOverflow, res.Combinations)
}

func TestOracle_CountOverflow(t *testing.T) {
	res, err := search.Oracle(context.Background(), ringThenComplete(16), search.LinearScan{})
	require.ErrorIs(t, err, hamilton.ErrTooManyCombinations)
	assert.False(t, res.Found)
	assert.Equal(t, search.CombinationsOverflow, res.Combinations)
}
