package hamilton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/hamcycle/hamilton"
)

func TestRankUnrank_MatchesGonumOrder(t *testing.T) {
	for _, nk := range [][2]int{{1, 1}, {4, 2}, {6, 4}, {7, 3}, {9, 9}, {10, 5}} {
		n, k := nk[0], nk[1]
		for want, comb := range combin.Combinations(n, k) {
			got, err := hamilton.Rank(comb, n)
			require.NoError(t, err)
			require.Equalf(t, want, got, "Rank(%v,%d)", comb, n)

			back, err := hamilton.Unrank(nil, want, n, k)
			require.NoError(t, err)
			require.Equal(t, comb, back)
		}
	}
}

func TestRank_Errors(t *testing.T) {
	_, err := hamilton.Rank([]int{1, 1}, 4)
	assert.ErrorIs(t, err, hamilton.ErrBadCombination)
	_, err = hamilton.Rank([]int{0, 4}, 4)
	assert.ErrorIs(t, err, hamilton.ErrBadCombination)
	_, err = hamilton.Rank([]int{0, 1, 2}, 2)
	assert.ErrorIs(t, err, hamilton.ErrBadCombination)
}

func TestUnrank_Errors(t *testing.T) {
	_, err := hamilton.Unrank(nil, 6, 4, 2)
	assert.ErrorIs(t, err, hamilton.ErrIndexOutOfRange)
	_, err = hamilton.Unrank(nil, -1, 4, 2)
	assert.ErrorIs(t, err, hamilton.ErrIndexOutOfRange)
	_, err = hamilton.Unrank(nil, 0, 2, 3)
	assert.ErrorIs(t, err, hamilton.ErrBadCombination)
}

func TestUnrank_ReusesDst(t *testing.T) {
	dst := make([]int, 3)
	out, err := hamilton.Unrank(dst, 0, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, out)
	assert.Equal(t, &dst[0], &out[0])
}
