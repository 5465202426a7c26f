package truthmap_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamcycle/builder"
	"github.com/katalvlaran/hamcycle/hamilton"
	"github.com/katalvlaran/hamcycle/truthmap"
	"github.com/katalvlaran/hamcycle/workpool"
)

func table(t *testing.T, cons ...builder.Constructor) *hamilton.TruthTable[string] {
	t.Helper()
	edges, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSymbolIDs()}, cons...)
	require.NoError(t, err)
	ev, err := hamilton.NewEvaluator(edges)
	require.NoError(t, err)
	tt, err := ev.GenerateTruthTable(context.Background(), workpool.Sequential{})
	require.NoError(t, err)

	return tt
}

func TestEncode_Square(t *testing.T) {
	tt := table(t, builder.SquareWithDiagonals())

	bm, err := truthmap.Encode[string](tt)
	require.NoError(t, err)
	assert.Equal(t, "1000000010000100", bm)
	require.NoError(t, truthmap.Validate(bm))
}

func TestEncode_Invariants(t *testing.T) {
	for name, cons := range map[string]builder.Constructor{
		"square":        builder.SquareWithDiagonals(),
		"two triangles": builder.DisjointCycles(2, 3),
		"K5":            builder.Complete(5),
		"W6":            builder.Wheel(6),
		"C4":            builder.Cycle(4),
	} {
		t.Run(name, func(t *testing.T) {
			tt := table(t, cons)
			bm, err := truthmap.Encode[string](tt)
			require.NoError(t, err)

			assert.True(t, truthmap.IsPowerOfTwo(len(bm)))
			assert.GreaterOrEqual(t, len(bm), tt.Len())
			assert.Equal(t, strings.Repeat("0", len(bm)-tt.Len()), bm[tt.Len():])
			for i, f := range tt.Bits() {
				assert.Equal(t, f, bm[i] == truthmap.BitSet, "bit %d", i)
			}
		})
	}
}

func TestEncode_InsufficientCombinations(t *testing.T) {
	tt := table(t, builder.Path(4))
	require.Zero(t, tt.Len())

	_, err := truthmap.Encode[string](tt)
	assert.ErrorIs(t, err, hamilton.ErrInsufficientCombinations)

	_, err = truthmap.EncodeBits(nil)
	assert.ErrorIs(t, err, hamilton.ErrInsufficientCombinations)
}

func TestEncodeBits_SingleEntry(t *testing.T) {
	bm, err := truthmap.EncodeBits([]bool{true})
	require.NoError(t, err)
	assert.Equal(t, "1", bm)

	bm, err = truthmap.EncodeBits([]bool{false, true, true})
	require.NoError(t, err)
	assert.Equal(t, "0110", bm)
}

func TestDecode_RoundTrip(t *testing.T) {
	tt := table(t, builder.Complete(5))

	for i, e := range tt.All() {
		idx, err := tt.Index(e.Positions)
		require.NoError(t, err)

		got, err := truthmap.Decode[string](idx, tt)
		require.NoError(t, err)
		assert.Equal(t, i, got.Index)
		assert.Equal(t, e.Edges, got.Edges)
		assert.Equal(t, e.Hamiltonian, got.Hamiltonian)
	}
}

func TestDecode_RejectsPadding(t *testing.T) {
	tt := table(t, builder.SquareWithDiagonals())
	bm, err := truthmap.Encode[string](tt)
	require.NoError(t, err)
	require.Equal(t, 16, len(bm))

	_, err = truthmap.Decode[string](15, tt)
	assert.ErrorIs(t, err, truthmap.ErrIndexOutOfRange)
	assert.ErrorIs(t, err, hamilton.ErrIndexOutOfRange)

	_, err = truthmap.Decode[string](-1, tt)
	assert.ErrorIs(t, err, truthmap.ErrIndexOutOfRange)
}

func TestPaddedLength(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 15: 16, 16: 16, 17: 32, 1000: 1024}
	for n, want := range cases {
		assert.Equalf(t, want, truthmap.PaddedLength(n), "n=%d", n)
	}
}

func TestAddressWidth(t *testing.T) {
	assert.Equal(t, 0, truthmap.AddressWidth(1))
	assert.Equal(t, 1, truthmap.AddressWidth(2))
	assert.Equal(t, 4, truthmap.AddressWidth(16))
	assert.Equal(t, 10, truthmap.AddressWidth(1024))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, truthmap.Validate("0"))
	assert.NoError(t, truthmap.Validate("0110"))
	assert.ErrorIs(t, truthmap.Validate(""), truthmap.ErrMalformedBitmap)
	assert.ErrorIs(t, truthmap.Validate("011"), truthmap.ErrMalformedBitmap)
	assert.ErrorIs(t, truthmap.Validate("01x0"), truthmap.ErrMalformedBitmap)
}

func TestAddress_ParseFormat(t *testing.T) {
	for _, i := range []int{0, 1, 8, 13, 255} {
		s := truthmap.FormatAddress(i, 8)
		assert.Len(t, s, 8)
		got, err := truthmap.ParseAddress(s)
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
	assert.Equal(t, "1101", truthmap.FormatAddress(13, 2))

	got, err := truthmap.ParseAddress(" 1000\n")
	require.NoError(t, err)
	assert.Equal(t, 8, got)

	for _, bad := range []string{"", "12", "0b11", "-1"} {
		_, err := truthmap.ParseAddress(bad)
		assert.ErrorIsf(t, err, truthmap.ErrMalformedAddress, "input %q", bad)
	}
}
