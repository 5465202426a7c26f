package search_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamcycle/hamilton"
	"github.com/katalvlaran/hamcycle/metrics"
	"github.com/katalvlaran/hamcycle/search"
	"github.com/katalvlaran/hamcycle/tablestore"
	"github.com/katalvlaran/hamcycle/truthmap"
	"github.com/katalvlaran/hamcycle/workpool"
)

// fixed returns a Searcher that always answers idx and records the query.
func fixed(idx int, seen *search.Query) search.Searcher {
	return search.SearcherFunc(func(_ context.Context, q search.Query) (int, error) {
		if seen != nil {
			*seen = q
		}
		return idx, nil
	})
}

func TestOracle_LinearScan(t *testing.T) {
	res, err := search.Oracle(context.Background(), square(t), search.LinearScan{})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 0, res.Index)
	assert.Equal(t, squareCycle(0), res.Cycle)
	assert.Equal(t, search.DriverOracle, res.Driver)
}

func TestOracle_QueryShape(t *testing.T) {
	var q search.Query
	_, err := search.Oracle(context.Background(), square(t), fixed(8, &q))
	require.NoError(t, err)
	assert.Equal(t, "1000000010000100", q.Bitmap)
	assert.Equal(t, 4, q.VertexCount)
	assert.Equal(t, 4, q.Shots, "ceil(sqrt(15))")

	_, err = search.Oracle(context.Background(), square(t), fixed(8, &q), search.WithShots(100))
	require.NoError(t, err)
	assert.Equal(t, 100, q.Shots)
}

func TestOracle_DecodesAddress(t *testing.T) {
	tests := []struct {
		name  string
		index int
		found bool
		cycle []sedge
	}{
		{"marked 8", 8, true, squareCycle(1)},
		{"marked 13", 13, true, squareCycle(2)},
		{"unmarked 1", 1, false, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := search.Oracle(context.Background(), square(t), fixed(tc.index, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.found, res.Found)
			assert.Equal(t, tc.index, res.Index)
			assert.Equal(t, tc.cycle, res.Cycle)
		})
	}
}

func TestOracle_RejectsPaddingAddress(t *testing.T) {
	// 15 combinations padded to 16: address 15 is padding.
	_, err := search.Oracle(context.Background(), square(t), fixed(15, nil))
	assert.ErrorIs(t, err, truthmap.ErrIndexOutOfRange)
	assert.ErrorIs(t, err, hamilton.ErrIndexOutOfRange)

	_, err = search.Oracle(context.Background(), square(t), fixed(-1, nil))
	assert.ErrorIs(t, err, truthmap.ErrIndexOutOfRange)
}

func TestOracle_NoMarkedAddress(t *testing.T) {
	res, err := search.Oracle(context.Background(), twoTriangles(t), search.LinearScan{})
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Cycle)
	assert.Equal(t, 1, res.Combinations)
}

func TestOracle_SearcherFailure(t *testing.T) {
	boom := errors.New("backend unavailable")
	calls := 0
	s := search.SearcherFunc(func(context.Context, search.Query) (int, error) {
		calls++
		return 0, boom
	})

	_, err := search.Oracle(context.Background(), square(t), s)
	assert.ErrorIs(t, err, search.ErrSearchFailed)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls, "no retry")
}

func TestOracle_Errors(t *testing.T) {
	_, err := search.Oracle(context.Background(), []sedge{{From: "A", To: "B"}, {From: "B", To: "C"}}, search.LinearScan{})
	assert.ErrorIs(t, err, hamilton.ErrInsufficientCombinations)

	_, err = search.Oracle(context.Background(), square(t), search.LinearScan{}, search.WithMaxCombinations(10))
	assert.ErrorIs(t, err, hamilton.ErrTooManyCombinations)
}

func TestOracle_NilSearcherIsLinearScan(t *testing.T) {
	res, err := search.Oracle(context.Background(), square(t), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Index)
}

func TestOracle_ParallelExecutor(t *testing.T) {
	var seq, par search.Query
	_, err := search.Oracle(context.Background(), square(t), fixed(0, &seq),
		search.WithExecutor(workpool.Sequential{}))
	require.NoError(t, err)
	_, err = search.Oracle(context.Background(), square(t), fixed(0, &par),
		search.WithExecutor(workpool.Parallel{Workers: 4, ChunkSize: 2}))
	require.NoError(t, err)
	assert.Equal(t, seq.Bitmap, par.Bitmap)
}

func TestOracle_Store(t *testing.T) {
	store, err := tablestore.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	opts := []search.Option{search.WithStore(store), search.WithMetrics(m)}

	first, err := search.Oracle(context.Background(), square(t), fixed(13, nil), opts...)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreLookups.WithLabelValues("miss")))

	rec, ok, err := store.Get(tablestore.Signature(square(t)))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1000000010000100", rec.Bitmap)
	assert.Equal(t, 3, rec.Hamiltonian)

	var q search.Query
	second, err := search.Oracle(context.Background(), square(t), fixed(13, &q), opts...)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreLookups.WithLabelValues("hit")))
	assert.Equal(t, rec.Bitmap, q.Bitmap)
	assert.Equal(t, first.Cycle, second.Cycle)
	assert.Equal(t, 15.0, testutil.ToFloat64(m.Candidates), "table built once")

	_, err = search.Oracle(context.Background(), square(t), fixed(15, nil), opts...)
	assert.ErrorIs(t, err, truthmap.ErrIndexOutOfRange, "padding rejected on cached maps too")
}

func TestOracle_StoreIgnoresStaleRecord(t *testing.T) {
	store, err := tablestore.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Put(tablestore.Record{
		Signature:    tablestore.Signature(square(t)),
		Combinations: 15,
		Bitmap:       "1111",
	}))

	var q search.Query
	_, err = search.Oracle(context.Background(), square(t), fixed(0, &q), search.WithStore(store))
	require.NoError(t, err)
	assert.Equal(t, "1000000010000100", q.Bitmap)
}

func TestOracleTable(t *testing.T) {
	ev, err := hamilton.NewEvaluator(square(t))
	require.NoError(t, err)
	table, err := ev.GenerateTruthTable(context.Background(), nil)
	require.NoError(t, err)

	res, err := search.OracleTable(context.Background(), table, fixed(8, nil))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, squareCycle(1), res.Cycle)
	assert.Equal(t, 15, res.Combinations)
}

func TestDefaultShots(t *testing.T) {
	assert.Equal(t, 1, search.DefaultShots(search.CombinationsOverflow))
	assert.Equal(t, 1, search.DefaultShots(0))
	assert.Equal(t, 1, search.DefaultShots(1))
	assert.Equal(t, 4, search.DefaultShots(15))
	assert.Equal(t, 4, search.DefaultShots(16))
	assert.Equal(t, 71, search.DefaultShots(5005))
}
