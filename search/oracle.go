// SPDX-License-Identifier: MIT
// Package: hamcycle/search
//
// oracle.go - truth map + external Searcher + decode.
//
// Flow:
//   1. Build (or load from the cache) the truth map of the edge list.
//   2. Hand the bitmap to the Searcher.
//   3. Decode the returned address against the table. Padding addresses are
//      rejected; a real address whose entry is false yields an empty result.

package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hamcycle/hamilton"
	"github.com/katalvlaran/hamcycle/metrics"
	"github.com/katalvlaran/hamcycle/tablestore"
	"github.com/katalvlaran/hamcycle/truthmap"
)

// Oracle builds the truth map of edges and asks searcher for a marked
// address. A nil searcher means LinearScan.
//
// Errors:
//   - hamilton.ErrEmptyGraph, hamilton.ErrInsufficientCombinations,
//     hamilton.ErrTooManyCombinations from table construction.
//   - ErrSearchFailed (joined with the cause) when the Searcher fails.
//   - truthmap.ErrIndexOutOfRange when the Searcher returns a padding address.
//
// ErrNoMarkedAddress from the Searcher is not an error: Result.Found is false.
func Oracle[V hamilton.Vertex](ctx context.Context, edges []hamilton.Edge[V], searcher Searcher, opts ...Option) (Result[V], error) {
	o := resolve(opts)
	start := time.Now()
	res := Result[V]{RunID: uuid.NewString(), Driver: DriverOracle, Index: -1}
	log := o.logger.WithFields(logrus.Fields{"run": res.RunID, "driver": DriverOracle})

	ev, err := hamilton.NewEvaluator(edges, hamilton.WithMaxCombinations(o.maxCombinations))
	if err != nil {
		o.metrics.ObserveSearch(DriverOracle, errOutcome(err))
		return res, fmt.Errorf("Oracle: %w", err)
	}
	res.Vertices, res.Edges = ev.VertexCount(), ev.EdgeCount()
	log = log.WithFields(logrus.Fields{"vertices": res.Vertices, "edges": res.Edges})
	if res.Edges < res.Vertices {
		o.metrics.ObserveSearch(DriverOracle, metrics.OutcomeInsufficient)
		log.Debug("not enough edges for a cycle")
		return res, fmt.Errorf("Oracle: |E|=%d < |V|=%d: %w", res.Edges, res.Vertices, hamilton.ErrInsufficientCombinations)
	}
	if res.Combinations, err = ev.Combinations(); err != nil {
		res.Combinations = CombinationsOverflow
		o.metrics.ObserveSearch(DriverOracle, metrics.OutcomeError)
		return res, fmt.Errorf("Oracle: %w", err)
	}

	table, bitmap, err := prepare(ctx, ev, edges, res.Combinations, o, log)
	if err != nil {
		o.metrics.ObserveSearch(DriverOracle, errOutcome(err))
		return res, fmt.Errorf("Oracle: %w", err)
	}

	return run(ctx, res, table, bitmap, searcher, o, log, start)
}

// OracleTable runs the oracle flow over an already generated table. The
// cache is not consulted.
func OracleTable[V hamilton.Vertex](ctx context.Context, table *hamilton.TruthTable[V], searcher Searcher, opts ...Option) (Result[V], error) {
	o := resolve(opts)
	start := time.Now()
	res := Result[V]{
		RunID:        uuid.NewString(),
		Driver:       DriverOracle,
		Index:        -1,
		Vertices:     table.VertexCount(),
		Edges:        table.EdgeCount(),
		Combinations: table.Len(),
	}
	log := o.logger.WithFields(logrus.Fields{
		"run":      res.RunID,
		"driver":   DriverOracle,
		"vertices": res.Vertices,
		"edges":    res.Edges,
	})

	bitmap, err := truthmap.Encode[V](table)
	if err != nil {
		o.metrics.ObserveSearch(DriverOracle, errOutcome(err))
		return res, fmt.Errorf("OracleTable: %w", err)
	}

	return run(ctx, res, table, bitmap, searcher, o, log, start)
}

// prepare returns the table to decode against and its bitmap, from the cache
// when possible. Cache failures are logged and fall through to generation.
func prepare[V hamilton.Vertex](
	ctx context.Context,
	ev *hamilton.Evaluator[V],
	edges []hamilton.Edge[V],
	combinations int,
	o options,
	log logrus.FieldLogger,
) (truthmap.Table[V], string, error) {
	var sig string
	if o.store != nil {
		sig = tablestore.Signature(edges)
		rec, ok, err := o.store.Get(sig)
		switch {
		case err != nil:
			log.WithError(err).Warn("truth map cache lookup failed")
		case ok && usable(rec, combinations):
			o.metrics.ObserveLookup(true)
			log.WithField("hamiltonian", rec.Hamiltonian).Debug("truth map cache hit")
			return &lazyTable[V]{ev: ev, bitmap: rec.Bitmap, n: rec.Combinations}, rec.Bitmap, nil
		}
		o.metrics.ObserveLookup(false)
	}

	tStart := time.Now()
	table, err := ev.GenerateTruthTable(ctx, o.exec)
	if err != nil {
		return nil, "", err
	}
	o.metrics.ObserveTable(table.Len(), table.HamiltonianCount(), time.Since(tStart))
	log.WithFields(logrus.Fields{
		"combinations": table.Len(),
		"hamiltonian":  table.HamiltonianCount(),
		"elapsed":      time.Since(tStart),
	}).Debug("truth table generated")

	bitmap, err := truthmap.Encode[V](table)
	if err != nil {
		return nil, "", err
	}
	if o.store != nil {
		err = o.store.Put(tablestore.Record{
			Signature:    sig,
			Vertices:     table.VertexCount(),
			Edges:        table.EdgeCount(),
			Combinations: table.Len(),
			Hamiltonian:  table.HamiltonianCount(),
			Bitmap:       bitmap,
		})
		if err != nil {
			log.WithError(err).Warn("truth map cache write failed")
		}
	}

	return table, bitmap, nil
}

// usable reports whether a cached record fits a table of n combinations.
func usable(rec tablestore.Record, n int) bool {
	return rec.Combinations == n &&
		len(rec.Bitmap) == truthmap.PaddedLength(n) &&
		truthmap.Validate(rec.Bitmap) == nil
}

func run[V hamilton.Vertex](
	ctx context.Context,
	res Result[V],
	table truthmap.Table[V],
	bitmap string,
	searcher Searcher,
	o options,
	log logrus.FieldLogger,
	start time.Time,
) (Result[V], error) {
	if searcher == nil {
		searcher = LinearScan{}
	}
	shots := o.shots
	if shots <= 0 {
		shots = DefaultShots(res.Combinations)
	}
	log = log.WithFields(logrus.Fields{"shots": shots, "bitmap_len": len(bitmap)})

	idx, err := searcher.Search(ctx, Query{Bitmap: bitmap, VertexCount: res.Vertices, Shots: shots})
	switch {
	case errors.Is(err, ErrNoMarkedAddress):
		res.Elapsed = time.Since(start)
		o.metrics.ObserveSearch(DriverOracle, metrics.OutcomeNotFound)
		log.WithField("elapsed", res.Elapsed).Info("oracle search found no marked address")
		return res, nil
	case err != nil:
		o.metrics.ObserveSearch(DriverOracle, metrics.OutcomeError)
		log.WithError(err).Warn("oracle search failed")
		return res, fmt.Errorf("Oracle: %w: %w", ErrSearchFailed, err)
	}

	res.Index = idx
	entry, err := truthmap.Decode(idx, table)
	if err != nil {
		o.metrics.ObserveSearch(DriverOracle, metrics.OutcomeError)
		log.WithError(err).WithField("index", idx).Warn("oracle returned an unusable address")
		return res, fmt.Errorf("Oracle: %w", err)
	}
	if entry.Hamiltonian {
		res.Found = true
		res.Cycle = entry.Edges
	}
	res.Elapsed = time.Since(start)
	o.metrics.ObserveSearch(DriverOracle, outcome(res.Found))

	log.WithFields(logrus.Fields{
		"found":   res.Found,
		"index":   res.Index,
		"address": truthmap.FormatAddress(idx, truthmap.AddressWidth(len(bitmap))),
		"elapsed": res.Elapsed,
	}).Info("oracle search finished")

	return res, nil
}

// lazyTable serves a cached bitmap, unranking entries on demand.
type lazyTable[V hamilton.Vertex] struct {
	ev     *hamilton.Evaluator[V]
	bitmap string
	n      int
}

func (t *lazyTable[V]) Len() int { return t.n }

func (t *lazyTable[V]) Bits() []bool {
	out := make([]bool, t.n)
	for i := range out {
		out[i] = t.bitmap[i] == truthmap.BitSet
	}

	return out
}

func (t *lazyTable[V]) At(i int) (hamilton.Entry[V], error) {
	return t.ev.CandidateAt(i)
}
