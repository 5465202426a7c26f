// SPDX-License-Identifier: MIT
// Package: hamcycle/search
//
// naive.go - first-match scan in table order.

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
)

// ctxCheckEvery is how many candidates Naive classifies between ctx checks.
const ctxCheckEvery = 1024

// Naive walks the size-|V| edge combinations in lexicographic order and
// returns the first Hamiltonian one. Given the same edge order it always
// returns the same cycle.
//
// Errors:
//   - hamilton.ErrEmptyGraph for an empty edge list.
//   - hamilton.ErrInsufficientCombinations when |E| < |V|.
//   - ctx.Err() if cancelled mid-scan.
//
// A graph with no Hamiltonian cycle is not an error: Result.Found is false.
func Naive[V hamilton.Vertex](ctx context.Context, edges []hamilton.Edge[V], opts ...Option) (Result[V], error) {
	o := resolve(opts)
	start := time.Now()
	res := Result[V]{RunID: uuid.NewString(), Driver: DriverNaive, Index: -1}
	log := o.logger.WithFields(logrus.Fields{"run": res.RunID, "driver": DriverNaive})

	ev, err := hamilton.NewEvaluator(edges)
	if err != nil {
		o.metrics.ObserveSearch(DriverNaive, metrics.OutcomeError)
		return res, fmt.Errorf("Naive: %w", err)
	}
	res.Vertices, res.Edges = ev.VertexCount(), ev.EdgeCount()
	log = log.WithFields(logrus.Fields{"vertices": res.Vertices, "edges": res.Edges})
	if res.Edges < res.Vertices {
		o.metrics.ObserveSearch(DriverNaive, metrics.OutcomeInsufficient)
		log.Debug("not enough edges for a cycle")
		return res, fmt.Errorf("Naive: |E|=%d < |V|=%d: %w", res.Edges, res.Vertices, hamilton.ErrInsufficientCombinations)
	}
	// The scan needs no count; an overflowing one is only reported.
	if res.Combinations, err = ev.Combinations(); err != nil {
		res.Combinations = CombinationsOverflow
		log.WithError(err).Debug("combination count overflows int")
	}

	var (
		checked int
		ctxErr  error
	)
	ev.Enumerate(func(positions []int) bool {
		if checked%ctxCheckEvery == 0 {
			if ctxErr = ctx.Err(); ctxErr != nil {
				return false
			}
		}
		checked++
		ok, _ := ev.Classify(positions)
		if !ok {
			return true
		}
		res.Found = true
		res.Index = checked - 1
		res.Cycle = ev.EdgesAt(positions)
		return false
	})
	res.Elapsed = time.Since(start)

	hits := 0
	if res.Found {
		hits = 1
	}
	o.metrics.ObserveCandidates(checked, hits)
	if ctxErr != nil {
		o.metrics.ObserveSearch(DriverNaive, metrics.OutcomeError)
		return res, ctxErr
	}
	o.metrics.ObserveSearch(DriverNaive, outcome(res.Found))

	log.WithFields(logrus.Fields{
		"found":   res.Found,
		"index":   res.Index,
		"checked": checked,
		"elapsed": res.Elapsed,
	}).Info("naive search finished")

	return res, nil
}

func outcome(found bool) string {
	if found {
		return metrics.OutcomeFound
	}

	return metrics.OutcomeNotFound
}

// errOutcome maps a driver error to a metrics outcome.
func errOutcome(err error) string {
	if errors.Is(err, hamilton.ErrInsufficientCombinations) {
		return metrics.OutcomeInsufficient
	}

	return metrics.OutcomeError
}
