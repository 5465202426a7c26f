// SPDX-License-Identifier: MIT
// Package: hamcycle/search
//
// result.go - driver names and the Result shape shared by both drivers.

package search

import (
	"time"

	"github.com/katalvlaran/hamcycle/hamilton"
)

// Driver names, used in logs, metrics and Result.Driver.
const (
	DriverNaive  = "naive"
	DriverOracle = "oracle"
)

// CombinationsOverflow is reported in Result.Combinations when C(|E|,|V|)
// does not fit in an int. Only Naive can run on such graphs.
const CombinationsOverflow = -1

// Result is the outcome of a driver run. When Found is false, Cycle is nil.
type Result[V hamilton.Vertex] struct {
	RunID  string
	Driver string

	Found bool
	Cycle []hamilton.Edge[V]
	// Index is the table index that was inspected last: the match for Naive,
	// the decoded address for Oracle. -1 when nothing was decoded.
	Index int

	Vertices     int
	Edges        int
	// Combinations is C(|E|,|V|), or CombinationsOverflow.
	Combinations int
	Elapsed      time.Duration
}
