// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach method context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidPercent indicates a deletion percentage outside [0,100].
var ErrInvalidPercent = errors.New("builder: percent out of range")

// ErrNeedRandSource indicates a stochastic step without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed
// (e.g. a nil constructor passed to BuildEdges).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")
