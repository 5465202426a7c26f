// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildEdges(bopts, cons...). Resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical edge lists.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hamcycle/hamilton"
)

// Edge is the vertex-ID edge type every constructor emits.
type Edge = hamilton.Edge[string]

// Constructor emits a deterministic edge list using the resolved builderConfig.
// Constructors MUST validate parameters early and return sentinel errors.
type Constructor func(cfg builderConfig) ([]Edge, error)

// BuildEdges resolves the builder configuration from bopts and concatenates
// the edges of all constructors in order. Constructor errors are wrapped with
// "BuildEdges: %w".
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildEdges(bopts []BuilderOption, cons ...Constructor) ([]Edge, error) {
	cfg := newBuilderConfig(bopts...)

	var out []Edge
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		edges, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("BuildEdges: %w", err)
		}
		out = append(out, edges...)
	}

	return out, nil
}
