// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub has the fixed ID "Center"; leaves use cfg.idFn(1..n-1).
//   • Spokes are emitted as (Center, leaf) in increasing leaf index.
//
// Every leaf has degree 1, so no subset of a star is ever Hamiltonian. Star
// is the canonical "always negative" input for both drivers.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for a star with n vertices: one hub "Center"
// and n-1 leaves.
func Star(n int) Constructor {
	return func(cfg builderConfig) ([]Edge, error) {
		if n < minStarNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		edges := make([]Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, Edge{From: centerVertexID, To: cfg.idFn(i)})
		}

		return edges, nil
	}
}
