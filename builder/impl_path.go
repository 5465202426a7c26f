// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges (i-1, i) for i=1..n-1 in increasing order.
//
// A path has n-1 edges over n vertices, so its truth table is empty: the
// canonical "insufficient combinations" fixture.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that emits the edges of P_n.
func Path(n int) Constructor {
	return func(cfg builderConfig) ([]Edge, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		edges := make([]Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, Edge{From: cfg.idFn(i - 1), To: cfg.idFn(i)})
		}

		return edges, nil
	}
}
