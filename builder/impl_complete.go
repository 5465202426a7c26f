// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); K_1 has no edge to derive a vertex from.
//   • Emits each unordered pair {i,j} with i<j exactly once, as (id(i), id(j)).
//
// Complexity: O(n²) edges; O(n) extra for the ID slice.
//
// Determinism: lexicographic by (i,j).

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that emits the edges of K_n.
func Complete(n int) Constructor {
	return func(cfg builderConfig) ([]Edge, error) {
		if n < minCompleteNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
		}

		edges := make([]Edge, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, Edge{From: ids[i], To: ids[j]})
			}
		}

		return edges, nil
	}
}
