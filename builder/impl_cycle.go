// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// impl_cycle.go - Cycle(n) and DisjointCycles(count, size) constructors.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Cycle emits (i, (i+1)%n) for i=0..n-1.
//   • DisjointCycles(c, s) emits c copies of C_s over vertex indices
//     [k·s, (k+1)·s) for k=0..c-1; there is no edge between copies.
//
// Complexity: O(n) edges.

package builder

import "fmt"

const (
	methodCycle          = "Cycle"
	methodDisjointCycles = "DisjointCycles"
	minCycleNodes        = 3
	minCycleCount        = 1
)

// Cycle returns a Constructor that emits the edges of C_n.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) ([]Edge, error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return cycleEdges(cfg, 0, n), nil
	}
}

// DisjointCycles returns a Constructor that emits count vertex-disjoint cycles
// of size vertices each. With count ≥ 2 the graph has no Hamiltonian cycle.
func DisjointCycles(count, size int) Constructor {
	return func(cfg builderConfig) ([]Edge, error) {
		if count < minCycleCount {
			return nil, fmt.Errorf("%s: count=%d < min=%d: %w", methodDisjointCycles, count, minCycleCount, ErrTooFewVertices)
		}
		if size < minCycleNodes {
			return nil, fmt.Errorf("%s: size=%d < min=%d: %w", methodDisjointCycles, size, minCycleNodes, ErrTooFewVertices)
		}

		edges := make([]Edge, 0, count*size)
		for k := 0; k < count; k++ {
			edges = append(edges, cycleEdges(cfg, k*size, size)...)
		}

		return edges, nil
	}
}

func cycleEdges(cfg builderConfig, offset, n int) []Edge {
	edges := make([]Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = Edge{From: cfg.idFn(offset + i), To: cfg.idFn(offset + (i+1)%n)}
	}

	return edges
}
