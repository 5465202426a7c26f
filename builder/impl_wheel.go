// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// impl_wheel.go - Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + "Center", i.e., a cycle of size (n-1) plus a hub vertex.
//   • Therefore, n ≥ 4.
//
// Contract:
//   • Emits the rim cycle first (as Cycle(n-1)), then spokes ("Center", rim_i)
//     in increasing ring index.
//   • Wₙ has exactly n-1 Hamiltonian cycles: drop one rim edge, route through
//     the hub.

package builder

import "fmt"

const (
	methodWheel    = "Wheel"
	minWheelNodes  = 4
	centerVertexID = "Center"
)

// Wheel returns a Constructor that emits the edges of Wₙ.
func Wheel(n int) Constructor {
	return func(cfg builderConfig) ([]Edge, error) {
		if n < minWheelNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		rim := n - 1
		edges := cycleEdges(cfg, 0, rim)
		for i := 0; i < rim; i++ {
			edges = append(edges, Edge{From: centerVertexID, To: cfg.idFn(i)})
		}

		return edges, nil
	}
}
