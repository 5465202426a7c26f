// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// drop.go - random edge deletion.
//
// Contract:
//   • 0 ≤ percent ≤ 100 (else ErrInvalidPercent).
//   • Removes int(percent/100 · len(edges)) edges, each drawn uniformly from the
//     edges still present; survivors keep their relative order.
//   • rng is required whenever at least one edge is removed.
//
// Determinism: identical for a fixed seed and input order.

package builder

import (
	"fmt"
	"math/rand"
)

const methodDropEdges = "DropEdges"

// DropEdges returns a copy of edges with a percentage of them removed.
func DropEdges(edges []Edge, percent float64, rng *rand.Rand) ([]Edge, error) {
	if percent < 0 || percent > 100 {
		return nil, fmt.Errorf("%s: percent=%.2f not in [0,100]: %w", methodDropEdges, percent, ErrInvalidPercent)
	}
	out := append([]Edge(nil), edges...)
	drop := int(percent / 100 * float64(len(edges)))
	if drop == 0 {
		return out, nil
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodDropEdges, ErrNeedRandSource)
	}

	for ; drop > 0 && len(out) > 0; drop-- {
		i := rng.Intn(len(out))
		out = append(out[:i], out[i+1:]...)
	}

	return out, nil
}

// Drop returns a Constructor that applies DropEdges to the edges of inner,
// using the configured RNG.
func Drop(inner Constructor, percent float64) Constructor {
	return func(cfg builderConfig) ([]Edge, error) {
		if inner == nil {
			return nil, fmt.Errorf("%s: nil inner constructor: %w", methodDropEdges, ErrConstructFailed)
		}
		edges, err := inner(cfg)
		if err != nil {
			return nil, err
		}

		return DropEdges(edges, percent, cfg.rng)
	}
}
