// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: each unordered pair {i,j}, i<j, is kept
//     independently with probability p.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Trial order is i asc, then j asc; a fixed seed gives a fixed edge list.
//   - Vertices that lose every edge vanish from the vertex universe, since
//     the universe is derived from the edges.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 2
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples pairs of n vertices with
// independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) ([]Edge, error) {
		if n < minRandomSparseVertices {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		stochastic := p > probMin && p < probMax
		if stochastic && cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		var edges []Edge
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if stochastic {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					edges = append(edges, Edge{From: cfg.idFn(i), To: cfg.idFn(j)})
				}
			}
		}

		return edges, nil
	}
}
