// SPDX-License-Identifier: MIT
// Package: hamcycle/hamilton
//
// evaluator.go - Hamiltonian cycle classification over a fixed vertex universe.
//
// Contract:
//   • The vertex universe is the union of all edge endpoints, computed once in
//     NewEvaluator and immutable afterwards.
//   • IsHamiltonian short-circuits in order: edge count, vertex saturation,
//     degree + single component.
//   • Classification allocates only local state; an Evaluator is safe for
//     concurrent use.
//
// Complexity:
//   • NewEvaluator: O(|E| + |V| log |V|).
//   • IsHamiltonian: O(|V| α(|V|)) time, O(|V|) space.

package hamilton

import (
	"fmt"
	"slices"
)

// DefaultMaxCombinations bounds truth-table size unless overridden.
const DefaultMaxCombinations = 1 << 20

// Option configures an Evaluator.
type Option func(*evaluatorConfig)

type evaluatorConfig struct {
	maxCombinations int
}

// WithMaxCombinations sets the largest truth table GenerateTruthTable will
// build. n ≤ 0 restores DefaultMaxCombinations.
func WithMaxCombinations(n int) Option {
	return func(c *evaluatorConfig) {
		if n <= 0 {
			n = DefaultMaxCombinations
		}
		c.maxCombinations = n
	}
}

// Evaluator holds a graph's edge list and its derived vertex universe.
type Evaluator[V Vertex] struct {
	edges    []Edge[V]
	ends     [][2]int // ends[i] = universe indices of edges[i]
	vertices []V      // sorted universe
	index    map[V]int
	cfg      evaluatorConfig
}

// NewEvaluator builds an Evaluator over edges. The slice is copied.
// Returns ErrEmptyGraph when edges is empty.
func NewEvaluator[V Vertex](edges []Edge[V], opts ...Option) (*Evaluator[V], error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("NewEvaluator: %w", ErrEmptyGraph)
	}
	cfg := evaluatorConfig{maxCombinations: DefaultMaxCombinations}
	for _, opt := range opts {
		opt(&cfg)
	}

	ev := &Evaluator[V]{
		edges: slices.Clone(edges),
		index: make(map[V]int, 2*len(edges)),
		cfg:   cfg,
	}
	for _, e := range edges {
		ev.index[e.From] = 0
		ev.index[e.To] = 0
	}
	ev.vertices = make([]V, 0, len(ev.index))
	for v := range ev.index {
		ev.vertices = append(ev.vertices, v)
	}
	slices.Sort(ev.vertices)
	for i, v := range ev.vertices {
		ev.index[v] = i
	}

	ev.ends = make([][2]int, len(ev.edges))
	for i, e := range ev.edges {
		ev.ends[i] = [2]int{ev.index[e.From], ev.index[e.To]}
	}

	return ev, nil
}

// Vertices returns the sorted vertex universe (a copy).
func (ev *Evaluator[V]) Vertices() []V { return slices.Clone(ev.vertices) }

// Edges returns the edge list in input order (a copy).
func (ev *Evaluator[V]) Edges() []Edge[V] { return slices.Clone(ev.edges) }

// VertexCount returns |V|.
func (ev *Evaluator[V]) VertexCount() int { return len(ev.vertices) }

// EdgeCount returns |E|.
func (ev *Evaluator[V]) EdgeCount() int { return len(ev.edges) }

// Combinations returns C(|E|,|V|), or 0 when |E| < |V|. It returns
// ErrTooManyCombinations when the count does not fit in an int.
func (ev *Evaluator[V]) Combinations() (int, error) {
	n, k := len(ev.edges), len(ev.vertices)
	c, ok := binomial(n, k)
	if !ok {
		return 0, fmt.Errorf("Combinations: C(%d,%d) overflows int: %w", n, k, ErrTooManyCombinations)
	}

	return c, nil
}

// IsHamiltonian reports whether candidate forms a Hamiltonian cycle over the
// evaluator's vertex universe.
func (ev *Evaluator[V]) IsHamiltonian(candidate []Edge[V]) bool {
	n := len(ev.vertices)
	// 1) Edge count.
	if len(candidate) != n {
		return false
	}

	// 2) Vertex saturation: no foreign vertex, none omitted.
	ends := make([][2]int, len(candidate))
	for i, e := range candidate {
		a, okA := ev.index[e.From]
		b, okB := ev.index[e.To]
		if !okA || !okB {
			return false
		}
		ends[i] = [2]int{a, b}
	}

	return classify(n, len(ends), func(i int) [2]int { return ends[i] })
}

// isHamiltonianAt classifies the combination given by edge positions.
func (ev *Evaluator[V]) isHamiltonianAt(positions []int) bool {
	n := len(ev.vertices)
	if len(positions) != n {
		return false
	}

	return classify(n, n, func(i int) [2]int { return ev.ends[positions[i]] })
}

// classify runs the saturation and degree/component checks over m edges whose
// endpoint indices (into a universe of size n) are produced by end.
func classify(n, m int, end func(i int) [2]int) bool {
	var (
		degree = make([]int, n)
		seen   int
	)
	for i := 0; i < m; i++ {
		ab := end(i)
		for _, v := range ab {
			if degree[v] == 0 {
				seen++
			}
			degree[v]++
		}
	}
	if seen != n {
		return false
	}

	// 3) Degree + single component, checked only after full accumulation.
	ds := newDisjointSet(n)
	for i := 0; i < m; i++ {
		ab := end(i)
		ds.union(ab[0], ab[1])
	}
	root := ds.find(0)
	for v := 0; v < n; v++ {
		if degree[v] != 2 || ds.find(v) != root {
			return false
		}
	}

	return true
}

// Enumerate walks every size-|V| combination of edge positions in
// lexicographic order and calls fn with it. The slice is reused between calls
// and must not be modified. Enumeration stops when fn returns false. Nothing
// is visited when |E| < |V|.
//
// The walk steps from one combination to the next without a precomputed
// count, so it also works when C(|E|,|V|) does not fit in an int.
func (ev *Evaluator[V]) Enumerate(fn func(positions []int) bool) {
	n, k := len(ev.edges), len(ev.vertices)
	if k > n {
		return
	}
	positions := make([]int, k)
	for i := range positions {
		positions[i] = i
	}
	for {
		if !fn(positions) {
			return
		}
		// Rightmost position that can still move right.
		i := k - 1
		for i >= 0 && positions[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		positions[i]++
		for j := i + 1; j < k; j++ {
			positions[j] = positions[j-1] + 1
		}
	}
}

// Classify reports whether the combination given by strictly increasing edge
// positions is Hamiltonian.
func (ev *Evaluator[V]) Classify(positions []int) (bool, error) {
	if err := checkCombination(positions, len(ev.edges)); err != nil {
		return false, err
	}

	return ev.isHamiltonianAt(positions), nil
}

// EdgesAt maps edge positions to their edges.
func (ev *Evaluator[V]) EdgesAt(positions []int) []Edge[V] {
	out := make([]Edge[V], len(positions))
	for i, p := range positions {
		out[i] = ev.edges[p]
	}

	return out
}

// CandidateAt unranks the lexicographic table index into its combination and
// classifies it, without materializing the table.
func (ev *Evaluator[V]) CandidateAt(index int) (Entry[V], error) {
	n, k := len(ev.edges), len(ev.vertices)
	if k > n {
		return Entry[V]{}, fmt.Errorf("CandidateAt: |E|=%d < |V|=%d: %w", n, k, ErrInsufficientCombinations)
	}
	if _, err := ev.Combinations(); err != nil {
		return Entry[V]{}, fmt.Errorf("CandidateAt: %w", err)
	}
	positions, err := Unrank(nil, index, n, k)
	if err != nil {
		return Entry[V]{}, fmt.Errorf("CandidateAt: %w", err)
	}

	return Entry[V]{
		Index:       index,
		Positions:   positions,
		Edges:       ev.EdgesAt(positions),
		Hamiltonian: ev.isHamiltonianAt(positions),
	}, nil
}
