// SPDX-License-Identifier: MIT
// Package: hamcycle/hamilton
//
// table.go - truth-table generation and read-only access.
//
// Contract:
//   • Entries appear in lexicographic order of edge positions, the same order
//     Enumerate, Rank and Unrank use. Index i of the table is address i of the
//     encoded truth map.
//   • Len() == C(|E|,|V|) exactly (0 when |E| < |V|).
//   • Classification may run in parallel through an injected workpool.Executor;
//     each worker writes only its own slot, so order is preserved.
//
// Complexity:
//   • Time: O(C(|E|,|V|) · |V| α(|V|)).
//   • Space: O(C(|E|,|V|) · |V|) for the flat position array.

package hamilton

import (
	"context"
	"fmt"
	"iter"

	"github.com/katalvlaran/hamcycle/workpool"
)

// Entry is one row of a truth table.
type Entry[V Vertex] struct {
	Index       int       // position in table order
	Positions   []int     // strictly increasing indices into the edge list
	Edges       []Edge[V] // the candidate cycle
	Hamiltonian bool
}

// TruthTable maps every size-|V| edge combination to its classification.
// It is read-only once built.
type TruthTable[V Vertex] struct {
	ev        *Evaluator[V]
	k         int
	positions []int // Len()*k, row-major
	flags     []bool
	hits      int
}

// GenerateTruthTable enumerates and classifies every size-|V| combination.
// A nil exec means workpool.Default().
//
// Errors:
//   - ErrTooManyCombinations when C(|E|,|V|) exceeds the configured limit
//     or does not fit in an int.
//   - ctx/executor errors, unwrapped.
//
// When |E| < |V| the result is an empty table and no error; encoding it
// reports ErrInsufficientCombinations.
func (ev *Evaluator[V]) GenerateTruthTable(ctx context.Context, exec workpool.Executor) (*TruthTable[V], error) {
	if exec == nil {
		exec = workpool.Default()
	}
	k := len(ev.vertices)
	total, err := ev.Combinations()
	if err != nil {
		return nil, fmt.Errorf("GenerateTruthTable: %w", err)
	}
	if total > ev.cfg.maxCombinations {
		return nil, fmt.Errorf("GenerateTruthTable: C(%d,%d)=%d > max=%d: %w",
			len(ev.edges), k, total, ev.cfg.maxCombinations, ErrTooManyCombinations)
	}

	t := &TruthTable[V]{
		ev:        ev,
		k:         k,
		positions: make([]int, 0, total*k),
		flags:     make([]bool, total),
	}
	// Enumeration is sequential so that row i is the i-th lexicographic combination.
	ev.Enumerate(func(positions []int) bool {
		t.positions = append(t.positions, positions...)
		return true
	})

	err = exec.Map(ctx, total, func(_ context.Context, i int) error {
		t.flags[i] = ev.isHamiltonianAt(t.row(i))
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, f := range t.flags {
		if f {
			t.hits++
		}
	}

	return t, nil
}

func (t *TruthTable[V]) row(i int) []int {
	return t.positions[i*t.k : (i+1)*t.k : (i+1)*t.k]
}

// Len returns the number of entries.
func (t *TruthTable[V]) Len() int { return len(t.flags) }

// VertexCount returns |V| of the source graph.
func (t *TruthTable[V]) VertexCount() int { return t.ev.VertexCount() }

// EdgeCount returns |E| of the source graph.
func (t *TruthTable[V]) EdgeCount() int { return t.ev.EdgeCount() }

// HamiltonianCount returns the number of true entries.
func (t *TruthTable[V]) HamiltonianCount() int { return t.hits }

// Bits returns the classifications in table order (a copy).
func (t *TruthTable[V]) Bits() []bool {
	out := make([]bool, len(t.flags))
	copy(out, t.flags)

	return out
}

// At returns the entry at index i.
func (t *TruthTable[V]) At(i int) (Entry[V], error) {
	if i < 0 || i >= len(t.flags) {
		return Entry[V]{}, fmt.Errorf("At: index=%d not in [0,%d): %w", i, len(t.flags), ErrIndexOutOfRange)
	}

	return t.entry(i), nil
}

func (t *TruthTable[V]) entry(i int) Entry[V] {
	positions := append([]int(nil), t.row(i)...)

	return Entry[V]{
		Index:       i,
		Positions:   positions,
		Edges:       t.ev.EdgesAt(positions),
		Hamiltonian: t.flags[i],
	}
}

// All iterates entries in table order.
func (t *TruthTable[V]) All() iter.Seq2[int, Entry[V]] {
	return func(yield func(int, Entry[V]) bool) {
		for i := range t.flags {
			if !yield(i, t.entry(i)) {
				return
			}
		}
	}
}

// Index returns the table index of the combination given by edge positions.
func (t *TruthTable[V]) Index(positions []int) (int, error) {
	if len(positions) != t.k {
		return 0, fmt.Errorf("Index: k=%d want %d: %w", len(positions), t.k, ErrBadCombination)
	}
	idx, err := Rank(positions, t.ev.EdgeCount())
	if err != nil {
		return 0, err
	}
	if idx >= len(t.flags) {
		return 0, fmt.Errorf("Index: %d: %w", idx, ErrIndexOutOfRange)
	}

	return idx, nil
}

// HamiltonianIndices returns the indices of all true entries, ascending.
func (t *TruthTable[V]) HamiltonianIndices() []int {
	out := make([]int, 0, t.hits)
	for i, f := range t.flags {
		if f {
			out = append(out, i)
		}
	}

	return out
}
