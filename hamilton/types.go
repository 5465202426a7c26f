// SPDX-License-Identifier: MIT
// Package: hamcycle/hamilton
//
// types.go - vertex/edge types and sentinel errors.

package hamilton

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors. Callers branch with errors.Is.
var (
	// ErrEmptyGraph indicates the evaluator was constructed from an empty edge list.
	ErrEmptyGraph = errors.New("hamilton: empty graph")

	// ErrInsufficientCombinations indicates |E| < |V|: no size-|V| subset exists,
	// so no search can run. It is distinct from "no Hamiltonian cycle found".
	ErrInsufficientCombinations = errors.New("hamilton: insufficient combinations")

	// ErrTooManyCombinations indicates C(|E|,|V|) exceeds the configured limit.
	ErrTooManyCombinations = errors.New("hamilton: too many combinations")

	// ErrIndexOutOfRange indicates a table index outside [0, Len).
	ErrIndexOutOfRange = errors.New("hamilton: index out of range")

	// ErrBadCombination indicates a position slice that is not a strictly
	// increasing size-k subset of [0,n).
	ErrBadCombination = errors.New("hamilton: malformed combination")
)

// Vertex is any totally ordered, comparable identifier.
type Vertex interface {
	cmp.Ordered
}

// Edge is an ordered pair of vertices standing for an undirected connection.
// (u,v) and (v,u) are distinct values.
type Edge[V Vertex] struct {
	From V
	To   V
}

// E is shorthand for Edge[V]{From: u, To: v}.
func E[V Vertex](u, v V) Edge[V] {
	return Edge[V]{From: u, To: v}
}

// String renders the edge as "(u,v)".
func (e Edge[V]) String() string {
	return fmt.Sprintf("(%v,%v)", e.From, e.To)
}
