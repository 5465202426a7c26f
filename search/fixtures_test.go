package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamcycle/builder"
	"github.com/katalvlaran/hamcycle/hamilton"
)

type sedge = hamilton.Edge[string]

func square(t *testing.T) []sedge {
	t.Helper()
	edges, err := builder.BuildEdges(nil, builder.SquareWithDiagonals())
	require.NoError(t, err)

	return edges
}

func twoTriangles(t *testing.T) []sedge {
	t.Helper()
	edges, err := builder.BuildEdges(
		[]builder.BuilderOption{builder.WithSymbolIDs()},
		builder.DisjointCycles(2, 3),
	)
	require.NoError(t, err)

	return edges
}

// squareCycle returns the i-th Hamiltonian combination of square in table order.
func squareCycle(i int) []sedge {
	return [][]sedge{
		{{From: "A", To: "B"}, {From: "B", To: "C"}, {From: "C", To: "D"}, {From: "D", To: "A"}},
		{{From: "A", To: "B"}, {From: "C", To: "D"}, {From: "A", To: "C"}, {From: "B", To: "D"}},
		{{From: "B", To: "C"}, {From: "D", To: "A"}, {From: "A", To: "C"}, {From: "B", To: "D"}},
	}[i]
}
