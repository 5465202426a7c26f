package hamilton_test

import "github.com/katalvlaran/hamcycle/hamilton"

type sedge = hamilton.Edge[string]

// squareWithDiagonals is the A..D square plus both diagonals:
//
//	A───B
//	│ ╳ │
//	D───C
func squareWithDiagonals() []sedge {
	return []sedge{
		{"A", "B"}, {"B", "C"}, {"C", "D"},
		{"D", "A"}, {"A", "C"}, {"B", "D"},
	}
}

// squareCycles lists the Hamiltonian combinations of squareWithDiagonals in
// table order.
func squareCycles() [][]sedge {
	return [][]sedge{
		{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}},
		{{"A", "B"}, {"C", "D"}, {"A", "C"}, {"B", "D"}},
		{{"B", "C"}, {"D", "A"}, {"A", "C"}, {"B", "D"}},
	}
}

// twoTriangles is A-B-C and D-E-F with no edge between them.
func twoTriangles() []sedge {
	return []sedge{
		{"A", "B"}, {"B", "C"}, {"C", "A"},
		{"D", "E"}, {"E", "F"}, {"F", "D"},
	}
}

// cycleWithChords is C_20 on 0..19 followed by 54 chords: every (i,i+2) and
// (i,i+3) mod 20, then (i,i+4) for i<14. |E|=74 and the first 20 edges form
// the Hamiltonian cycle.
func cycleWithChords() []hamilton.Edge[int] {
	var edges []hamilton.Edge[int]
	for _, step := range []struct{ d, count int }{{1, 20}, {2, 20}, {3, 20}, {4, 14}} {
		for i := 0; i < step.count; i++ {
			edges = append(edges, hamilton.E(i, (i+step.d)%20))
		}
	}

	return edges
}

// completeInt returns K_n on 0..n-1 in lexicographic pair order.
func completeInt(n int) []hamilton.Edge[int] {
	var edges []hamilton.Edge[int]
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, hamilton.E(i, j))
		}
	}

	return edges
}
