// Package hamcycle finds Hamiltonian cycles by exhaustive truth-table
// search over edge combinations.
//
// A graph is an ordered edge list; its vertex universe is the set of edge
// endpoints. Every size-|V| subset of the edges is a candidate, and a
// candidate is Hamiltonian iff every vertex has degree 2 and all vertices
// are connected. The full list of classifications, in lexicographic order
// of edge positions, is the truth table; padded to a power of two and
// written as '0'/'1' characters it becomes the truth map that an external
// search (for example Grover's algorithm) consumes.
//
// Subpackages:
//
//	hamilton/   - Edge and Vertex types, the evaluator, truth tables, rank/unrank
//	truthmap/   - bitmap encode/decode and binary address helpers
//	search/     - naive and oracle drivers, the Searcher capability
//	workpool/   - sequential, parallel and adaptive executors
//	builder/    - deterministic edge-list fixtures (K_n, C_n, wheels, ...)
//	tablestore/ - bbolt cache of truth maps
//	metrics/    - Prometheus collectors
//	config/     - YAML configuration and factories
//	cmd/hamcycle - the command-line tool
//
// Quick start:
//
//	edges := []hamilton.Edge[string]{
//		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"A", "C"}, {"B", "D"},
//	}
//	res, err := search.Naive(ctx, edges)
//	// res.Cycle == [(A,B) (B,C) (C,D) (D,A)]
//
//	res, err = search.Oracle(ctx, edges, search.LinearScan{})
//	// same answer, found through the truth map
package hamcycle
