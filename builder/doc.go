// Package builder produces deterministic edge-list fixtures for Hamiltonian
// cycle experiments.
//
// Key components:
//
//   - Constructor: a function emitting edges from the resolved builderConfig.
//   - BuildEdges: the single entry-point; applies constructors in order and
//     concatenates their edges.
//   - Topologies:
//     – Complete(n):            K_n, pairs (i,j) with i<j in lexicographic order.
//     – Cycle(n):               C_n, (i, i+1 mod n).
//     – DisjointCycles(c, s):   c vertex-disjoint cycles of s vertices each.
//     – SquareWithDiagonals():  the fixed A..D square plus both diagonals.
//     – Path(n), Wheel(n), Star(n).
//     – RandomSparse(n, p):     each pair kept with probability p.
//   - DropEdges: deletes a percentage of edges at random, as the "make the
//     problem harder" step of Grover-vs-classical comparisons.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, SymbolNumberIDFn.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical edge lists.
//   - Invalid parameters return sentinel errors; only option constructors
//     panic on programmer error (nil RNG, nil ID scheme).
package builder
