// SPDX-License-Identifier: MIT

// Package hamilton decides whether edge subsets of a small graph form a
// Hamiltonian cycle and enumerates the full truth table of size-|V| subsets.
//
// 🚀 What it does
//
//	Given an edge list E over vertices V (V is derived from E):
//		• IsHamiltonian(candidate) - exact |V| edges, every vertex touched,
//		  every degree == 2, one connected component.
//		• GenerateTruthTable - every C(|E|,|V|) combination, classified, in
//		  lexicographic order of edge positions.
//		• Rank / Unrank - the bijection between a combination and its table index.
//
// Quick ASCII example (square with both diagonals):
//
//	A───B
//	│ ╳ │
//	D───C
//
//	E = (A,B) (B,C) (C,D) (D,A) (A,C) (B,D); |V| = 4; C(6,4) = 15 candidates,
//	exactly 3 of which are Hamiltonian.
//
// Table order is the single source of truth that connects a truth-map bitmap
// address (see package truthmap) back to an edge subset.
//
// Edges keep their orientation and are never deduplicated: (u,v) and (v,u)
// in the input are two distinct combinatorial items.
package hamilton
