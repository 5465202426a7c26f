// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// impl_square.go - SquareWithDiagonals fixture.
//
//	A───B
//	│ ╳ │
//	D───C
//
// Edge order: (A,B) (B,C) (C,D) (D,A) (A,C) (B,D). IDs are fixed letters and
// ignore cfg.idFn so that golden outputs stay readable.

package builder

// SquareWithDiagonals returns a Constructor for the four-cycle plus both
// diagonals. Its 4-edge subsets contain exactly three Hamiltonian cycles.
func SquareWithDiagonals() Constructor {
	return func(builderConfig) ([]Edge, error) {
		return []Edge{
			{From: "A", To: "B"}, {From: "B", To: "C"}, {From: "C", To: "D"},
			{From: "D", To: "A"}, {From: "A", To: "C"}, {From: "B", To: "D"},
		}, nil
	}
}
