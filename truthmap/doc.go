// SPDX-License-Identifier: MIT

// Package truthmap serializes a Hamiltonian truth table into the '0'/'1'
// bitmap a bitmap-indexed oracle consumes, and maps oracle addresses back to
// table entries.
//
// Layout:
//
//	table:  e0 e1 e2 ... e(n-1)
//	bitmap: b0 b1 b2 ... b(n-1) 0 0 ... 0      len = 2^k ≥ max(n,1)
//
// Address i of the bitmap is entry i of the table. Padding bits are always '0'
// and never decode: Decode rejects any index ≥ table length.
package truthmap
