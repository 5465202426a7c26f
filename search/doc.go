// SPDX-License-Identifier: MIT

// Package search drives Hamiltonian cycle searches over an edge list.
//
// Two drivers share the same Result shape:
//
//   - Naive: walks combinations in table order and stops at the first
//     Hamiltonian one. Order-sensitive and deterministic.
//   - Oracle: builds the truth table, encodes it as a truth map, hands the
//     bitmap to an injected Searcher, and decodes the returned address. The
//     driver's guarantees end at producing a correct bitmap and decoding the
//     address correctly; finding a set bit is the Searcher's job.
//
// A Searcher is any black box "given a bitmap, return the address of a set
// bit". LinearScan and RandomProbe are classical stand-ins; Command delegates
// to an external program (for example a quantum-search script).
package search
