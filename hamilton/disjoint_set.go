// SPDX-License-Identifier: MIT
// Package: hamcycle/hamilton
//
// disjoint_set.go - index-based union-find with path compression and union by rank.
//
// Complexity: near O(α(n)) amortized per find/union; O(n) space.

package hamilton

type disjointSet struct {
	parent []int
	rank   []uint8
}

func newDisjointSet(n int) disjointSet {
	ds := disjointSet{
		parent: make([]int, n),
		rank:   make([]uint8, n),
	}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns the root of x, halving the path on the way up.
func (ds disjointSet) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}

	return x
}

func (ds disjointSet) union(a, b int) {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
}
