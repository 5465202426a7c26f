package hamilton_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hamcycle/hamilton"
	"github.com/katalvlaran/hamcycle/workpool"
)

// ExampleEvaluator_GenerateTruthTable lists the Hamiltonian 4-edge subsets of
// a square with both diagonals.
func ExampleEvaluator_GenerateTruthTable() {
	ev, err := hamilton.NewEvaluator([]hamilton.Edge[string]{
		hamilton.E("A", "B"), hamilton.E("B", "C"), hamilton.E("C", "D"),
		hamilton.E("D", "A"), hamilton.E("A", "C"), hamilton.E("B", "D"),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	table, err := ev.GenerateTruthTable(context.Background(), workpool.Sequential{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("vertices=%d edges=%d combinations=%d\n", ev.VertexCount(), ev.EdgeCount(), table.Len())
	for i, e := range table.All() {
		if e.Hamiltonian {
			fmt.Println(i, e.Edges)
		}
	}
	// Output:
	// vertices=4 edges=6 combinations=15
	// 0 [(A,B) (B,C) (C,D) (D,A)]
	// 8 [(A,B) (C,D) (A,C) (B,D)]
	// 13 [(B,C) (D,A) (A,C) (B,D)]
}

func ExampleEvaluator_IsHamiltonian() {
	ev, _ := hamilton.NewEvaluator([]hamilton.Edge[int]{{1, 2}, {2, 3}, {3, 1}, {3, 4}, {4, 1}})

	fmt.Println(ev.IsHamiltonian([]hamilton.Edge[int]{{1, 2}, {2, 3}, {3, 4}, {4, 1}}))
	fmt.Println(ev.IsHamiltonian([]hamilton.Edge[int]{{1, 2}, {2, 3}, {3, 1}, {3, 4}}))
	// Output:
	// true
	// false
}
