package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/molalign/bfs"
	"github.com/katalvlaran/molalign/core"
)

// ExampleBFS_propane demonstrates BFS layering over the heavy-atom skeleton
// and hydrogens of propane (C0-C1-C2 with hydrogens 3..10).
func ExampleBFS_propane() {
	bonds := []core.Bond{
		{I: 0, J: 1, Order: 1}, {I: 1, J: 2, Order: 1},
		{I: 0, J: 3, Order: 1}, {I: 0, J: 4, Order: 1}, {I: 0, J: 5, Order: 1},
		{I: 1, J: 6, Order: 1}, {I: 1, J: 7, Order: 1},
		{I: 2, J: 8, Order: 1}, {I: 2, J: 9, Order: 1}, {I: 2, J: 10, Order: 1},
	}
	g, err := core.NewBondGraph(11, bonds)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Start from the central carbon.
	res, err := bfs.BFS(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth)
	// Output:
	// [1 0 2 6 7 3 4 5 8 9 10]
	// [1 0 1 2 2 2 1 1 2 2 2]
}

// ExampleForest shows one tree per fragment of a two-molecule system.
func ExampleForest() {
	// Water (0,1,2) and a hydrogen molecule (3,4).
	g, _ := core.NewBondGraph(5, []core.Bond{{I: 0, J: 1}, {I: 0, J: 2}, {I: 3, J: 4}})

	res, _ := bfs.Forest(g, []int{4, 0, 1, 2, 3})
	fmt.Println(res.Roots, res.Order)
	// Output:
	// [4 0] [4 3 0 1 2]
}
