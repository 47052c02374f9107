package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/matrix"
)

// ExampleSearch traces the stack order of a search for node 3.
//
//	  0
//	 / \
//	1   2
//	|   |
//	3   4
func ExampleSearch() {
	am := matrix.Build([]matrix.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 3}, {U: 2, V: 4}}, 5)

	found, err := bfs.Search(am, 3,
		bfs.WithRoot(0),
		bfs.WithOnVisit(func(node, step int) error {
			fmt.Printf("step %d: %d\n", step, node)
			return nil
		}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", found)
	// Output:
	// step 1: 0
	// step 2: 2
	// step 3: 4
	// step 4: 1
	// step 5: 3
	// found: true
}
