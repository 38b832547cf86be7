package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/grid"
)

// ExampleOnGrid demonstrates BFS layering on an open 3×3 grid.
// The visit order follows non-decreasing Manhattan distance from the corner.
func ExampleOnGrid() {
	g := grid.New(3, 3, 0)

	res, err := bfs.OnGrid(g, grid.Pt(0, 0), grid.Conn4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Order)
	fmt.Println("far corner depth:", res.Depth[grid.Pt(2, 2)])
	// Output:
	// [0,0 1,0 0,1 2,0 1,1 0,2 2,1 1,2 2,2]
	// far corner depth: 4
}
