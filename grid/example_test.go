package grid_test

import (
	"fmt"

	"github.com/katalvlaran/advent/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Components
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Components identifies contiguous islands of non-zero cells.
func ExampleGrid_Components() {
	g, _ := grid.FromRows([][]int{
		{0, 1, 1, 0, 2},
		{0, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	})

	comps := g.Components(grid.Conn4, func(v int) bool { return v > 0 })
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d: %v\n", i, comp)
	}

	// Output:
	// components: 3
	// component 0: [1,0 2,0 1,1]
	// component 1: [4,0 4,1 3,1 3,2 2,2]
	// component 2: [0,2]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Line
////////////////////////////////////////////////////////////////////////////////

func ExampleLine_Points() {
	l, _ := grid.ParseLine("1,1 -> 3,3")
	pts, _ := l.Points()
	fmt.Println(pts)

	// Output:
	// [1,1 2,2 3,3]
}
