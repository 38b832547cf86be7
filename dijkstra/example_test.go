package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/advent/dijkstra"
	"github.com/katalvlaran/advent/grid"
)

// -----------------------------------------------------------------------------
// Example: cheapest route through a small risk map
// -----------------------------------------------------------------------------

// ExampleDijkstra finds the lowest-risk route from the top-left to the
// bottom-right corner. Entering a cell costs its digit.
func ExampleDijkstra() {
	g, _ := grid.ParseDigits("131\n151\n111")
	end := grid.Pt(2, 2)

	res, err := dijkstra.Dijkstra(g, func(v int) int64 { return int64(v) },
		dijkstra.Target(end),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, _ := res.Distance(end)
	path, _ := res.PathTo(end)
	fmt.Println("risk:", d)
	fmt.Println("path:", path)
	// Output:
	// risk: 4
	// path: [0,0 0,1 0,2 1,2 2,2]
}
