// Package dijkstra finds cheapest paths across weighted grids.
//
// Overview:
//
//   - Dijkstra computes the minimum entry cost from a source cell to every
//     reachable cell of a grid.Grid in O(V log V) time, V = W×H.
//   - Edge weights come from a cost function over the destination cell value,
//     which covers "risk levels", "elevation penalties" and walls alike
//     (return a large cap together with WithMaxDistance to make cells impassable).
//   - A min-heap with lazy decrease-key always expands the next-closest cell;
//     ties are broken by row-major index so runs are reproducible.
//
// Key features:
//
//   - Source / Target: pick the start cell and stop early once the target is settled.
//   - WithConnectivity: orthogonal (Conn4) or king (Conn8) moves.
//   - WithReturnPath: keep predecessors so Result.PathTo can rebuild a route.
//   - WithMaxDistance: stop exploring once distances exceed a cap.
//
// Example:
//
//	g, _ := grid.ParseDigits(input)
//	end := grid.Pt(g.Width-1, g.Height-1)
//	res, err := dijkstra.Dijkstra(g, func(v int) int64 { return int64(v) }, dijkstra.Target(end))
//	if err != nil {
//	    return err
//	}
//	risk, _ := res.Distance(end)
//
// See types.go for the full list of options and sentinel errors.
package dijkstra
