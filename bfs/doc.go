// Package bfs provides breadth-first search over implicit graphs:
// nodes are any comparable value and edges come from a neighbor function,
// so the same walker serves 2D grids, 3D voxel spaces and state graphs.
//
// What
//
//   - Explore nodes in non-decreasing distance (step count) from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Goal / Found: first dequeued node matching WithGoal
//   - OnGrid adapts a grid.Grid with Conn4 or Conn8 moves.
//
// Determinism
//
//	Neighbors are enqueued in the order the neighbor function returns them,
//	so the visit sequence is fully reproducible. Grid neighbors come
//	clockwise from north.
//
// Complexity (V = reachable nodes, E = edges examined)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.OnGrid(g, start, grid.Conn4,
//	    bfs.WithFilterNeighbor(func(cur, next grid.Point) bool { return g.At(next)-g.At(cur) <= 1 }),
//	    bfs.WithGoal(func(p grid.Point) bool { return p == end }),
//	)
//
// Errors
//
//   - ErrNilNeighbors      if no neighbor function is supplied.
//   - ErrStartOutOfBounds  if OnGrid's start is outside the grid.
//   - ErrOptionViolation   if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath            from Result.PathTo for unreached nodes.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
