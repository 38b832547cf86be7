package grid

// Region collects every point reachable from start through cells whose value
// satisfies member, according to c connectivity. start itself is included only
// if it is in bounds and a member; otherwise Region returns nil.
// Points are returned in breadth-first order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid[T]) Region(start Point, c Connectivity, member func(T) bool) []Point {
	if !g.InBounds(start) || !member(g.At(start)) {
		return nil
	}
	seen := make([]bool, len(g.cells))

	return g.collect(g.Index(start), seen, c, member)
}

// Components finds all contiguous regions of member cells according to c.
// Returns a slice of components; each component lists its points in
// breadth-first order, and components appear in row-major order of their
// first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid[T]) Components(c Connectivity, member func(T) bool) [][]Point {
	seen := make([]bool, len(g.cells))
	var comps [][]Point
	for i, v := range g.cells {
		if seen[i] || !member(v) {
			continue
		}
		comps = append(comps, g.collect(i, seen, c, member))
	}

	return comps
}

// collect runs a BFS from index i0, marking seen as it goes.
func (g *Grid[T]) collect(i0 int, seen []bool, c Connectivity, member func(T) bool) []Point {
	offsets := c.Offsets()
	queue := []int{i0}
	seen[i0] = true
	var comp []Point

	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		comp = append(comp, u)
		for _, d := range offsets {
			v := u.Add(d)
			if !g.InBounds(v) {
				continue
			}
			vi := g.Index(v)
			if !seen[vi] && member(g.cells[vi]) {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return comp
}
