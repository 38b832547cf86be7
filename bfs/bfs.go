package bfs

import (
	"fmt"

	"github.com/katalvlaran/advent/grid"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	neighbors func(N) []N
	opts      Options[N]
	queue     []queueItem[N]
	res       *Result[N]
}

// Search runs breadth-first search from start over the graph whose edges are
// produced by neighbors, applying any number of functional Options.
// Returns ErrNilNeighbors, ErrOptionViolation for bad options, or any
// user-supplied hook error.
func Search[N comparable](start N, neighbors func(N) []N, opts ...Option[N]) (*Result[N], error) {
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[N]{
		neighbors: neighbors,
		opts:      o,
		res: &Result[N]{
			Depth:  map[N]int{start: 0},
			Parent: make(map[N]N),
		},
	}
	w.queue = append(w.queue, queueItem[N]{node: start})
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// OnGrid runs Search over the cells of g starting at start, moving between
// in-bounds cells according to c. Use WithFilterNeighbor to encode move rules.
func OnGrid[T any](g *grid.Grid[T], start grid.Point, c grid.Connectivity, opts ...Option[grid.Point]) (*Result[grid.Point], error) {
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	return Search(start, func(p grid.Point) []grid.Point { return g.Neighbors(p, c) }, opts...)
}

// loop processes the queue until it is empty or the goal is found.
func (w *walker[N]) loop() error {
	for qi := 0; qi < len(w.queue); qi++ {
		item := w.queue[qi]
		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: visit %v: %w", item.node, err)
		}
		if w.opts.Goal != nil && w.opts.Goal(item.node) {
			w.res.Goal, w.res.Found = item.node, true
			return nil
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		for _, next := range w.neighbors(item.node) {
			if _, seen := w.res.Depth[next]; seen {
				continue
			}
			if !w.opts.FilterNeighbor(item.node, next) {
				continue
			}
			w.res.Depth[next] = item.depth + 1
			w.res.Parent[next] = item.node
			w.queue = append(w.queue, queueItem[N]{node: next, depth: item.depth + 1})
		}
	}

	return nil
}
