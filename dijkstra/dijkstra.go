package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/advent/grid"
)

// Result holds the outcome of a Dijkstra run over a grid.
// Distances are stored row-major; only settled cells are reported.
type Result struct {
	width   int
	dist    []int64
	prev    []int  // nil unless WithReturnPath; -1 marks "no predecessor"
	settled []bool // distance final when the run ended
}

// Distance returns the minimum cost of reaching p, or ErrNoPath.
// After an early stop at Target (or at MaxDistance) only cells settled
// before the stop have a distance; tentative ones report ErrNoPath.
func (r *Result) Distance(p grid.Point) (int64, error) {
	i, ok := r.index(p)
	if !ok || !r.settled[i] {
		return 0, fmt.Errorf("%w: %v", ErrNoPath, p)
	}

	return r.dist[i], nil
}

// PathTo rebuilds the cheapest path from the source to p, both ends included.
// Like Distance it fails with ErrNoPath for cells that were never settled.
func (r *Result) PathTo(p grid.Point) ([]grid.Point, error) {
	if r.prev == nil {
		return nil, ErrPathNotRecorded
	}
	i, ok := r.index(p)
	if !ok || !r.settled[i] {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, p)
	}

	var rev []grid.Point
	for ; i >= 0; i = r.prev[i] {
		rev = append(rev, grid.Pt(i%r.width, i/r.width))
	}
	path := make([]grid.Point, len(rev))
	for k := range rev {
		path[k] = rev[len(rev)-1-k]
	}

	return path, nil
}

func (r *Result) index(p grid.Point) (int, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= r.width || r.width == 0 {
		return 0, false
	}
	i := p.Y*r.width + p.X
	if i >= len(r.dist) {
		return 0, false
	}

	return i, true
}

// Dijkstra computes minimum entry costs from Options.Source to every cell of g.
// Entering a cell with value v costs cost(v); the source cell costs nothing.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. cost must be non-nil (ErrNilCost).
//  3. Source must lie inside g (ErrSourceOutOfBounds).
//  4. Target, if set, must lie inside g (ErrTargetOutOfBounds).
//
// A negative cost discovered during relaxation aborts with ErrNegativeWeight.
// With Target set, the run stops as soon as the target distance is final;
// cells not yet settled at that point report ErrNoPath from the Result.
func Dijkstra[T any](g *grid.Grid[T], cost func(T) int64, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGrid
	}
	if cost == nil {
		return nil, ErrNilCost
	}
	if !g.InBounds(cfg.Source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceOutOfBounds, cfg.Source)
	}
	if cfg.HasTarget && !g.InBounds(cfg.Target) {
		return nil, fmt.Errorf("%w: %v", ErrTargetOutOfBounds, cfg.Target)
	}

	n := g.Len()
	r := &runner[T]{
		g:       g,
		cost:    cost,
		options: cfg,
		dist:    make([]int64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{width: g.Width, dist: r.dist, prev: r.prev, settled: r.visited}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[T any] struct {
	g       *grid.Grid[T]
	cost    func(T) int64
	options Options
	dist    []int64 // row-major index → best distance from Source
	prev    []int   // row-major index → predecessor index, or -1
	visited []bool  // distance finalized
	pq      nodePQ
}

// init sets every distance to +∞, then seeds the heap with Source at distance 0.
func (r *runner[T]) init() {
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
		if r.prev != nil {
			r.prev[i] = -1
		}
	}

	src := r.g.Index(r.options.Source)
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})
}

// process pops cells in increasing distance until the heap drains,
// the distance cap is exceeded, or the target is settled.
func (r *runner[T]) process() error {
	target := -1
	if r.options.HasTarget {
		target = r.g.Index(r.options.Target)
	}

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distance of each in-bounds neighbor of u.
func (r *runner[T]) relax(u int) error {
	from := r.g.Coordinate(u)
	for _, next := range r.g.Neighbors(from, r.options.Conn) {
		v := r.g.Index(next)
		if r.visited[v] {
			continue
		}

		w := r.cost(r.g.At(next))
		if w < 0 {
			return fmt.Errorf("%w: %v→%v weight=%d", ErrNegativeWeight, from, next, w)
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		// Lazy decrease-key: the outdated entry is skipped when popped.
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a heap entry: a row-major cell index and its tentative distance.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties broken by index
// so that runs are reproducible.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
