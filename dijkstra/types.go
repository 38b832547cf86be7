// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted grids.
//
// Every cell of a grid.Grid is a vertex. Moving into a cell costs cost(value)
// for a caller supplied, non-negative cost function; the source cell itself
// is free. The algorithm maintains a priority queue of cells to explore and
// relaxes moves in increasing order of distance from the source cell.
//
// Complexity:
//
//	– Time:  O(V log V)   where V = W×H (each cell has at most 8 moves).
//	– Space: O(V)
//
// Options:
//
//	– Source:           starting cell (default: top-left corner).
//	– Target:           optional cell at which to stop early.
//	– WithConnectivity: Conn4 (default) or Conn8 moves.
//	– ReturnPath:       if true, keep predecessors for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; cells beyond this are skipped.
//
// Errors (sentinel):
//
//	– ErrNilGrid            if the provided grid pointer is nil.
//	– ErrNilCost            if no cost function is given.
//	– ErrSourceOutOfBounds  if the source cell lies outside the grid.
//	– ErrTargetOutOfBounds  if the target cell lies outside the grid.
//	– ErrNegativeWeight     if the cost function returns a negative value.
//	– ErrBadMaxDistance     if MaxDistance < 0.
//	– ErrNoPath             if a requested cell is unreachable.
//	– ErrPathNotRecorded    if PathTo is called without WithReturnPath.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, func(v int) int64 { return int64(v) },
//	    dijkstra.Target(grid.Pt(g.Width-1, g.Height-1)),
//	)
//	if err != nil {
//	    return err
//	}
//	risk, _ := res.Distance(grid.Pt(g.Width-1, g.Height-1))
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/advent/grid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil grid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNilCost indicates that no cost function was supplied.
	ErrNilCost = errors.New("dijkstra: cost function is nil")

	// ErrSourceOutOfBounds indicates that the source cell lies outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source cell outside grid")

	// ErrTargetOutOfBounds indicates that the target cell lies outside the grid.
	ErrTargetOutOfBounds = errors.New("dijkstra: target cell outside grid")

	// ErrNegativeWeight indicates that the cost function produced a negative weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that the requested cell was not reached.
	ErrNoPath = errors.New("dijkstra: cell is unreachable")

	// ErrPathNotRecorded indicates PathTo on a result computed without WithReturnPath.
	ErrPathNotRecorded = errors.New("dijkstra: predecessors not recorded; use WithReturnPath")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting cell.
// Target      – if HasTarget, the search stops once Target is settled.
// Conn        – neighbor connectivity for moves.
// ReturnPath  – if true, record predecessors; otherwise PathTo is unavailable.
// MaxDistance – optional cap on distances to explore (cells beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Source      grid.Point        // The starting cell
	Target      grid.Point        // Optional early-exit cell
	HasTarget   bool              // Whether Target was set
	Conn        grid.Connectivity // Move connectivity
	ReturnPath  bool              // Whether to record predecessors
	MaxDistance int64             // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell.
func Source(p grid.Point) Option {
	return func(o *Options) {
		o.Source = p
	}
}

// Target makes Dijkstra stop as soon as p has its final distance.
func Target(p grid.Point) Option {
	return func(o *Options) {
		o.Target = p
		o.HasTarget = true
	}
}

// WithConnectivity selects Conn4 or Conn8 moves.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithReturnPath enables predecessor tracking so that Result.PathTo works.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
// Default (if not set) is math.MaxInt64 (no cap).
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Invalid configuration is a programming error.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Source:      (0,0).
//   - Target:      none (full single-source run).
//   - Conn:        Conn4.
//   - ReturnPath:  false.
//   - MaxDistance: math.MaxInt64 (no distance limit; explore all reachable).
func DefaultOptions() Options {
	return Options{
		Conn:        grid.Conn4,
		MaxDistance: math.MaxInt64,
	}
}
