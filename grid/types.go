// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/advent.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadPoint indicates a point literal that is not "x,y" (or "x,y,z").
	ErrBadPoint = errors.New("grid: malformed point")
	// ErrBadLine indicates a line literal that is not "x1,y1 -> x2,y2".
	ErrBadLine = errors.New("grid: malformed line")
	// ErrUnsupportedSlope indicates a line that is neither axis-aligned nor at 45°.
	ErrUnsupportedSlope = errors.New("grid: only horizontal, vertical and diagonal lines can be rasterized")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor offsets for c, clockwise starting at north.
// The returned slice is shared and must not be modified.
func (c Connectivity) Offsets() []Point {
	if c == Conn8 {
		return offsets8
	}

	return offsets4
}

// Abs returns |v|.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Sign returns -1, 0 or 1 according to the sign of v.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Point is a 2D integer coordinate. X grows to the right, Y grows downwards
// when used to address a Grid.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Sign returns the unit step (each component in {-1,0,1}) pointing from the origin towards p.
func (p Point) Sign() Point { return Point{Sign(p.X), Sign(p.Y)} }

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point) Manhattan(q Point) int { return Abs(p.X-q.X) + Abs(p.Y-q.Y) }

// Chebyshev returns max(|p.X-q.X|, |p.Y-q.Y|): the number of king moves between p and q.
func (p Point) Chebyshev(q Point) int { return max(Abs(p.X-q.X), Abs(p.Y-q.Y)) }

// Neighbors returns the unbounded neighbors of p for the given connectivity.
func (p Point) Neighbors(c Connectivity) []Point {
	offs := c.Offsets()
	out := make([]Point, len(offs))
	for i, d := range offs {
		out[i] = p.Add(d)
	}

	return out
}

// String formats p as "x,y".
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// ParsePoint parses "x,y" (surrounding whitespace allowed).
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}

	return Point{x, y}, nil
}

// Point3 is a 3D integer coordinate.
type Point3 struct {
	X, Y, Z int
}

// Add returns p+q.
func (p Point3) Add(q Point3) Point3 { return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

// offsets6 are the face neighbors of a unit cube.
var offsets6 = []Point3{{-1, 0, 0}, {1, 0, 0}, {0, -1, 0}, {0, 1, 0}, {0, 0, -1}, {0, 0, 1}}

// Neighbors6 returns the six face-adjacent points of p.
func (p Point3) Neighbors6() []Point3 {
	out := make([]Point3, len(offsets6))
	for i, d := range offsets6 {
		out[i] = p.Add(d)
	}

	return out
}

// String formats p as "x,y,z".
func (p Point3) String() string { return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z) }

// ParsePoint3 parses "x,y,z". A two-component literal yields Z == 0.
func ParsePoint3(s string) (Point3, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) < 2 || len(parts) > 3 {
		return Point3{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	var v [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Point3{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
		}
		v[i] = n
	}

	return Point3{v[0], v[1], v[2]}, nil
}
