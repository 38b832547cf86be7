package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular, row-major 2D array of cells addressed by Point.
// Width and Height are fixed at construction.
type Grid[T any] struct {
	Width, Height int
	cells         []T
}

// New returns a w×h grid with every cell set to fill.
// Panics if w or h is negative.
func New[T any](w, h int, fill T) *Grid[T] {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("grid: negative dimensions %dx%d", w, h))
	}
	cells := make([]T, w*h)
	for i := range cells {
		cells[i] = fill
	}

	return &Grid[T]{Width: w, Height: h, cells: cells}
}

// FromRows constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]T, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{Width: w, Height: h, cells: cells}, nil
}

// Parse builds a grid from newline separated text, one cell per rune,
// converting every rune with cell. Blank lines at either end are ignored
// and "\r" is stripped.
func Parse[T any](text string, cell func(r rune) (T, error)) (*Grid[T], error) {
	text = strings.Trim(strings.ReplaceAll(text, "\r", ""), "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	rows := make([][]T, len(lines))
	for y, line := range lines {
		line = strings.TrimSpace(line)
		row := make([]T, 0, len(line))
		for x, r := range []rune(line) {
			v, err := cell(r)
			if err != nil {
				return nil, fmt.Errorf("grid: cell %d,%d: %w", x, y, err)
			}
			row = append(row, v)
		}
		rows[y] = row
	}

	return FromRows(rows)
}

// ParseDigits builds a grid of single decimal digits such as "2199943210".
func ParseDigits(text string) (*Grid[int], error) {
	return Parse(text, func(r rune) (int, error) {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("not a digit: %q", r)
		}
		return int(r - '0'), nil
	})
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Index maps p to a row-major index: y*Width + x.
func (g *Grid[T]) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid[T]) Coordinate(idx int) Point {
	return Point{idx % g.Width, idx / g.Width}
}

// At returns the value stored at p. Panics if p is out of bounds.
func (g *Grid[T]) At(p Point) T {
	g.mustContain(p)
	return g.cells[g.Index(p)]
}

// Get returns the value at p and whether p is in bounds.
func (g *Grid[T]) Get(p Point) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}

	return g.cells[g.Index(p)], true
}

// Set stores v at p. Panics if p is out of bounds.
func (g *Grid[T]) Set(p Point, v T) {
	g.mustContain(p)
	g.cells[g.Index(p)] = v
}

func (g *Grid[T]) mustContain(p Point) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: point %v outside %dx%d grid", p, g.Width, g.Height))
	}
}

// Len returns Width*Height.
func (g *Grid[T]) Len() int { return len(g.cells) }

// Data exposes the row-major backing slice. Mutating it mutates the grid.
func (g *Grid[T]) Data() []T { return g.cells }

// Neighbors returns the in-bounds neighbors of p, clockwise from north.
func (g *Grid[T]) Neighbors(p Point, c Connectivity) []Point {
	offs := c.Offsets()
	out := make([]Point, 0, len(offs))
	for _, d := range offs {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// Points returns every coordinate of the grid in row-major order.
func (g *Grid[T]) Points() []Point {
	out := make([]Point, 0, len(g.cells))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			out = append(out, Point{x, y})
		}
	}

	return out
}

// Count returns the number of cells for which pred holds.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}

	return n
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)

	return &Grid[T]{Width: g.Width, Height: g.Height, cells: cells}
}

// Render draws the grid one row per line using format for each cell.
func (g *Grid[T]) Render(format func(T) string) string {
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			b.WriteString(format(g.cells[y*g.Width+x]))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// String implements fmt.Stringer using fmt.Sprint for each cell.
func (g *Grid[T]) String() string {
	return g.Render(func(v T) string { return fmt.Sprint(v) })
}
