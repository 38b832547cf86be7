package grid

import (
	"fmt"
	"strings"
)

// Line is a segment between two grid points, both ends inclusive.
type Line struct {
	Start, End Point
}

// ParseLine parses "x1,y1 -> x2,y2".
func ParseLine(s string) (Line, error) {
	from, to, ok := strings.Cut(s, "->")
	if !ok {
		return Line{}, fmt.Errorf("%w: %q", ErrBadLine, s)
	}
	start, err := ParsePoint(from)
	if err != nil {
		return Line{}, fmt.Errorf("%w: %q: %w", ErrBadLine, s, err)
	}
	end, err := ParsePoint(to)
	if err != nil {
		return Line{}, fmt.Errorf("%w: %q: %w", ErrBadLine, s, err)
	}

	return Line{Start: start, End: end}, nil
}

// ParsePath parses a polyline "a -> b -> c" into its consecutive segments.
// A single point yields one degenerate segment from that point to itself.
func ParsePath(s string) ([]Line, error) {
	parts := strings.Split(s, "->")
	points := make([]Point, len(parts))
	for i, part := range parts {
		p, err := ParsePoint(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadLine, s, err)
		}
		points[i] = p
	}
	if len(points) == 1 {
		return []Line{{points[0], points[0]}}, nil
	}
	lines := make([]Line, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		lines = append(lines, Line{points[i-1], points[i]})
	}

	return lines, nil
}

// IsAxisAligned reports whether l is horizontal or vertical.
func (l Line) IsAxisAligned() bool {
	return l.Start.X == l.End.X || l.Start.Y == l.End.Y
}

// IsDiagonal reports whether l runs at exactly 45°.
func (l Line) IsDiagonal() bool {
	d := l.End.Sub(l.Start)
	return d.X != 0 && Abs(d.X) == Abs(d.Y)
}

// Points rasterizes l by stepping the unit sign vector from Start until End,
// both inclusive. Only axis-aligned and 45° lines are supported.
func (l Line) Points() ([]Point, error) {
	if !l.IsAxisAligned() && !l.IsDiagonal() {
		return nil, fmt.Errorf("%w: %v -> %v", ErrUnsupportedSlope, l.Start, l.End)
	}
	step := l.End.Sub(l.Start).Sign()
	out := make([]Point, 0, l.Start.Chebyshev(l.End)+1)
	for p := l.Start; ; p = p.Add(step) {
		out = append(out, p)
		if p == l.End {
			break
		}
	}

	return out, nil
}
