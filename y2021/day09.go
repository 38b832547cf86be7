package y2021

import (
	"slices"
	"strconv"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

// Day09 is "Smoke Basin".
type Day09 struct{}

func parseHeights(in string) (*grid.Grid[int], error) {
	g, err := grid.ParseDigits(in)
	if err != nil {
		return nil, puzzle.Malformedf("heightmap: %v", err)
	}

	return g, nil
}

// lowPoints returns cells strictly lower than all orthogonal neighbors.
func lowPoints(g *grid.Grid[int]) []grid.Point {
	var out []grid.Point
	for _, p := range g.Points() {
		low := true
		for _, n := range g.Neighbors(p, grid.Conn4) {
			if g.At(n) <= g.At(p) {
				low = false
				break
			}
		}
		if low {
			out = append(out, p)
		}
	}

	return out
}

// Part1 sums the risk level (height + 1) of every low point.
func (Day09) Part1(in string) (string, error) {
	g, err := parseHeights(in)
	if err != nil {
		return "", err
	}

	risk := 0
	for _, p := range lowPoints(g) {
		risk += g.At(p) + 1
	}

	return strconv.Itoa(risk), nil
}

// Part2 multiplies the sizes of the three largest basins. A basin is the
// region around a low point bounded by height 9.
func (Day09) Part2(in string) (string, error) {
	g, err := parseHeights(in)
	if err != nil {
		return "", err
	}

	var sizes []int
	for _, p := range lowPoints(g) {
		sizes = append(sizes, len(g.Region(p, grid.Conn4, func(h int) bool { return h != 9 })))
	}
	if len(sizes) < 3 {
		return "", puzzle.Malformedf("only %d basins", len(sizes))
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)

	return strconv.Itoa(sizes[0] * sizes[1] * sizes[2]), nil
}
