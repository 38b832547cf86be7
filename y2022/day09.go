package y2022

import (
	"strconv"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day09 is "Rope Bridge".
type Day09 struct{}

var ropeDirs = map[string]grid.Point{
	"U": {X: 0, Y: -1},
	"D": {X: 0, Y: 1},
	"L": {X: -1, Y: 0},
	"R": {X: 1, Y: 0},
}

// rope simulates a rope of n knots and counts the cells its tail visits.
// A knot that is no longer touching its leader steps one cell toward it
// along each axis.
func rope(in string, n int) (string, error) {
	knots := make([]grid.Point, n)
	visited := map[grid.Point]bool{knots[n-1]: true}

	for _, f := range input.Fields(in) {
		if len(f) != 2 {
			return "", puzzle.Malformedf("motion %q", f)
		}
		dir, ok := ropeDirs[f[0]]
		if !ok {
			return "", puzzle.Malformedf("direction %q", f[0])
		}
		steps, err := input.Atoi(f[1])
		if err != nil {
			return "", err
		}

		for s := 0; s < steps; s++ {
			knots[0] = knots[0].Add(dir)
			for i := 1; i < n; i++ {
				if knots[i].Chebyshev(knots[i-1]) <= 1 {
					break
				}
				knots[i] = knots[i].Add(knots[i-1].Sub(knots[i]).Sign())
			}
			visited[knots[n-1]] = true
		}
	}

	return strconv.Itoa(len(visited)), nil
}

// Part1 uses a head and a tail.
func (Day09) Part1(in string) (string, error) { return rope(in, 2) }

// Part2 uses ten knots.
func (Day09) Part2(in string) (string, error) { return rope(in, 10) }
