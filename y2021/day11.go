package y2021

import (
	"strconv"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

// Day11 is "Dumbo Octopus": cascading energy flashes.
type Day11 struct{}

const syncLimit = 1_000_000

func parseOctopuses(in string) (*grid.Grid[int], error) {
	g, err := grid.ParseDigits(in)
	if err != nil {
		return nil, puzzle.Malformedf("octopus grid: %v", err)
	}

	return g, nil
}

// step advances the grid once and reports how many octopuses flashed.
// Energy above 9 flashes once per step, raising all eight neighbors;
// every flashed octopus ends the step at 0.
func step(g *grid.Grid[int]) int {
	var queue []grid.Point
	for _, p := range g.Points() {
		g.Set(p, g.At(p)+1)
		if g.At(p) > 9 {
			queue = append(queue, p)
		}
	}

	flashed := make(map[grid.Point]bool)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if flashed[p] {
			continue
		}
		flashed[p] = true
		for _, n := range g.Neighbors(p, grid.Conn8) {
			g.Set(n, g.At(n)+1)
			if g.At(n) > 9 && !flashed[n] {
				queue = append(queue, n)
			}
		}
	}

	for p := range flashed {
		g.Set(p, 0)
	}

	return len(flashed)
}

// Part1 counts flashes over 100 steps.
func (Day11) Part1(in string) (string, error) {
	g, err := parseOctopuses(in)
	if err != nil {
		return "", err
	}

	total := 0
	for i := 0; i < 100; i++ {
		total += step(g)
	}

	return strconv.Itoa(total), nil
}

// Part2 finds the first step in which every octopus flashes.
func (Day11) Part2(in string) (string, error) {
	g, err := parseOctopuses(in)
	if err != nil {
		return "", err
	}

	for i := 1; i <= syncLimit; i++ {
		if step(g) == g.Len() {
			return strconv.Itoa(i), nil
		}
	}

	return "", puzzle.Malformedf("no synchronized flash within %d steps", syncLimit)
}
