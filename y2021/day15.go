package y2021

import (
	"strconv"

	"github.com/katalvlaran/advent/dijkstra"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

// Day15 is "Chiton": lowest total risk from top-left to bottom-right.
type Day15 struct{}

// Part1 searches the map as given.
func (Day15) Part1(in string) (string, error) {
	g, err := grid.ParseDigits(in)
	if err != nil {
		return "", puzzle.Malformedf("risk map: %v", err)
	}

	return lowestRisk(g)
}

// Part2 searches the map tiled 5×5.
func (Day15) Part2(in string) (string, error) {
	g, err := grid.ParseDigits(in)
	if err != nil {
		return "", puzzle.Malformedf("risk map: %v", err)
	}

	return lowestRisk(tile(g, 5))
}

// tile repeats g n times in each direction. Each tile step right or down
// adds 1 to every risk, wrapping values above 9 back to 1.
func tile(g *grid.Grid[int], n int) *grid.Grid[int] {
	out := grid.New(g.Width*n, g.Height*n, 0)
	for _, p := range out.Points() {
		v := g.At(grid.Pt(p.X%g.Width, p.Y%g.Height)) + p.X/g.Width + p.Y/g.Height
		if v > 9 {
			v = v%10 + 1
		}
		out.Set(p, v)
	}

	return out
}

func lowestRisk(g *grid.Grid[int]) (string, error) {
	end := grid.Pt(g.Width-1, g.Height-1)
	res, err := dijkstra.Dijkstra(g, func(v int) int64 { return int64(v) }, dijkstra.Target(end))
	if err != nil {
		return "", err
	}
	d, err := res.Distance(end)
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(d, 10), nil
}
