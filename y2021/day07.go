package y2021

import (
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day07 is "The Treachery of Whales": align crab submarines for minimum fuel.
type Day07 struct{}

func parseCrabs(in string) ([]int, []float64, error) {
	pos, err := input.Ints(in, ",")
	if err != nil {
		return nil, nil, err
	}
	if len(pos) == 0 {
		return nil, nil, puzzle.Malformedf("no crabs")
	}

	xs := make([]float64, len(pos))
	for i, p := range pos {
		xs[i] = float64(p)
	}
	sort.Float64s(xs)

	return pos, xs, nil
}

// fuel sums cost(|p - target|) over every crab.
func fuel(pos []int, target int, cost func(int) int) int {
	total := 0
	for _, p := range pos {
		total += cost(grid.Abs(p - target))
	}

	return total
}

// Part1 uses a linear cost, minimized at the median.
func (Day07) Part1(in string) (string, error) {
	pos, xs, err := parseCrabs(in)
	if err != nil {
		return "", err
	}

	median := int(stat.Quantile(0.5, stat.Empirical, xs, nil))

	return strconv.Itoa(fuel(pos, median, func(d int) int { return d })), nil
}

// Part2 uses a triangular cost. The optimum lies within half a step of the
// mean, so checking its floor and ceiling is enough.
func (Day07) Part2(in string) (string, error) {
	pos, xs, err := parseCrabs(in)
	if err != nil {
		return "", err
	}

	mean := stat.Mean(xs, nil)
	triangle := func(d int) int { return d * (d + 1) / 2 }
	lo := fuel(pos, int(math.Floor(mean)), triangle)
	hi := fuel(pos, int(math.Ceil(mean)), triangle)

	return strconv.Itoa(min(lo, hi)), nil
}
