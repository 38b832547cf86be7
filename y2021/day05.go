package y2021

import (
	"strconv"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day05 is "Hydrothermal Venture": count points covered by two or more vents.
type Day05 struct{}

// Part1 considers horizontal and vertical vents only.
func (Day05) Part1(in string) (string, error) {
	return overlaps(in, false)
}

// Part2 adds 45° diagonals.
func (Day05) Part2(in string) (string, error) {
	return overlaps(in, true)
}

func overlaps(in string, diagonals bool) (string, error) {
	seen := make(map[grid.Point]int)
	for _, l := range input.Lines(in) {
		line, err := grid.ParseLine(l)
		if err != nil {
			return "", puzzle.Malformedf("vent: %v", err)
		}
		if !line.IsAxisAligned() && !(diagonals && line.IsDiagonal()) {
			continue
		}
		pts, err := line.Points()
		if err != nil {
			return "", puzzle.Malformedf("vent: %v", err)
		}
		for _, p := range pts {
			seen[p]++
		}
	}

	n := 0
	for _, c := range seen {
		if c >= 2 {
			n++
		}
	}

	return strconv.Itoa(n), nil
}
