package y2021

import "github.com/katalvlaran/advent/puzzle"

// Year is the event year served by this package.
const Year = 2021

// Register adds every 2021 solver to r.
func Register(r *puzzle.Registry) {
	days := []struct {
		day int
		s   puzzle.Solver
	}{
		{1, Day01{}},
		{2, Day02{}},
		{3, Day03{}},
		{5, Day05{}},
		{6, Day06{}},
		{7, Day07{}},
		{8, Day08{}},
		{9, Day09{}},
		{10, Day10{}},
		{11, Day11{}},
		{14, Day14{}},
		{15, Day15{}},
		{16, Day16{}},
		{17, Day17{}},
		{20, Day20{}},
		{21, Day21{}},
		{22, Day22{}},
	}
	for _, d := range days {
		r.MustRegister(puzzle.Key{Year: Year, Day: d.day}, d.s)
	}
}
