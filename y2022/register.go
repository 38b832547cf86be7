package y2022

import "github.com/katalvlaran/advent/puzzle"

// Year is the event year served by this package.
const Year = 2022

// Register adds every 2022 solver to r.
func Register(r *puzzle.Registry) {
	days := []struct {
		day int
		s   puzzle.Solver
	}{
		{1, Day01{}},
		{2, Day02{}},
		{3, Day03{}},
		{4, Day04{}},
		{5, Day05{}},
		{6, Day06{}},
		{7, Day07{}},
		{9, Day09{}},
		{12, Day12{}},
		{14, Day14{}},
		{17, Day17{}},
		{18, Day18{}},
	}
	for _, d := range days {
		r.MustRegister(puzzle.Key{Year: Year, Day: d.day}, d.s)
	}
}
