// Package advent collects Advent of Code solvers and the small grid toolkit
// they share.
//
// What is in here?
//
//	A set of independent, single-pass solvers that read one puzzle input and
//	produce two answers, built on:
//		• grid/     : Point, Point3, Grid[T], Line rasterization, flood fill
//		• bfs/      : breadth-first search over grids, voxels and state graphs
//		• dijkstra/ : cheapest paths across weighted grids
//		• puzzle/   : the Solver contract and the (year, day) registry
//		• input/    : the flat input cache and parsing helpers
//		• config/   : aoc.yaml settings
//		• y2021/, y2022/ : the solvers themselves
//		• cmd/aoc   : the command-line runner
//
// Quick example:
//
//	r := puzzle.NewRegistry()
//	y2021.Register(r)
//	s, _ := r.Lookup(puzzle.Key{Year: 2021, Day: 15})
//	ans, err := puzzle.Solve(s, text)
//
// From the shell:
//
//	aoc solve --year 2021 --day 15
//	aoc list
package advent
