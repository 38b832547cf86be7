package y2022

import (
	"strconv"

	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day18 is "Boiling Boulders": surface area of a lava droplet.
type Day18 struct{}

func parseCubes(in string) (map[grid.Point3]bool, error) {
	cubes := make(map[grid.Point3]bool)
	for _, l := range input.Lines(in) {
		p, err := grid.ParsePoint3(l)
		if err != nil {
			return nil, puzzle.Malformedf("cube: %v", err)
		}
		cubes[p] = true
	}

	return cubes, nil
}

// Part1 counts faces not touching another cube: 6 per cube minus two per
// adjacent pair.
func (Day18) Part1(in string) (string, error) {
	cubes, err := parseCubes(in)
	if err != nil {
		return "", err
	}

	faces := 0
	for c := range cubes {
		for _, n := range c.Neighbors6() {
			if !cubes[n] {
				faces++
			}
		}
	}

	return strconv.Itoa(faces), nil
}

// Part2 counts only faces reachable by steam from outside: flood the
// bounding box grown by one in every direction and count each face where
// the flood meets lava.
func (Day18) Part2(in string) (string, error) {
	cubes, err := parseCubes(in)
	if err != nil {
		return "", err
	}
	if len(cubes) == 0 {
		return "0", nil
	}

	var lo, hi grid.Point3
	first := true
	for c := range cubes {
		if first {
			lo, hi, first = c, c, false
		}
		lo = grid.Point3{X: min(lo.X, c.X), Y: min(lo.Y, c.Y), Z: min(lo.Z, c.Z)}
		hi = grid.Point3{X: max(hi.X, c.X), Y: max(hi.Y, c.Y), Z: max(hi.Z, c.Z)}
	}
	lo = lo.Add(grid.Point3{X: -1, Y: -1, Z: -1})
	hi = hi.Add(grid.Point3{X: 1, Y: 1, Z: 1})
	inBox := func(p grid.Point3) bool {
		return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y && p.Z >= lo.Z && p.Z <= hi.Z
	}

	faces := 0
	_, err = bfs.Search(lo, func(p grid.Point3) []grid.Point3 {
		var out []grid.Point3
		for _, n := range p.Neighbors6() {
			switch {
			case !inBox(n):
			case cubes[n]:
				faces++
			default:
				out = append(out, n)
			}
		}
		return out
	})
	if err != nil {
		return "", err
	}

	return strconv.Itoa(faces), nil
}
