package y2022

import (
	"strconv"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day14 is "Regolith Reservoir": falling sand.
type Day14 struct{}

var sandSource = grid.Pt(500, 0)

// cave is the set of blocked cells and the lowest rock row.
type cave struct {
	blocked map[grid.Point]bool
	maxY    int
}

func parseCave(in string) (cave, error) {
	c := cave{blocked: make(map[grid.Point]bool)}
	for _, l := range input.Lines(in) {
		segments, err := grid.ParsePath(l)
		if err != nil {
			return c, puzzle.Malformedf("rock path: %v", err)
		}
		for _, s := range segments {
			pts, err := s.Points()
			if err != nil || !s.IsAxisAligned() {
				return c, puzzle.Malformedf("rock path %q is not axis-aligned", l)
			}
			for _, p := range pts {
				c.blocked[p] = true
				c.maxY = max(c.maxY, p.Y)
			}
		}
	}
	if len(c.blocked) == 0 {
		return c, puzzle.Malformedf("no rock")
	}

	return c, nil
}

// fall drops one unit of sand and returns where it rests. With floor set,
// a solid floor lies two rows below the lowest rock; without it, sand
// passing the lowest rock falls forever and ok is false.
func (c cave) fall(floor bool) (rest grid.Point, ok bool) {
	p := sandSource
	moves := []grid.Point{{X: 0, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: 1}}
	for {
		if p.Y > c.maxY && !floor {
			return p, false
		}
		moved := false
		for _, m := range moves {
			next := p.Add(m)
			if floor && next.Y == c.maxY+2 {
				break
			}
			if !c.blocked[next] {
				p, moved = next, true
				break
			}
		}
		if !moved {
			return p, true
		}
	}
}

// Part1 counts sand resting before sand starts flowing into the abyss.
func (Day14) Part1(in string) (string, error) {
	c, err := parseCave(in)
	if err != nil {
		return "", err
	}

	n := 0
	for {
		p, ok := c.fall(false)
		if !ok {
			return strconv.Itoa(n), nil
		}
		c.blocked[p] = true
		n++
	}
}

// Part2 counts sand resting on the floor until the source is blocked.
func (Day14) Part2(in string) (string, error) {
	c, err := parseCave(in)
	if err != nil {
		return "", err
	}

	n := 0
	for !c.blocked[sandSource] {
		p, _ := c.fall(true)
		c.blocked[p] = true
		n++
	}

	return strconv.Itoa(n), nil
}
