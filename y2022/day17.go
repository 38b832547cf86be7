package y2022

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

// Day17 is "Pyroclastic Flow": falling rocks pushed sideways by jets of gas.
type Day17 struct{}

const (
	chamberWidth = 7
	// profileDepth caps how far below the top a surface profile looks.
	profileDepth = 64
)

// rockShapes are the five rocks in fall order, as cells offset from the
// bottom-left corner with y pointing up.
var rockShapes = [][]grid.Point{
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
	{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}},
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}},
	{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}},
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
}

func parseJets(in string) ([]int, error) {
	s := strings.TrimSpace(in)
	if s == "" {
		return nil, puzzle.Malformedf("no jets")
	}

	jets := make([]int, len(s))
	for i, r := range []byte(s) {
		switch r {
		case '<':
			jets[i] = -1
		case '>':
			jets[i] = 1
		default:
			return nil, puzzle.Malformedf("jet %q", r)
		}
	}

	return jets, nil
}

// chamber is the settled tower, one bitmask per row from the floor up,
// and the position in the repeating jet pattern.
type chamber struct {
	rows []uint8
	jets []int
	jet  int
}

// hits reports whether rock placed at at overlaps a wall, the floor or a
// settled cell.
func (c *chamber) hits(rock []grid.Point, at grid.Point) bool {
	for _, d := range rock {
		p := at.Add(d)
		if p.X < 0 || p.X >= chamberWidth || p.Y < 0 {
			return true
		}
		if p.Y < len(c.rows) && c.rows[p.Y]&(1<<p.X) != 0 {
			return true
		}
	}

	return false
}

// drop spawns rock two cells from the left wall and three rows above the
// tower, then alternates jet pushes and falls until it rests.
func (c *chamber) drop(rock []grid.Point) {
	at := grid.Pt(2, len(c.rows)+3)
	down := grid.Pt(0, -1)
	for {
		push := grid.Pt(c.jets[c.jet], 0)
		c.jet = (c.jet + 1) % len(c.jets)
		if !c.hits(rock, at.Add(push)) {
			at = at.Add(push)
		}
		if c.hits(rock, at.Add(down)) {
			break
		}
		at = at.Add(down)
	}

	for _, d := range rock {
		p := at.Add(d)
		for len(c.rows) <= p.Y {
			c.rows = append(c.rows, 0)
		}
		c.rows[p.Y] |= 1 << p.X
	}
}

// towerState is what the next drops depend on: which rock and jet come
// next, and how deep the open space reaches into each column.
type towerState struct {
	rock, jet int
	profile   [chamberWidth]int
}

func (c *chamber) state(rock int) towerState {
	s := towerState{rock: rock, jet: c.jet}
	top := len(c.rows) - 1
	for x := 0; x < chamberWidth; x++ {
		d := 0
		for d < profileDepth && top-d >= 0 && c.rows[top-d]&(1<<x) == 0 {
			d++
		}
		s.profile[x] = d
	}

	return s
}

// towerHeight drops n rocks and returns the tower height. Once a state
// repeats, the whole cycles that still fit are skipped in one step and
// only the remainder is simulated.
func towerHeight(jets []int, n int) int {
	type mark struct{ dropped, height int }

	c := &chamber{jets: jets}
	seen := make(map[towerState]mark)
	skipped := 0
	for dropped := 0; dropped < n; {
		c.drop(rockShapes[dropped%len(rockShapes)])
		dropped++
		if skipped > 0 {
			continue
		}

		key := c.state(dropped % len(rockShapes))
		if m, ok := seen[key]; ok {
			period := dropped - m.dropped
			cycles := (n - dropped) / period
			dropped += cycles * period
			skipped = cycles * (len(c.rows) - m.height)
			continue
		}
		seen[key] = mark{dropped: dropped, height: len(c.rows)}
	}

	return len(c.rows) + skipped
}

// Part1 measures the tower after 2022 rocks.
func (Day17) Part1(in string) (string, error) {
	jets, err := parseJets(in)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(towerHeight(jets, 2022)), nil
}

// Part2 measures the tower after a trillion rocks.
func (Day17) Part2(in string) (string, error) {
	jets, err := parseJets(in)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(towerHeight(jets, 1_000_000_000_000)), nil
}
