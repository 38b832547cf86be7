package y2022

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

// Day12 is "Hill Climbing Algorithm": fewest steps up a heightmap.
type Day12 struct{}

type hill struct {
	heights    *grid.Grid[byte]
	start, end grid.Point
}

// parseHill reads heights a..z; S is the start at height a, E the goal at z.
func parseHill(in string) (hill, error) {
	var h hill
	var hasStart, hasEnd bool
	g, err := grid.Parse(in, func(r rune) (byte, error) {
		switch {
		case r == 'S' || r == 'E' || (r >= 'a' && r <= 'z'):
			return byte(r), nil
		}
		return 0, puzzle.Malformedf("height %q", r)
	})
	if err != nil {
		return h, puzzle.Malformedf("heightmap: %v", err)
	}

	for _, p := range g.Points() {
		switch g.At(p) {
		case 'S':
			h.start, hasStart = p, true
			g.Set(p, 'a')
		case 'E':
			h.end, hasEnd = p, true
			g.Set(p, 'z')
		}
	}
	if !hasStart || !hasEnd {
		return h, puzzle.Malformedf("heightmap needs both S and E")
	}
	h.heights = g

	return h, nil
}

// descend walks backwards from E, where a reverse step is allowed when the
// forward step climbs at most one unit. It returns the depth of the first
// cell satisfying goal.
func (h hill) descend(goal func(grid.Point) bool) (string, error) {
	g := h.heights
	res, err := bfs.OnGrid(g, h.end, grid.Conn4,
		bfs.WithFilterNeighbor(func(cur, next grid.Point) bool { return int(g.At(cur))-int(g.At(next)) <= 1 }),
		bfs.WithGoal(goal),
	)
	if err != nil {
		return "", err
	}
	if !res.Found {
		return "", fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, bfs.ErrNoPath)
	}

	return strconv.Itoa(res.Depth[res.Goal]), nil
}

// Part1 counts steps from S to E.
func (Day12) Part1(in string) (string, error) {
	h, err := parseHill(in)
	if err != nil {
		return "", err
	}

	return h.descend(func(p grid.Point) bool { return p == h.start })
}

// Part2 counts steps from the best starting square at height a.
func (Day12) Part2(in string) (string, error) {
	h, err := parseHill(in)
	if err != nil {
		return "", err
	}

	return h.descend(func(p grid.Point) bool { return h.heights.At(p) == 'a' })
}
