package y2021

import (
	"regexp"
	"strconv"

	"github.com/katalvlaran/advent/puzzle"
)

// Day17 is "Trick Shot": launch a probe into a target area.
type Day17 struct{}

var targetRe = regexp.MustCompile(`x=(-?\d+)\.\.(-?\d+), y=(-?\d+)\.\.(-?\d+)`)

// target is the landing area. The probe starts at the origin; the area is
// assumed to lie right of it and below it.
type target struct {
	x0, x1, y0, y1 int
}

func parseTarget(in string) (target, error) {
	m := targetRe.FindStringSubmatch(in)
	if m == nil {
		return target{}, puzzle.Malformedf("target area %q", in)
	}

	var v [4]int
	for i := range v {
		v[i], _ = strconv.Atoi(m[i+1])
	}
	t := target{x0: min(v[0], v[1]), x1: max(v[0], v[1]), y0: min(v[2], v[3]), y1: max(v[2], v[3])}
	if t.x0 <= 0 || t.y1 >= 0 {
		return target{}, puzzle.Malformedf("target area must lie right of and below the origin")
	}

	return t, nil
}

// hits simulates one launch: drag pulls vx toward 0, gravity lowers vy by 1.
func (t target) hits(vx, vy int) bool {
	x, y := 0, 0
	for x <= t.x1 && y >= t.y0 {
		if x >= t.x0 && y <= t.y1 {
			return true
		}
		x += vx
		y += vy
		if vx > 0 {
			vx--
		}
		vy--
	}

	return false
}

// Part1 returns the highest apex. A probe launched upward with vy comes back
// through y = 0 with speed -(vy+1), so the fastest usable vy is -y0-1.
func (Day17) Part1(in string) (string, error) {
	t, err := parseTarget(in)
	if err != nil {
		return "", err
	}
	n := -t.y0 - 1

	return strconv.Itoa(n * (n + 1) / 2), nil
}

// Part2 counts every initial velocity that lands in the area.
func (Day17) Part2(in string) (string, error) {
	t, err := parseTarget(in)
	if err != nil {
		return "", err
	}

	n := 0
	for vx := 1; vx <= t.x1; vx++ {
		for vy := t.y0; vy <= -t.y0-1; vy++ {
			if t.hits(vx, vy) {
				n++
			}
		}
	}

	return strconv.Itoa(n), nil
}
