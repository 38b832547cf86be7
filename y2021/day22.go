package y2021

import (
	"regexp"
	"strconv"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day22 is "Reactor Reboot".
type Day22 struct{}

var rebootRe = regexp.MustCompile(`^(on|off) x=(-?\d+)\.\.(-?\d+),y=(-?\d+)\.\.(-?\d+),z=(-?\d+)\.\.(-?\d+)$`)

// cuboid is an inclusive box of cubes.
type cuboid struct {
	lo, hi [3]int
}

func (c cuboid) volume() int {
	v := 1
	for i := range c.lo {
		v *= c.hi[i] - c.lo[i] + 1
	}

	return v
}

// intersect returns the overlap of c and o, if any.
func (c cuboid) intersect(o cuboid) (cuboid, bool) {
	var out cuboid
	for i := range c.lo {
		out.lo[i] = max(c.lo[i], o.lo[i])
		out.hi[i] = min(c.hi[i], o.hi[i])
		if out.lo[i] > out.hi[i] {
			return cuboid{}, false
		}
	}

	return out, true
}

type rebootStep struct {
	on  bool
	box cuboid
}

func parseReboot(in string) ([]rebootStep, error) {
	var out []rebootStep
	for _, l := range input.Lines(in) {
		m := rebootRe.FindStringSubmatch(l)
		if m == nil {
			return nil, puzzle.Malformedf("reboot step %q", l)
		}
		s := rebootStep{on: m[1] == "on"}
		for i := 0; i < 3; i++ {
			a, _ := strconv.Atoi(m[2+2*i])
			b, _ := strconv.Atoi(m[3+2*i])
			s.box.lo[i], s.box.hi[i] = min(a, b), max(a, b)
		}
		out = append(out, s)
	}

	return out, nil
}

// signed is a cuboid counted positively or negatively.
type signed struct {
	box  cuboid
	sign int
}

// reboot counts lit cubes inside clip using inclusion-exclusion: every new
// step cancels its overlap with each recorded cuboid, and "on" steps then
// add themselves.
func reboot(steps []rebootStep, clip *cuboid) int {
	var boxes []signed
	for _, s := range steps {
		box := s.box
		if clip != nil {
			var ok bool
			if box, ok = box.intersect(*clip); !ok {
				continue
			}
		}

		var added []signed
		for _, b := range boxes {
			if x, ok := b.box.intersect(box); ok {
				added = append(added, signed{box: x, sign: -b.sign})
			}
		}
		if s.on {
			added = append(added, signed{box: box, sign: 1})
		}
		boxes = append(boxes, added...)
	}

	total := 0
	for _, b := range boxes {
		total += b.sign * b.box.volume()
	}

	return total
}

// Part1 only considers the initialization region -50..50 on every axis.
func (Day22) Part1(in string) (string, error) {
	steps, err := parseReboot(in)
	if err != nil {
		return "", err
	}
	region := cuboid{lo: [3]int{-50, -50, -50}, hi: [3]int{50, 50, 50}}

	return strconv.Itoa(reboot(steps, &region)), nil
}

// Part2 runs the whole reboot.
func (Day22) Part2(in string) (string, error) {
	steps, err := parseReboot(in)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(reboot(steps, nil)), nil
}
