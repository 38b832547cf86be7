package y2022

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day04 is "Camp Cleanup": pairs of section ranges.
type Day04 struct{}

type sections struct{ lo, hi int }

func (s sections) contains(o sections) bool { return s.lo <= o.lo && o.hi <= s.hi }

func (s sections) overlaps(o sections) bool { return s.lo <= o.hi && o.lo <= s.hi }

func countPairs(in string, match func(a, b sections) bool) (string, error) {
	n := 0
	for _, l := range input.Lines(in) {
		var a, b sections
		if _, err := fmt.Sscanf(l, "%d-%d,%d-%d", &a.lo, &a.hi, &b.lo, &b.hi); err != nil {
			return "", puzzle.Malformedf("pair %q", l)
		}
		if match(a, b) {
			n++
		}
	}

	return strconv.Itoa(n), nil
}

// Part1 counts pairs where one range fully contains the other.
func (Day04) Part1(in string) (string, error) {
	return countPairs(in, func(a, b sections) bool { return a.contains(b) || b.contains(a) })
}

// Part2 counts pairs that overlap at all.
func (Day04) Part2(in string) (string, error) {
	return countPairs(in, sections.overlaps)
}
