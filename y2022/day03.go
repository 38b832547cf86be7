package y2022

import (
	"math/bits"
	"strconv"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day03 is "Rucksack Reorganization".
type Day03 struct{}

// items returns the set of item priorities in s as a bitmask
// (a..z are 1..26, A..Z are 27..52).
func items(s string) (uint64, error) {
	var set uint64
	for _, r := range s {
		var p int
		switch {
		case r >= 'a' && r <= 'z':
			p = int(r-'a') + 1
		case r >= 'A' && r <= 'Z':
			p = int(r-'A') + 27
		default:
			return 0, puzzle.Malformedf("item %q", r)
		}
		set |= 1 << p
	}

	return set, nil
}

// priority returns the single priority in set.
func priority(set uint64) (int, error) {
	if bits.OnesCount64(set) != 1 {
		return 0, puzzle.Malformedf("expected one shared item, got %d", bits.OnesCount64(set))
	}

	return bits.TrailingZeros64(set), nil
}

// Part1 sums the priority of the item found in both compartments.
func (Day03) Part1(in string) (string, error) {
	sum := 0
	for _, l := range input.Lines(in) {
		if len(l)%2 != 0 {
			return "", puzzle.Malformedf("odd rucksack %q", l)
		}
		a, err := items(l[:len(l)/2])
		if err != nil {
			return "", err
		}
		b, err := items(l[len(l)/2:])
		if err != nil {
			return "", err
		}
		p, err := priority(a & b)
		if err != nil {
			return "", err
		}
		sum += p
	}

	return strconv.Itoa(sum), nil
}

// Part2 sums the priority of the badge shared by each group of three.
func (Day03) Part2(in string) (string, error) {
	lines := input.Lines(in)
	if len(lines)%3 != 0 {
		return "", puzzle.Malformedf("%d rucksacks do not form groups of three", len(lines))
	}

	sum := 0
	for i := 0; i < len(lines); i += 3 {
		common := ^uint64(0)
		for _, l := range lines[i : i+3] {
			s, err := items(l)
			if err != nil {
				return "", err
			}
			common &= s
		}
		p, err := priority(common)
		if err != nil {
			return "", err
		}
		sum += p
	}

	return strconv.Itoa(sum), nil
}
