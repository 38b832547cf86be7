package y2021

import (
	"strconv"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day03 is "Binary Diagnostic".
type Day03 struct{}

// parseReport returns the report values and their common bit width.
func parseReport(in string) ([]uint, int, error) {
	lines := input.Lines(in)
	if len(lines) == 0 {
		return nil, 0, puzzle.Malformedf("empty report")
	}

	width := len(lines[0])
	out := make([]uint, 0, len(lines))
	for _, l := range lines {
		if len(l) != width {
			return nil, 0, puzzle.Malformedf("line %q is not %d bits", l, width)
		}
		v, err := strconv.ParseUint(l, 2, 64)
		if err != nil {
			return nil, 0, puzzle.Malformedf("binary %q", l)
		}
		out = append(out, uint(v))
	}

	return out, width, nil
}

// ones counts values with bit set.
func ones(values []uint, bit int) int {
	n := 0
	for _, v := range values {
		n += int(v>>bit) & 1
	}

	return n
}

// Part1 multiplies gamma (most common bits) by epsilon (least common bits).
// A gamma bit is set only on a strict majority of ones; epsilon is its
// complement, so a tied column counts toward epsilon.
func (Day03) Part1(in string) (string, error) {
	values, width, err := parseReport(in)
	if err != nil {
		return "", err
	}

	var gamma uint
	for bit := width - 1; bit >= 0; bit-- {
		gamma <<= 1
		if 2*ones(values, bit) > len(values) {
			gamma |= 1
		}
	}
	epsilon := ^gamma & (1<<width - 1)

	return strconv.FormatUint(uint64(gamma*epsilon), 10), nil
}

// Part2 multiplies the oxygen generator and CO2 scrubber ratings.
func (Day03) Part2(in string) (string, error) {
	values, width, err := parseReport(in)
	if err != nil {
		return "", err
	}

	oxygen := rating(values, width, true)
	co2 := rating(values, width, false)

	return strconv.FormatUint(uint64(oxygen*co2), 10), nil
}

// rating repeatedly keeps the values matching the most (or least) common bit,
// from the highest bit down, until one value remains. Ties favor 1 for the
// most common criterion and 0 for the least common one. A criterion that no
// value meets leaves the set unchanged.
func rating(values []uint, width int, mostCommon bool) uint {
	keep := append([]uint(nil), values...)
	for bit := width - 1; bit >= 0 && len(keep) > 1; bit-- {
		majority := uint(0)
		if 2*ones(keep, bit) >= len(keep) {
			majority = 1
		}
		want := majority
		if !mostCommon {
			want = 1 - majority
		}

		var next []uint
		for _, v := range keep {
			if (v>>bit)&1 == want {
				next = append(next, v)
			}
		}
		if len(next) == 0 {
			continue
		}
		keep = next
	}

	return keep[0]
}
