package y2021

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day08 is "Seven Segment Search".
type Day08 struct{}

// display is one note: ten unique patterns and four output digits,
// each encoded as a bitmask over segments a..g.
type display struct {
	patterns [10]uint8
	output   [4]uint8
}

func segments(s string) (uint8, error) {
	var m uint8
	for _, r := range s {
		if r < 'a' || r > 'g' {
			return 0, puzzle.Malformedf("segment %q", r)
		}
		m |= 1 << (r - 'a')
	}

	return m, nil
}

func parseDisplays(in string) ([]display, error) {
	var out []display
	for _, l := range input.Lines(in) {
		left, right, ok := strings.Cut(l, "|")
		pats, outs := strings.Fields(left), strings.Fields(right)
		if !ok || len(pats) != 10 || len(outs) != 4 {
			return nil, puzzle.Malformedf("note %q", l)
		}

		var d display
		for i, p := range pats {
			m, err := segments(p)
			if err != nil {
				return nil, err
			}
			d.patterns[i] = m
		}
		for i, o := range outs {
			m, err := segments(o)
			if err != nil {
				return nil, err
			}
			d.output[i] = m
		}
		out = append(out, d)
	}

	return out, nil
}

// Part1 counts output digits with a unique segment count (1, 4, 7, 8).
func (Day08) Part1(in string) (string, error) {
	displays, err := parseDisplays(in)
	if err != nil {
		return "", err
	}

	n := 0
	for _, d := range displays {
		for _, o := range d.output {
			switch bits.OnesCount8(o) {
			case 2, 3, 4, 7:
				n++
			}
		}
	}

	return strconv.Itoa(n), nil
}

// Part2 decodes every output and sums the four-digit values.
func (Day08) Part2(in string) (string, error) {
	displays, err := parseDisplays(in)
	if err != nil {
		return "", err
	}

	total := 0
	for _, d := range displays {
		v, err := d.decode()
		if err != nil {
			return "", err
		}
		total += v
	}

	return strconv.Itoa(total), nil
}

// decode identifies digits by segment count and by overlap with the
// patterns for 1 and 4, which are unique by length.
func (d display) decode() (int, error) {
	var one, four uint8
	for _, p := range d.patterns {
		switch bits.OnesCount8(p) {
		case 2:
			one = p
		case 4:
			four = p
		}
	}
	if one == 0 || four == 0 {
		return 0, puzzle.Malformedf("patterns lack 1 or 4")
	}

	overlap := func(a, b uint8) int { return bits.OnesCount8(a & b) }
	value := 0
	for _, o := range d.output {
		var digit int
		switch bits.OnesCount8(o) {
		case 2:
			digit = 1
		case 3:
			digit = 7
		case 4:
			digit = 4
		case 7:
			digit = 8
		case 5:
			switch {
			case overlap(o, one) == 2:
				digit = 3
			case overlap(o, four) == 3:
				digit = 5
			default:
				digit = 2
			}
		case 6:
			switch {
			case overlap(o, four) == 4:
				digit = 9
			case overlap(o, one) == 2:
				digit = 0
			default:
				digit = 6
			}
		default:
			return 0, puzzle.Malformedf("output digit with %d segments", bits.OnesCount8(o))
		}
		value = value*10 + digit
	}

	return value, nil
}
