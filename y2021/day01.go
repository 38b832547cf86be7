package y2021

import (
	"strconv"

	"github.com/katalvlaran/advent/input"
)

// Day01 is "Sonar Sweep": count depth increases.
type Day01 struct{}

// Part1 counts measurements larger than the previous one.
func (Day01) Part1(in string) (string, error) {
	return sonar(in, 1)
}

// Part2 compares three-measurement sliding sums. Two adjacent windows share
// two terms, so only the entering and leaving measurement matter.
func (Day01) Part2(in string) (string, error) {
	return sonar(in, 3)
}

func sonar(in string, window int) (string, error) {
	depths, err := input.Ints(in, "")
	if err != nil {
		return "", err
	}

	n := 0
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			n++
		}
	}

	return strconv.Itoa(n), nil
}
