package y2022

import (
	"slices"
	"strconv"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day01 is "Calorie Counting".
type Day01 struct{}

// elves returns each elf's total calories, largest first.
func elves(in string) ([]int, error) {
	var totals []int
	for _, b := range input.Blocks(in) {
		sum := 0
		for _, l := range b {
			n, err := input.Atoi(l)
			if err != nil {
				return nil, err
			}
			sum += n
		}
		totals = append(totals, sum)
	}
	if len(totals) == 0 {
		return nil, puzzle.Malformedf("no elves")
	}
	slices.Sort(totals)
	slices.Reverse(totals)

	return totals, nil
}

// Part1 returns the largest total.
func (Day01) Part1(in string) (string, error) {
	totals, err := elves(in)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(totals[0]), nil
}

// Part2 returns the sum of the three largest totals.
func (Day01) Part2(in string) (string, error) {
	totals, err := elves(in)
	if err != nil {
		return "", err
	}

	sum := 0
	for _, n := range totals[:min(3, len(totals))] {
		sum += n
	}

	return strconv.Itoa(sum), nil
}
