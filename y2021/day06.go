package y2021

import (
	"strconv"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day06 is "Lanternfish": exponential population growth.
type Day06 struct{}

// Part1 counts fish after 80 days.
func (Day06) Part1(in string) (string, error) { return lanternfish(in, 80) }

// Part2 counts fish after 256 days.
func (Day06) Part2(in string) (string, error) { return lanternfish(in, 256) }

// lanternfish tracks a histogram of timers rather than individual fish.
// A fish at 0 spawns a new fish at 8 and restarts itself at 6.
func lanternfish(in string, days int) (string, error) {
	timers, err := input.Ints(in, ",")
	if err != nil {
		return "", err
	}

	var ages [9]int
	for _, t := range timers {
		if t < 0 || t > 8 {
			return "", puzzle.Malformedf("timer %d", t)
		}
		ages[t]++
	}

	for d := 0; d < days; d++ {
		spawning := ages[0]
		copy(ages[:], ages[1:])
		ages[8] = spawning
		ages[6] += spawning
	}

	total := 0
	for _, n := range ages {
		total += n
	}

	return strconv.Itoa(total), nil
}
