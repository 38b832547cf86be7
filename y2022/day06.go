package y2022

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

// Day06 is "Tuning Trouble": find the first run of distinct characters.
type Day06 struct{}

// marker returns how many characters are read before the last n were all
// different. A sliding window keeps per-letter counts and the number of
// letters seen more than once.
func marker(in string, n int) (string, error) {
	s := strings.TrimSpace(in)

	var counts [256]int
	dupes := 0
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
		if counts[s[i]] == 2 {
			dupes++
		}
		if i >= n {
			old := s[i-n]
			counts[old]--
			if counts[old] == 1 {
				dupes--
			}
		}
		if i >= n-1 && dupes == 0 {
			return strconv.Itoa(i + 1), nil
		}
	}

	return "", puzzle.Malformedf("no marker of %d distinct characters", n)
}

// Part1 finds the start-of-packet marker (4 characters).
func (Day06) Part1(in string) (string, error) { return marker(in, 4) }

// Part2 finds the start-of-message marker (14 characters).
func (Day06) Part2(in string) (string, error) { return marker(in, 14) }
