package y2021

import (
	"slices"
	"strconv"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day10 is "Syntax Scoring": bracket matching over navigation lines.
type Day10 struct{}

var (
	closer = map[rune]rune{'(': ')', '[': ']', '{': '}', '<': '>'}

	corruptScore    = map[rune]int{')': 3, ']': 57, '}': 1197, '>': 25137}
	completionScore = map[rune]int{')': 1, ']': 2, '}': 3, '>': 4}
)

// check returns the first illegal closing character, or 0 and the closers
// still expected (innermost first) when the line is merely incomplete.
func check(line string) (rune, []rune, error) {
	var stack []rune
	for _, r := range line {
		if c, ok := closer[r]; ok {
			stack = append(stack, c)
			continue
		}
		if _, ok := corruptScore[r]; !ok {
			return 0, nil, puzzle.Malformedf("character %q", r)
		}
		if len(stack) == 0 || stack[len(stack)-1] != r {
			return r, nil, nil
		}
		stack = stack[:len(stack)-1]
	}
	slices.Reverse(stack)

	return 0, stack, nil
}

// Part1 scores the first illegal character on each corrupted line.
func (Day10) Part1(in string) (string, error) {
	score := 0
	for _, l := range input.Lines(in) {
		bad, _, err := check(l)
		if err != nil {
			return "", err
		}
		score += corruptScore[bad]
	}

	return strconv.Itoa(score), nil
}

// Part2 returns the median completion score of the incomplete lines.
func (Day10) Part2(in string) (string, error) {
	var scores []int
	for _, l := range input.Lines(in) {
		bad, missing, err := check(l)
		if err != nil {
			return "", err
		}
		if bad != 0 || len(missing) == 0 {
			continue
		}
		s := 0
		for _, r := range missing {
			s = s*5 + completionScore[r]
		}
		scores = append(scores, s)
	}
	if len(scores) == 0 {
		return "", puzzle.Malformedf("no incomplete lines")
	}
	slices.Sort(scores)

	return strconv.Itoa(scores[len(scores)/2]), nil
}
