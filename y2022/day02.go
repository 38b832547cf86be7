package y2022

import (
	"strconv"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day02 is "Rock Paper Scissors".
type Day02 struct{}

// round holds the opponent's shape (0 rock, 1 paper, 2 scissors) and the
// second column as 0..2.
type round struct {
	them, col int
}

func parseRounds(in string) ([]round, error) {
	var out []round
	for _, l := range input.Lines(in) {
		if len(l) != 3 || l[0] < 'A' || l[0] > 'C' || l[1] != ' ' || l[2] < 'X' || l[2] > 'Z' {
			return nil, puzzle.Malformedf("round %q", l)
		}
		out = append(out, round{them: int(l[0] - 'A'), col: int(l[2] - 'X')})
	}

	return out, nil
}

// score is the shape value (1..3) plus 0, 3 or 6 for loss, draw, win.
func score(them, me int) int {
	outcome := (me - them + 4) % 3 // 0 loss, 1 draw, 2 win

	return me + 1 + 3*outcome
}

func play(in string, pick func(r round) int) (string, error) {
	rounds, err := parseRounds(in)
	if err != nil {
		return "", err
	}

	total := 0
	for _, r := range rounds {
		total += score(r.them, pick(r))
	}

	return strconv.Itoa(total), nil
}

// Part1 reads the second column as my shape.
func (Day02) Part1(in string) (string, error) {
	return play(in, func(r round) int { return r.col })
}

// Part2 reads the second column as the desired outcome: X lose, Y draw, Z win.
func (Day02) Part2(in string) (string, error) {
	return play(in, func(r round) int { return (r.them + r.col + 2) % 3 })
}
