package y2021

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day21 is "Dirac Dice".
type Day21 struct{}

func parseStarts(in string) ([2]int, error) {
	var pos [2]int
	lines := input.Lines(in)
	if len(lines) != 2 {
		return pos, puzzle.Malformedf("expected two players, got %d lines", len(lines))
	}
	for i, l := range lines {
		var player int
		if _, err := fmt.Sscanf(l, "Player %d starting position: %d", &player, &pos[i]); err != nil {
			return pos, puzzle.Malformedf("player line %q", l)
		}
		if pos[i] < 1 || pos[i] > 10 {
			return pos, puzzle.Malformedf("position %d", pos[i])
		}
	}

	return pos, nil
}

// move advances a pawn around the 1..10 track.
func move(pos, steps int) int { return (pos+steps-1)%10 + 1 }

// Part1 plays with a deterministic 100-sided die until someone reaches 1000,
// then multiplies the losing score by the number of rolls.
func (Day21) Part1(in string) (string, error) {
	pos, err := parseStarts(in)
	if err != nil {
		return "", err
	}

	var score [2]int
	die, rolls := 0, 0
	roll := func() int {
		die = die%100 + 1
		rolls++
		return die
	}
	for turn := 0; ; turn ^= 1 {
		pos[turn] = move(pos[turn], roll()+roll()+roll())
		score[turn] += pos[turn]
		if score[turn] >= 1000 {
			return strconv.Itoa(score[turn^1] * rolls), nil
		}
	}
}

// diracRolls maps each sum of three 3-sided rolls to its number of universes.
var diracRolls = [...]struct{ sum, ways int }{
	{3, 1}, {4, 3}, {5, 6}, {6, 7}, {7, 6}, {8, 3}, {9, 1},
}

// quantum is a game state from the perspective of the player about to move.
type quantum struct {
	pos, other     int
	score, otherSc int
}

// wins returns how many universes the mover and the other player win from s.
func wins(s quantum, memo map[quantum][2]int) [2]int {
	if w, ok := memo[s]; ok {
		return w
	}

	var w [2]int
	for _, r := range diracRolls {
		p := move(s.pos, r.sum)
		sc := s.score + p
		if sc >= 21 {
			w[0] += r.ways
			continue
		}
		// The other player moves next, so the roles swap.
		sub := wins(quantum{pos: s.other, other: p, score: s.otherSc, otherSc: sc}, memo)
		w[0] += r.ways * sub[1]
		w[1] += r.ways * sub[0]
	}
	memo[s] = w

	return w
}

// Part2 counts universes in which the better player wins to 21 with the
// Dirac die; the state space is small enough to memoize completely.
func (Day21) Part2(in string) (string, error) {
	pos, err := parseStarts(in)
	if err != nil {
		return "", err
	}

	w := wins(quantum{pos: pos[0], other: pos[1]}, make(map[quantum][2]int))

	return strconv.Itoa(max(w[0], w[1])), nil
}
