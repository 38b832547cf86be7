package y2022

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day05 is "Supply Stacks"; answers are the top crate letters.
type Day05 struct{}

type crateMove struct{ n, from, to int }

// parseStacks reads the drawing bottom-up. Crate letters sit at column
// 1+4i; the last drawing line numbers the stacks.
func parseStacks(in string) ([][]byte, []crateMove, error) {
	blocks := input.Blocks(in)
	if len(blocks) != 2 || len(blocks[0]) < 2 {
		return nil, nil, puzzle.Malformedf("expected a drawing and moves")
	}

	drawing := blocks[0]
	count := len(strings.Fields(drawing[len(drawing)-1]))
	stacks := make([][]byte, count)
	for row := len(drawing) - 2; row >= 0; row-- {
		line := drawing[row]
		for i := 0; i < count; i++ {
			col := 1 + 4*i
			if col < len(line) && line[col] != ' ' {
				stacks[i] = append(stacks[i], line[col])
			}
		}
	}

	var moves []crateMove
	for _, l := range blocks[1] {
		var m crateMove
		if _, err := fmt.Sscanf(l, "move %d from %d to %d", &m.n, &m.from, &m.to); err != nil {
			return nil, nil, puzzle.Malformedf("move %q", l)
		}
		if m.from < 1 || m.from > count || m.to < 1 || m.to > count {
			return nil, nil, puzzle.Malformedf("move %q names a missing stack", l)
		}
		m.from--
		m.to--
		moves = append(moves, m)
	}

	return stacks, moves, nil
}

// rearrange applies every move. The CrateMover 9000 lifts one crate at a
// time, reversing the moved run; the 9001 keeps its order.
func rearrange(in string, keepOrder bool) (string, error) {
	stacks, moves, err := parseStacks(in)
	if err != nil {
		return "", err
	}

	for _, m := range moves {
		src := stacks[m.from]
		if m.n > len(src) {
			return "", puzzle.Malformedf("move %d crates from a stack of %d", m.n, len(src))
		}
		run := append([]byte(nil), src[len(src)-m.n:]...)
		if !keepOrder {
			for i, j := 0, len(run)-1; i < j; i, j = i+1, j-1 {
				run[i], run[j] = run[j], run[i]
			}
		}
		stacks[m.from] = src[:len(src)-m.n]
		stacks[m.to] = append(stacks[m.to], run...)
	}

	var top strings.Builder
	for _, s := range stacks {
		if len(s) > 0 {
			top.WriteByte(s[len(s)-1])
		}
	}

	return top.String(), nil
}

// Part1 uses the CrateMover 9000.
func (Day05) Part1(in string) (string, error) { return rearrange(in, false) }

// Part2 uses the CrateMover 9001.
func (Day05) Part2(in string) (string, error) { return rearrange(in, true) }
