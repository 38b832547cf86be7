package y2021

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day14 is "Extended Polymerization".
type Day14 struct{}

type pair [2]byte

type polymer struct {
	template string
	rules    map[pair]byte
}

func parsePolymer(in string) (polymer, error) {
	blocks := input.Blocks(in)
	if len(blocks) != 2 || len(blocks[0]) != 1 || len(blocks[0][0]) < 2 {
		return polymer{}, puzzle.Malformedf("expected template and rules")
	}

	p := polymer{template: blocks[0][0], rules: make(map[pair]byte)}
	for _, l := range blocks[1] {
		from, to, ok := strings.Cut(l, " -> ")
		if !ok || len(from) != 2 || len(to) != 1 {
			return polymer{}, puzzle.Malformedf("rule %q", l)
		}
		p.rules[pair{from[0], from[1]}] = to[0]
	}

	return p, nil
}

// grow runs the insertion steps on pair counts, since the string doubles
// each step. It returns max - min element occurrence.
func (p polymer) grow(steps int) int {
	pairs := make(map[pair]int)
	for i := 0; i+1 < len(p.template); i++ {
		pairs[pair{p.template[i], p.template[i+1]}]++
	}

	for s := 0; s < steps; s++ {
		next := make(map[pair]int, len(pairs))
		for pr, n := range pairs {
			if c, ok := p.rules[pr]; ok {
				next[pair{pr[0], c}] += n
				next[pair{c, pr[1]}] += n
			} else {
				next[pr] += n
			}
		}
		pairs = next
	}

	// Every element is the first of exactly one pair, except the last one
	// of the template which never changes.
	counts := map[byte]int{p.template[len(p.template)-1]: 1}
	for pr, n := range pairs {
		counts[pr[0]] += n
	}

	lo, hi := -1, 0
	for _, n := range counts {
		hi = max(hi, n)
		if lo < 0 || n < lo {
			lo = n
		}
	}

	return hi - lo
}

// Part1 runs 10 steps.
func (Day14) Part1(in string) (string, error) {
	p, err := parsePolymer(in)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(p.grow(10)), nil
}

// Part2 runs 40 steps.
func (Day14) Part2(in string) (string, error) {
	p, err := parsePolymer(in)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(p.grow(40)), nil
}
