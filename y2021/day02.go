package y2021

import (
	"strconv"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day02 is "Dive!": steer a submarine with forward/down/up commands.
type Day02 struct{}

type command struct {
	dir string
	n   int
}

func parseCommands(in string) ([]command, error) {
	var out []command
	for _, f := range input.Fields(in) {
		if len(f) != 2 {
			return nil, puzzle.Malformedf("command %q", f)
		}
		n, err := input.Atoi(f[1])
		if err != nil {
			return nil, err
		}
		switch f[0] {
		case "forward", "down", "up":
		default:
			return nil, puzzle.Malformedf("direction %q", f[0])
		}
		out = append(out, command{dir: f[0], n: n})
	}

	return out, nil
}

// Part1 moves depth directly with down/up.
func (Day02) Part1(in string) (string, error) {
	cmds, err := parseCommands(in)
	if err != nil {
		return "", err
	}

	var x, depth int
	for _, c := range cmds {
		switch c.dir {
		case "forward":
			x += c.n
		case "down":
			depth += c.n
		case "up":
			depth -= c.n
		}
	}

	return strconv.Itoa(x * depth), nil
}

// Part2 lets down/up change the aim; forward dives by aim×n.
func (Day02) Part2(in string) (string, error) {
	cmds, err := parseCommands(in)
	if err != nil {
		return "", err
	}

	var x, depth, aim int
	for _, c := range cmds {
		switch c.dir {
		case "forward":
			x += c.n
			depth += aim * c.n
		case "down":
			aim += c.n
		case "up":
			aim -= c.n
		}
	}

	return strconv.Itoa(x * depth), nil
}
