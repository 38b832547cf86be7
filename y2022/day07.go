package y2022

import (
	"path"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day07 is "No Space Left On Device": reconstruct directory sizes from a
// terminal transcript.
type Day07 struct{}

const (
	diskSize   = 70_000_000
	updateSize = 30_000_000
)

// dirSizes replays cd/ls output and returns the total size of every
// directory, keyed by absolute path. Files count toward all ancestors.
func dirSizes(in string) (map[string]int, error) {
	sizes := map[string]int{"/": 0}
	seen := make(map[string]bool)
	cwd := "/"

	for _, l := range input.Lines(in) {
		f := strings.Fields(l)
		switch {
		case len(f) == 3 && f[0] == "$" && f[1] == "cd":
			switch f[2] {
			case "/":
				cwd = "/"
			case "..":
				cwd = path.Dir(cwd)
			default:
				cwd = path.Join(cwd, f[2])
			}
		case len(f) == 2 && f[0] == "$" && f[1] == "ls":
		case len(f) == 2 && f[0] == "dir":
			if _, ok := sizes[path.Join(cwd, f[1])]; !ok {
				sizes[path.Join(cwd, f[1])] = 0
			}
		case len(f) == 2:
			size, err := strconv.Atoi(f[0])
			if err != nil {
				return nil, puzzle.Malformedf("listing %q", l)
			}
			file := path.Join(cwd, f[1])
			if seen[file] {
				continue // listed twice
			}
			seen[file] = true
			for dir := cwd; ; dir = path.Dir(dir) {
				sizes[dir] += size
				if dir == "/" {
					break
				}
			}
		default:
			return nil, puzzle.Malformedf("transcript line %q", l)
		}
	}

	return sizes, nil
}

// Part1 sums every directory of at most 100000.
func (Day07) Part1(in string) (string, error) {
	sizes, err := dirSizes(in)
	if err != nil {
		return "", err
	}

	sum := 0
	for _, s := range sizes {
		if s <= 100_000 {
			sum += s
		}
	}

	return strconv.Itoa(sum), nil
}

// Part2 returns the size of the smallest directory whose deletion frees
// enough space for the update.
func (Day07) Part2(in string) (string, error) {
	sizes, err := dirSizes(in)
	if err != nil {
		return "", err
	}

	need := updateSize - (diskSize - sizes["/"])
	if need <= 0 {
		return "0", nil
	}
	best := sizes["/"]
	for _, s := range sizes {
		if s >= need && s < best {
			best = s
		}
	}

	return strconv.Itoa(best), nil
}
