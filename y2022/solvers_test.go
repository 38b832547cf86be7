package y2022_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/y2022"
)

const (
	calories = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000`

	rucksacks = `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw`

	assignments = `2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8`

	// Leading and trailing spaces are significant in the drawing.
	supplyStacks = "    [D]    \n" +
		"[N] [C]    \n" +
		"[Z] [M] [P]\n" +
		" 1   2   3 \n" +
		"\n" +
		"move 1 from 2 to 1\n" +
		"move 3 from 1 to 3\n" +
		"move 2 from 2 to 1\n" +
		"move 1 from 1 to 2\n"

	terminal = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k`

	motions = "R 4\nU 4\nL 3\nD 1\nR 4\nD 1\nL 5\nR 2"

	largeMotions = "R 5\nU 8\nL 8\nD 3\nR 17\nD 10\nL 25\nU 20"

	heightmap = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi`

	rockPaths = "498,4 -> 498,6 -> 496,6\n503,4 -> 502,4 -> 502,9 -> 494,9"

	jetPattern = ">>><<><>><<<>><>>><<<>>><<<><<<>><>><<>>"

	droplet = `2,2,2
1,2,2
3,2,2
2,1,2
2,3,2
2,2,1
2,2,3
2,2,4
2,2,6
1,2,5
3,2,5
2,1,5
2,3,5`
)

func TestSolvers(t *testing.T) {
	tests := []struct {
		name   string
		solver puzzle.Solver
		input  string
		part1  string
		part2  string
	}{
		{"day 1", y2022.Day01{}, calories, "24000", "45000"},
		{"day 2", y2022.Day02{}, "A Y\nB X\nC Z", "15", "12"},
		{"day 3", y2022.Day03{}, rucksacks, "157", "70"},
		{"day 4", y2022.Day04{}, assignments, "2", "4"},
		{"day 5", y2022.Day05{}, supplyStacks, "CMZ", "MCD"},
		{"day 6", y2022.Day06{}, "mjqjpqmgbljsphdztnvjfqwrcgsmlb", "7", "19"},
		{"day 7", y2022.Day07{}, terminal, "95437", "24933642"},
		{"day 9", y2022.Day09{}, motions, "13", "1"},
		{"day 12", y2022.Day12{}, heightmap, "31", "29"},
		{"day 14", y2022.Day14{}, rockPaths, "24", "93"},
		{"day 17", y2022.Day17{}, jetPattern, "3068", "1514285714288"},
		{"day 18", y2022.Day18{}, droplet, "64", "58"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ans, err := puzzle.Solve(tt.solver, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.part1, ans.Part1, "part 1")
			assert.Equal(t, tt.part2, ans.Part2, "part 2")
		})
	}
}

func TestDay06_Markers(t *testing.T) {
	tests := []struct {
		stream         string
		packet, message string
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", "7", "19"},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", "5", "23"},
		{"nppdvjthqldpwncqszvftbrmjlhg", "6", "23"},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", "10", "29"},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", "11", "26"},
	}
	for _, tt := range tests {
		t.Run(tt.stream, func(t *testing.T) {
			ans, err := puzzle.Solve(y2022.Day06{}, tt.stream)
			require.NoError(t, err)
			assert.Equal(t, puzzle.Answer{Part1: tt.packet, Part2: tt.message}, ans)
		})
	}

	_, err := y2022.Day06{}.Part1("aaaaaa")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestDay09_LongRope(t *testing.T) {
	got, err := y2022.Day09{}.Part2(largeMotions)
	require.NoError(t, err)
	assert.Equal(t, "36", got)
}

func TestMalformedInput(t *testing.T) {
	tests := []struct {
		name   string
		solver puzzle.Solver
		input  string
	}{
		{"calories", y2022.Day01{}, "100\nlots"},
		{"strategy", y2022.Day02{}, "A W"},
		{"rucksack", y2022.Day03{}, "abc"},
		{"sections", y2022.Day04{}, "1-2;3-4"},
		{"stacks", y2022.Day05{}, "[A]\n 1 \n\nmove 1 from 1 to 4"},
		{"terminal", y2022.Day07{}, "$ cd /\nbig file"},
		{"motions", y2022.Day09{}, "X 3"},
		{"heightmap", y2022.Day12{}, "abc\ndef"},
		{"ragged heightmap", y2022.Day12{}, "SabE\nab"},
		{"rocks", y2022.Day14{}, "1,1 -> 3,3"},
		{"jets", y2022.Day17{}, ">><x"},
		{"no jets", y2022.Day17{}, "\n"},
		{"droplet", y2022.Day18{}, "1,2,x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.solver.Part1(tt.input)
			assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
		})
	}
}

func TestRegister(t *testing.T) {
	r := puzzle.NewRegistry()
	y2022.Register(r)

	assert.Equal(t, 12, r.Len())
	_, err := r.Lookup(puzzle.Key{Year: 2022, Day: 12})
	assert.NoError(t, err)
}
