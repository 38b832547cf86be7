package puzzle_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

func lines(input string) (string, error) {
	return string(rune('0' + len(strings.Split(input, "\n")))), nil
}

func TestRegistry(t *testing.T) {
	r := puzzle.NewRegistry()
	s := puzzle.Func{One: lines}

	require.NoError(t, r.Register(puzzle.Key{Year: 2022, Day: 3}, s))
	require.NoError(t, r.Register(puzzle.Key{Year: 2021, Day: 17}, s))
	require.NoError(t, r.Register(puzzle.Key{Year: 2021, Day: 2}, s))

	err := r.Register(puzzle.Key{Year: 2021, Day: 2}, s)
	assert.ErrorIs(t, err, puzzle.ErrDuplicate)

	err = r.Register(puzzle.Key{Year: 2021, Day: 26}, s)
	assert.ErrorIs(t, err, puzzle.ErrBadKey)

	_, err = r.Lookup(puzzle.Key{Year: 2020, Day: 1})
	assert.ErrorIs(t, err, puzzle.ErrNotFound)

	got, err := r.Lookup(puzzle.Key{Year: 2021, Day: 17})
	require.NoError(t, err)
	assert.NotNil(t, got)

	want := []puzzle.Key{{Year: 2021, Day: 2}, {Year: 2021, Day: 17}, {Year: 2022, Day: 3}}
	if diff := cmp.Diff(want, r.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, r.Len())
}

func TestSolve(t *testing.T) {
	s := puzzle.Func{One: lines, Two: lines}

	ans, err := puzzle.Solve(s, "a\r\nb\r\nc")
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "3", Part2: "3"}, ans)

	_, err = puzzle.Solve(puzzle.Func{One: lines}, "a")
	assert.ErrorIs(t, err, puzzle.ErrUnsolved)
	assert.Contains(t, err.Error(), "part 2")
}

func TestRun(t *testing.T) {
	s := puzzle.Func{One: lines}

	got, err := puzzle.Run(s, 1, "x\ny")
	require.NoError(t, err)
	assert.Equal(t, "2", got)

	_, err = puzzle.Run(s, 3, "")
	assert.ErrorIs(t, err, puzzle.ErrBadPart)
}

func TestMalformedf(t *testing.T) {
	err := puzzle.Malformedf("line %d: %q", 3, "oops")
	assert.True(t, errors.Is(err, puzzle.ErrMalformedInput))
	assert.Equal(t, `puzzle: malformed input: line 3: "oops"`, err.Error())
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "2021/07", puzzle.Key{Year: 2021, Day: 7}.String())
}
