package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// execute runs the CLI with args and an absent settings file.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("AOC_INPUT_DIR", "")
	t.Setenv("AOC_YEAR", "")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "aoc.yaml")}, args...))
	err := root.Execute()

	return out.String(), err
}

func writeInput(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	return path
}

func TestSolve_BothParts(t *testing.T) {
	path := writeInput(t, "199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n")

	out, err := execute(t, "solve", "--year", "2021", "--day", "1", "--input", path)
	require.NoError(t, err)
	assert.Equal(t, "part 1: 7\npart 2: 5\n", out)
}

func TestSolve_SinglePartFromCache(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, input.Cache{Dir: dir}.Store(2022, 6, "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n"))

	cfgPath := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input_dir: "+dir+"\nyear: 2022\n"), 0o644))
	t.Setenv("AOC_INPUT_DIR", "")
	t.Setenv("AOC_YEAR", "")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"--config", cfgPath, "solve", "--day", "6", "--part", "2"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "part 2: 19\n", out.String())
}

func TestSolve_Errors(t *testing.T) {
	path := writeInput(t, "1\n2\n")

	_, err := execute(t, "solve", "--year", "2021", "--day", "4", "--input", path)
	assert.ErrorIs(t, err, puzzle.ErrNotFound)

	_, err = execute(t, "solve", "--year", "2021", "--day", "1", "--part", "3", "--input", path)
	assert.ErrorIs(t, err, puzzle.ErrBadPart)

	_, err = execute(t, "solve", "--year", "2021", "--day", "1", "--input", filepath.Join(t.TempDir(), "none.txt"))
	assert.ErrorIs(t, err, input.ErrNotCached)

	bad := writeInput(t, "forward x\n")
	_, err = execute(t, "solve", "--year", "2021", "--day", "2", "--input", bad)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = execute(t, "solve", "--year", "2021")
	assert.Error(t, err, "--day is required")
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 29)
	assert.Equal(t, "2021/01", lines[0])
	assert.Equal(t, "2022/18", lines[len(lines)-1])
}
