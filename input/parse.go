package input

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

// Lines splits text into lines, dropping "\r" and surrounding blank lines.
func Lines(text string) []string {
	text = strings.Trim(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}

// Blocks splits text on blank lines and returns the lines of each block.
func Blocks(text string) [][]string {
	text = strings.Trim(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil
	}

	var out [][]string
	for _, b := range strings.Split(text, "\n\n") {
		out = append(out, strings.Split(strings.Trim(b, "\n"), "\n"))
	}

	return out
}

// Fields returns the whitespace-separated fields of every non-empty line.
func Fields(text string) [][]string {
	var out [][]string
	for _, l := range Lines(text) {
		if f := strings.Fields(l); len(f) > 0 {
			out = append(out, f)
		}
	}

	return out
}

// Ints parses integers separated by sep. An empty sep splits on any whitespace.
// Parse failures wrap puzzle.ErrMalformedInput.
func Ints(text, sep string) ([]int, error) {
	var parts []string
	if sep == "" {
		parts = strings.Fields(text)
	} else {
		parts = strings.Split(strings.TrimSpace(text), sep)
	}

	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, puzzle.Malformedf("integer %q", p)
		}
		out = append(out, n)
	}

	return out, nil
}

// Atoi is strconv.Atoi with failures wrapping puzzle.ErrMalformedInput.
func Atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, puzzle.Malformedf("integer %q", s)
	}

	return n, nil
}
