// Package input reads cached puzzle inputs and splits them into the shapes
// solvers usually need: lines, blank-line separated blocks, integers, fields.
package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotCached indicates that no input file exists for the requested puzzle.
var ErrNotCached = errors.New("input: not cached")

// Cache is a flat directory of raw input files named "<year>_<dd>.txt".
type Cache struct {
	Dir string
}

// Path returns the file path for the given puzzle.
func (c Cache) Path(year, day int) string {
	return filepath.Join(c.Dir, fmt.Sprintf("%d_%02d.txt", year, day))
}

// Load returns the cached input with trailing newlines removed.
func (c Cache) Load(year, day int) (string, error) {
	return ReadFile(c.Path(year, day))
}

// Store writes text to the cache, creating the directory when needed.
func (c Cache) Store(year, day int, text string) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("input: create cache dir: %w", err)
	}
	if err := os.WriteFile(c.Path(year, day), []byte(text), 0o644); err != nil {
		return fmt.Errorf("input: write %d/%02d: %w", year, day, err)
	}

	return nil
}

// ReadFile reads any input file, trimming trailing newlines.
// A missing file reports ErrNotCached together with its path.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotCached, path)
		}
		return "", fmt.Errorf("input: read %s: %w", path, err)
	}

	return strings.TrimRight(string(data), "\r\n"), nil
}
