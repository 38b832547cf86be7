// Package puzzle defines the contract every daily solver implements and a
// registry mapping (year, day) keys to solvers.
package puzzle

import (
	"errors"
	"fmt"
)

// Sentinel errors for solver lookup and input validation.
var (
	// ErrMalformedInput is wrapped by every solver that cannot parse its input.
	ErrMalformedInput = errors.New("puzzle: malformed input")

	// ErrDuplicate indicates a second solver registered under the same Key.
	ErrDuplicate = errors.New("puzzle: solver already registered")

	// ErrNotFound indicates Lookup for a Key nobody registered.
	ErrNotFound = errors.New("puzzle: no solver registered")

	// ErrBadKey indicates a year before the first event or a day outside 1..25.
	ErrBadKey = errors.New("puzzle: invalid year/day")

	// ErrBadPart indicates a part number other than 1 or 2.
	ErrBadPart = errors.New("puzzle: part must be 1 or 2")

	// ErrUnsolved is returned by a Func whose part is not implemented.
	ErrUnsolved = errors.New("puzzle: part not implemented")
)

// FirstYear is the first year puzzles were published.
const FirstYear = 2015

// Solver computes both answers of one daily puzzle from its raw input text.
type Solver interface {
	Part1(input string) (string, error)
	Part2(input string) (string, error)
}

// Func adapts two plain functions to the Solver interface.
// A nil part reports ErrUnsolved.
type Func struct {
	One, Two func(input string) (string, error)
}

// Part1 implements Solver.
func (f Func) Part1(input string) (string, error) {
	if f.One == nil {
		return "", ErrUnsolved
	}

	return f.One(input)
}

// Part2 implements Solver.
func (f Func) Part2(input string) (string, error) {
	if f.Two == nil {
		return "", ErrUnsolved
	}

	return f.Two(input)
}

// Key identifies a puzzle.
type Key struct {
	Year int
	Day  int
}

// String renders the key as "2021/07".
func (k Key) String() string { return fmt.Sprintf("%d/%02d", k.Year, k.Day) }

// Validate reports ErrBadKey for impossible keys.
func (k Key) Validate() error {
	if k.Year < FirstYear || k.Day < 1 || k.Day > 25 {
		return fmt.Errorf("%w: %s", ErrBadKey, k)
	}

	return nil
}

// Less orders keys by year, then day.
func (k Key) Less(o Key) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}

	return k.Day < o.Day
}

// Answer holds the two answers of a puzzle.
type Answer struct {
	Part1 string
	Part2 string
}

// Malformedf builds an error wrapping ErrMalformedInput.
func Malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}
