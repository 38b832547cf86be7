// Package y2021 solves the 2021 puzzles.
//
// Every day is a stateless type implementing puzzle.Solver; Register wires
// them into a puzzle.Registry. Inputs that cannot be parsed produce errors
// wrapping puzzle.ErrMalformedInput.
package y2021
