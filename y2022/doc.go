// Package y2022 solves a selection of the 2022 puzzles.
package y2022
