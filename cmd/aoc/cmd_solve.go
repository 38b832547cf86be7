package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

func (a *app) solveCmd() *cobra.Command {
	var (
		year, day, part int
		inputPath       string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one puzzle",
		Example: `  aoc solve --year 2021 --day 15
  aoc solve --day 6 --part 2 --input sample.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("year") {
				year = a.cfg.Year
			}
			return a.solve(cmd.OutOrStdout(), puzzle.Key{Year: year, Day: day}, part, inputPath)
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Event year (default from config)")
	cmd.Flags().IntVarP(&day, "day", "d", 0, "Puzzle day, 1-25 (required)")
	cmd.Flags().IntVarP(&part, "part", "p", 0, "Solve only part 1 or 2")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file (default: cached input)")
	_ = cmd.MarkFlagRequired("day")

	return cmd
}

// solve runs the requested parts of one puzzle and prints "part N: answer".
func (a *app) solve(w io.Writer, key puzzle.Key, part int, path string) error {
	if part != 0 && part != 1 && part != 2 {
		return fmt.Errorf("%w: %d", puzzle.ErrBadPart, part)
	}
	s, err := a.registry.Lookup(key)
	if err != nil {
		return err
	}

	if path == "" {
		path = input.Cache{Dir: a.cfg.InputDir}.Path(key.Year, key.Day)
	}
	text, err := input.ReadFile(path)
	if err != nil {
		return err
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	a.logger.Info("solving puzzle", zap.Stringer("puzzle", key), zap.String("input", path))

	parts := []int{1, 2}
	if part != 0 {
		parts = []int{part}
	}
	for _, p := range parts {
		start := time.Now()
		ans, err := puzzle.Run(s, p, text)
		if err != nil {
			a.logger.Error("solver failed", zap.Stringer("puzzle", key), zap.Int("part", p), zap.Error(err))
			return fmt.Errorf("%s part %d: %w", key, p, err)
		}
		a.logger.Info("part solved",
			zap.Stringer("puzzle", key),
			zap.Int("part", p),
			zap.Duration("elapsed", time.Since(start)))
		fmt.Fprintf(w, "part %d: %s\n", p, ans)
	}

	return nil
}
