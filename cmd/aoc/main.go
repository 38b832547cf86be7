// Command aoc runs the registered puzzle solvers against cached inputs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/advent/config"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/y2021"
	"github.com/katalvlaran/advent/y2022"
)

// app holds the state shared by every subcommand.
type app struct {
	// Global flags
	verbose    bool
	configPath string

	cfg      *config.Config
	logger   *zap.Logger
	registry *puzzle.Registry
}

// newRootCmd builds the command tree with every solver registered.
func newRootCmd() *cobra.Command {
	a := &app{registry: puzzle.NewRegistry()}
	y2021.Register(a.registry)
	y2022.Register(a.registry)

	root := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code solvers",
		Long: `aoc solves Advent of Code puzzles from inputs cached on disk.

Inputs live in the configured input directory as <year>_<dd>.txt,
or can be given explicitly with --input.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath, "Settings file")

	root.AddCommand(a.solveCmd())
	root.AddCommand(a.listCmd())

	return root
}

// setup loads the settings file and initializes the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	a.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.String("input_dir", cfg.InputDir),
		zap.Int("year", cfg.Year))

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
