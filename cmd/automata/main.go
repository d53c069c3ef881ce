// Command automata runs Conway's Game of Life on a toroidal grid in a window,
// advancing it with the stepping strategy selected by -mode.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"go.uber.org/automaxprocs/maxprocs"

	"automata/internal/engine"
	"automata/internal/seed"
)

// seedFunc writes an initial generation into a dead grid.
type seedFunc func(grid []uint8, width, height int) error

func main() {
	flag.Parse()

	logger, err := newLogger(os.Stderr, *logLevelFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(logger); err != nil {
		logger.Fatal().Err(err).Msg("automata stopped")
	}
}

func run(logger zerolog.Logger) error {
	undo, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug().Msgf(format, args...)
	}))
	defer undo()
	if err != nil {
		logger.Warn().Err(err).Msg("leaving GOMAXPROCS unchanged")
	}

	if sizeFlag.Height <= statusHeight {
		return fmt.Errorf("window height %d leaves no rows below the %dpx status strip", sizeFlag.Height, statusHeight)
	}
	threads := *threadsFlag
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	fill, err := seedSource()
	if err != nil {
		return err
	}

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag, logger)
		if err != nil {
			return err
		}
		defer stop()
	}

	eng, err := engine.New(engine.Config{
		Mode:      modeFlag,
		Width:     sizeFlag.Width,
		Height:    sizeFlag.Height - statusHeight,
		Threads:   threads,
		ChunkSize: *chunkSizeFlag,
		TileSize:  *tileSizeFlag,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := eng.Close(); err != nil {
			logger.Error().Err(err).Msg("engine shut down after a worker failure")
		}
	}()

	game, err := newGame(eng, fill, sizeFlag.Width, sizeFlag.Height, logger)
	if err != nil {
		return fmt.Errorf("seeding: %w", err)
	}

	ebiten.SetWindowSize(sizeFlag.Width, sizeFlag.Height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(targetTPS)

	logger.Info().
		Stringer("mode", modeFlag).
		Stringer("size", sizeFlag).
		Int("threads", eng.Threads()).
		Msg("starting")
	if err := ebiten.RunGame(game); err != nil {
		return err
	}
	logger.Info().Uint64("generation", eng.Generation()).Msg("window closed")
	return nil
}

// seedSource picks the initial generation: an RLE file, a random soup, or
// one of the built-in patterns.
func seedSource() (seedFunc, error) {
	if path := *seedFileFlag; path != "" {
		return func(grid []uint8, width, height int) error {
			return seed.LoadRLEFile(path, grid, width, height)
		}, nil
	}
	if density := *randomDensityFlag; density != 0 {
		if density < 0 || density > 1 {
			return nil, fmt.Errorf("-random-density %v outside [0, 1]", density)
		}
		r := rand.New(rand.NewSource(*randomSeedFlag))
		return func(grid []uint8, _, _ int) error {
			seed.Random(grid, density, r)
			return nil
		}, nil
	}
	switch *patternFlag {
	case "gosper":
		return func(grid []uint8, width, height int) error {
			seed.Gosper(grid, width, height)
			return nil
		}, nil
	case "glider-rpentomino":
		return func(grid []uint8, width, height int) error {
			seed.GliderAndRPentomino(grid, width, height)
			return nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown -pattern %q", *patternFlag)
	}
}
