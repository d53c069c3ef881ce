package main

import (
	"flag"

	"automata/internal/engine"
)

var (
	// sizeFlag is the window size; the grid loses statusHeight rows to the
	// status strip.
	sizeFlag = engine.Size{Width: defaultWidth, Height: defaultHeight}

	// modeFlag selects the stepping strategy.
	modeFlag = engine.Pool

	chunkSizeFlag = flag.Int("chunk-size", defaultChunkSize, "cells per job claimed by a worker (workers and pool modes)")
	tileSizeFlag  = flag.Int("tile-size", defaultTileSize, "tile edge in cells (tiled mode)")

	// threadsFlag defaults to GOMAXPROCS once automaxprocs has applied the
	// container quota.
	threadsFlag = flag.Int("threads", 0, "goroutines per step (0 uses GOMAXPROCS)")

	seedFileFlag      = flag.String("seed", "", "run-length encoded `file` replacing the built-in pattern")
	patternFlag       = flag.String("pattern", "gosper", "built-in seed: gosper or glider-rpentomino")
	randomDensityFlag = flag.Float64("random-density", 0, "seed a random soup with this live-cell probability instead of the Gosper gun")
	randomSeedFlag    = flag.Int64("random-seed", defaultRandomSeed, "source seed for -random-density")

	// debugFlag adds generation, population and step timing below the status line.
	debugFlag = flag.Bool("debug", false, "show generation, population and step timing")

	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to `file`")
	logLevelFlag   = flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
)

func init() {
	flag.Var(&sizeFlag, "size", "window size as `WIDTHxHEIGHT`")
	flag.Var(&modeFlag, "mode", "stepping strategy: serial, parallel, tiled, workers, pool or opencl")
}
