// Package engine binds a life.Field to the stepping strategy chosen at start-up
// and exposes the handful of operations the driving loop needs.
package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"automata/internal/life"
)

// Config describes an engine. Threads, ChunkSize and TileSize are only
// checked for the modes that use them.
type Config struct {
	Mode      Mode
	Width     int
	Height    int
	Threads   int
	ChunkSize int
	TileSize  int
	Logger    zerolog.Logger
}

// Engine advances a Field one generation at a time.
type Engine struct {
	cfg        Config
	field      *life.Field
	stepper    life.Stepper
	pool       *life.Pool
	gpu        *life.OpenCL
	generation uint64
	closed     bool
}

// Validate reports the first setting that cannot drive cfg.Mode.
func (cfg Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid grid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Mode < Serial || cfg.Mode > OpenCL {
		return fmt.Errorf("invalid mode %v", cfg.Mode)
	}
	if cfg.Mode.Threaded() && cfg.Threads < 1 {
		return fmt.Errorf("%v mode needs at least one thread, got %d", cfg.Mode, cfg.Threads)
	}
	if cfg.Mode.Chunked() && cfg.ChunkSize < 1 {
		return fmt.Errorf("%v mode needs a positive chunk size, got %d", cfg.Mode, cfg.ChunkSize)
	}
	if cfg.Mode == Tiled && cfg.TileSize < 1 {
		return fmt.Errorf("tiled mode needs a positive tile size, got %d", cfg.TileSize)
	}
	return nil
}

// New builds an engine over a dead grid. Pool mode starts its workers here
// and OpenCL mode compiles its kernel; both are released by Close.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:   cfg,
		field: life.NewField(cfg.Width, cfg.Height),
	}
	switch cfg.Mode {
	case Serial:
		e.stepper = life.Serial{}
	case Parallel:
		e.stepper = life.Parallel{Threads: cfg.Threads}
	case Tiled:
		e.stepper = life.Tiled{Threads: cfg.Threads, TileSize: cfg.TileSize}
	case Workers:
		e.stepper = life.Workers{Threads: cfg.Threads, ChunkSize: cfg.ChunkSize}
	case Pool:
		e.pool = life.NewPool(e.field, cfg.Threads, cfg.ChunkSize, life.WithLogger(cfg.Logger))
	case OpenCL:
		gpu, err := life.NewOpenCL(cfg.Width, cfg.Height)
		if err != nil {
			return nil, fmt.Errorf("opencl mode: %w", err)
		}
		e.gpu = gpu
		cfg.Logger.Info().Str("device", gpu.DeviceName()).Msg("opencl stepper enabled")
	}
	cfg.Logger.Debug().
		Stringer("mode", cfg.Mode).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("threads", e.Threads()).
		Msg("engine ready")
	return e, nil
}

// Field returns the double buffer being advanced.
func (e *Engine) Field() *life.Field { return e.field }

// Mode reports the configured strategy.
func (e *Engine) Mode() Mode { return e.cfg.Mode }

// Generation counts completed steps since the last Reseed.
func (e *Engine) Generation() uint64 { return e.generation }

// Threads reports how many goroutines take part in a step.
func (e *Engine) Threads() int {
	if !e.cfg.Mode.Threaded() {
		return 1
	}
	return e.cfg.Threads
}

// Step advances one generation. A worker panic in a concurrent mode is
// re-raised here.
func (e *Engine) Step() error {
	switch {
	case e.closed:
		return errors.New("engine closed")
	case e.pool != nil:
		e.pool.Step()
	case e.gpu != nil:
		if err := e.field.Apply(e.gpu.Step); err != nil {
			return fmt.Errorf("opencl step %d: %w", e.generation+1, err)
		}
	default:
		e.field.Advance(e.stepper)
	}
	e.generation++
	return nil
}

// StepN advances n generations, stopping at the first error.
func (e *Engine) StepN(n int) error {
	for range n {
		if err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Reseed replaces the current generation with whatever fill writes into a
// fresh dead grid, and restarts the generation count.
func (e *Engine) Reseed(fill func(grid []uint8, width, height int) error) error {
	grid := make([]uint8, e.field.Len())
	if err := fill(grid, e.cfg.Width, e.cfg.Height); err != nil {
		return err
	}
	e.field.Load(grid)
	e.generation = 0
	return nil
}

// Status renders the one-line summary shown above the grid.
func (e *Engine) Status(fps float64) string {
	s := fmt.Sprintf("mode: %v; fps: %.2f; num_threads: %d", e.cfg.Mode, fps, e.Threads())
	switch {
	case e.cfg.Mode.Chunked():
		s += fmt.Sprintf("; chunk_size: %d", e.cfg.ChunkSize)
	case e.cfg.Mode == Tiled:
		s += fmt.Sprintf("; tile_size: %d", e.cfg.TileSize)
	}
	return s
}

// Close stops the pool workers or releases the OpenCL context. It returns the
// worker failure, if any, that ended the pool.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	var err error
	if e.pool != nil {
		err = e.pool.Close()
	}
	if e.gpu != nil {
		e.gpu.Close()
	}
	return err
}
