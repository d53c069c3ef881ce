package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"automata/internal/engine"
)

// Game drives an engine from ebiten's update loop and owns the frame buffer
// the grid is painted into.
type Game struct {
	engine *engine.Engine
	fill   seedFunc
	logger zerolog.Logger

	width, height int
	pixels        []byte

	paused              bool
	stepOnce            bool
	generationsPerFrame int
	lastStepDuration    time.Duration
}

// newGame seeds e with fill and prepares a width x height frame buffer, the
// top statusHeight rows of which hold the status line.
func newGame(e *engine.Engine, fill seedFunc, width, height int, logger zerolog.Logger) (*Game, error) {
	if err := e.Reseed(fill); err != nil {
		return nil, err
	}
	g := &Game{
		engine:              e,
		fill:                fill,
		logger:              logger,
		width:               width,
		height:              height,
		pixels:              make([]byte, width*height*4),
		generationsPerFrame: defaultGenerationsPerFrame,
	}
	for i := 0; i < width*statusHeight; i++ {
		copy(g.pixels[i*4:], deadColour[:])
	}
	logger.Info().
		Int("population", e.Field().Population()).
		Msg("seeded")
	return g, nil
}

// Update advances the automaton by generationsPerFrame, or by one generation
// when single-stepping while paused.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if err := g.handleControls(); err != nil {
		return err
	}

	steps := g.generationsPerFrame
	if g.paused {
		if !g.stepOnce {
			return nil
		}
		g.stepOnce = false
		steps = 1
	}
	start := time.Now()
	if err := g.engine.StepN(steps); err != nil {
		return err
	}
	g.lastStepDuration = time.Since(start) / time.Duration(steps)
	return nil
}
