package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleControls processes the pause, single-step, speed and reseed hotkeys.
func (g *Game) handleControls() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.logger.Debug().
			Bool("paused", g.paused).
			Uint64("generation", g.engine.Generation()).
			Msg("pause toggled")
	}
	if g.paused && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustGenerationsPerFrame(-generationsPerFrameStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustGenerationsPerFrame(generationsPerFrameStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.engine.Reseed(g.fill); err != nil {
			return fmt.Errorf("reseed: %w", err)
		}
		g.logger.Info().
			Int("population", g.engine.Field().Population()).
			Msg("reseeded")
	}
	return nil
}

// adjustGenerationsPerFrame moves the batch size by delta within bounds.
func (g *Game) adjustGenerationsPerFrame(delta int) {
	g.generationsPerFrame = min(max(g.generationsPerFrame+delta, minGenerationsPerFrame), maxGenerationsPerFrame)
}
