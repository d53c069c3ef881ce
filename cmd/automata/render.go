package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"automata/internal/life"
)

// Draw paints the current generation below the status strip and prints the
// status line, plus the debug overlay when enabled.
func (g *Game) Draw(screen *ebiten.Image) {
	cells := g.pixels[g.width*statusHeight*4:]
	g.engine.Field().Read(func(curr []uint8) {
		for i, cell := range curr {
			colour := deadColour
			if cell == life.Alive {
				colour = aliveColour
			}
			copy(cells[i*4:i*4+4], colour[:])
		}
	})
	screen.WritePixels(g.pixels)

	ebitenutil.DebugPrintAt(screen, g.engine.Status(ebiten.ActualFPS()), 2, -2)

	if *debugFlag {
		state := "running"
		if g.paused {
			state = "paused (N steps)"
		}
		msg := fmt.Sprintf("generation: %d\npopulation: %d\nstep: %.3f ms\ngenerations/frame: %d (+/-)\n%s",
			g.engine.Generation(),
			g.engine.Field().Population(),
			g.lastStepDuration.Seconds()*1000,
			g.generationsPerFrame,
			state)
		ebitenutil.DebugPrintAt(screen, msg, 2, statusHeight+2)
	}
}

// Layout keeps one screen pixel per cell regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) { return g.width, g.height }
