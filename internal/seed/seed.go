// Package seed populates the initial generation of a grid: built-in
// patterns, random soups and run-length encoded pattern files.
package seed

import (
	"math/rand"

	"automata/internal/life"
)

// Gosper clears grid and places a Gosper glider gun in its top-left quarter,
// leaving room for the gliders to travel down and right.
func Gosper(grid []uint8, width, height int) {
	clear(grid)
	Stamp(grid, width, height, GosperGun, width/8, height/8)
}

// GliderAndRPentomino clears grid and places a glider at the centre and an
// R-pentomino up and to the left of it.
func GliderAndRPentomino(grid []uint8, width, height int) {
	clear(grid)
	cx, cy := width/2, height/2
	Stamp(grid, width, height, Glider, cx, cy)
	Stamp(grid, width, height, RPentomino, cx-60, cy-20)
}

// Random fills grid so that each cell is alive with probability density.
func Random(grid []uint8, density float64, r *rand.Rand) {
	for i := range grid {
		if r.Float64() < density {
			grid[i] = life.Alive
		} else {
			grid[i] = life.Dead
		}
	}
}
