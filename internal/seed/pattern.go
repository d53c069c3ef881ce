package seed

import "automata/internal/life"

// Point is a live cell of a pattern, relative to the pattern's top-left
// corner.
type Point struct {
	X int
	Y int
}

// Pattern is a finite set of live cells with its bounding box.
type Pattern struct {
	Width  int
	Height int
	Cells  []Point
}

// newPattern builds a Pattern and derives its bounding box from cells.
func newPattern(cells ...Point) Pattern {
	p := Pattern{Cells: cells}
	for _, c := range cells {
		p.Width = max(p.Width, c.X+1)
		p.Height = max(p.Height, c.Y+1)
	}
	return p
}

var (
	// Glider travels one cell down and right every four generations.
	Glider = newPattern(Point{1, 0}, Point{2, 1}, Point{0, 2}, Point{1, 2}, Point{2, 2})

	// RPentomino is a methuselah that settles after 1103 generations.
	RPentomino = newPattern(Point{1, 0}, Point{2, 0}, Point{0, 1}, Point{1, 1}, Point{1, 2})

	// Blinker is the period-2 horizontal line of three.
	Blinker = newPattern(Point{0, 0}, Point{1, 0}, Point{2, 0})

	// GosperGun emits a glider every thirty generations.
	GosperGun = MustParseRLE(gosperGunRLE)
)

const gosperGunRLE = `#N Gosper glider gun
x = 36, y = 9, rule = B3/S23
24bo$22bobo$12b2o6b2o12b2o$11bo3bo4b2o12b2o$2o8bo5bo3b2o$2o8bo3bob2o4bobo$
10bo5bo7bo$11bo3bo$12b2o!`

// Stamp sets the cells of p alive in grid with the pattern's top-left corner
// at (ox, oy). Coordinates wrap around the grid edges.
func Stamp(grid []uint8, width, height int, p Pattern, ox, oy int) {
	for _, c := range p.Cells {
		x := life.Wrap(ox+c.X, width)
		y := life.Wrap(oy+c.Y, height)
		grid[life.Index(x, y, width)] = life.Alive
	}
}

// StampCentred stamps p with its bounding box centred in the grid.
func StampCentred(grid []uint8, width, height int, p Pattern) {
	Stamp(grid, width, height, p, width/2-p.Width/2, height/2-p.Height/2)
}
