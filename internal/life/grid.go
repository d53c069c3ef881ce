package life

import "fmt"

// Cell states stored in a grid buffer.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// offset is a relative grid coordinate.
type offset struct {
	dx int
	dy int
}

// neighbourKernel lists the Moore neighbourhood in the order it is summed.
var neighbourKernel = [8]offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Wrap reduces v into [0, m), so coordinates past one edge reappear at the
// opposite edge.
func Wrap(v, m int) int {
	return ((v % m) + m) % m
}

// Index converts grid coordinates to a buffer index.
func Index(x, y, width int) int {
	return y*width + x
}

// NeighborCount sums the eight neighbours of (x, y) with toroidal wrap. A
// neighbour holding anything but Dead or Alive panics.
func NeighborCount(grid []uint8, x, y, width, height int) uint8 {
	var n uint8
	for _, o := range neighbourKernel {
		nx, ny := Wrap(x+o.dx, width), Wrap(y+o.dy, height)
		cell := grid[Index(nx, ny, width)]
		if cell > Alive {
			panic(fmt.Sprintf("life: invalid cell state %d at (%d, %d)", cell, nx, ny))
		}
		n += cell
	}
	return n
}

// AdvanceCell applies the B3/S23 transition. A state other than Dead or Alive,
// or a count above eight, means the grid held a malformed cell and panics.
func AdvanceCell(state, neighbours uint8) uint8 {
	if neighbours > 8 {
		panic(fmt.Sprintf("life: neighbour count %d out of range", neighbours))
	}
	switch state {
	case Alive:
		if neighbours == 2 || neighbours == 3 {
			return Alive
		}
		return Dead
	case Dead:
		if neighbours == 3 {
			return Alive
		}
		return Dead
	default:
		panic(fmt.Sprintf("life: invalid cell state %d", state))
	}
}

// nextCell computes the successor of the cell at linear index i.
func nextCell(curr []uint8, i, width, height int) uint8 {
	x, y := i%width, i/width
	return AdvanceCell(curr[i], NeighborCount(curr, x, y, width, height))
}

// Population counts the live cells in grid.
func Population(grid []uint8) int {
	count := 0
	for _, c := range grid {
		if c == Alive {
			count++
		}
	}
	return count
}

// checkBuffers panics unless both buffers hold exactly width*height cells.
func checkBuffers(curr, next []uint8, width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("life: invalid grid dimensions %dx%d", width, height))
	}
	total := width * height
	if len(curr) != total || len(next) != total {
		panic(fmt.Sprintf("life: buffer length mismatch: curr=%d next=%d want %d", len(curr), len(next), total))
	}
}

// checkPositive panics unless v is at least one.
func checkPositive(name string, v int) {
	if v < 1 {
		panic(fmt.Sprintf("life: %s must be at least 1, got %d", name, v))
	}
}
