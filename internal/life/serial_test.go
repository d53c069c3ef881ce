package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepSerial_underpopulation3x3(t *testing.T) {
	curr := gridWith(3, 3, [2]int{1, 1}, [2]int{2, 1})
	next := make([]uint8, 9)
	for i := range next {
		next[i] = Alive
	}
	StepSerial(curr, next, 3, 3)
	assert.Equal(t, make([]uint8, 9), next)
}

func TestStepSerial_allDeadFixedPoint(t *testing.T) {
	for _, size := range [...][2]int{{1, 1}, {1, 7}, {3, 3}, {16, 9}, {64, 64}} {
		w, h := size[0], size[1]
		next := serialNext(make([]uint8, w*h), w, h)
		assert.Equal(t, 0, Population(next), "%dx%d", w, h)
	}
}

func TestStepSerial_blinker(t *testing.T) {
	for _, size := range [...][2]int{{5, 5}, {8, 6}, {13, 21}} {
		w, h := size[0], size[1]
		cx, cy := w/2, h/2
		horizontal := gridWith(w, h, [2]int{cx - 1, cy}, [2]int{cx, cy}, [2]int{cx + 1, cy})
		vertical := gridWith(w, h, [2]int{cx, cy - 1}, [2]int{cx, cy}, [2]int{cx, cy + 1})

		gen1 := serialNext(horizontal, w, h)
		require.Equal(t, vertical, gen1, "%dx%d generation 1", w, h)
		gen2 := serialNext(gen1, w, h)
		require.Equal(t, horizontal, gen2, "%dx%d generation 2", w, h)
	}
}

func TestStepSerial_blockStillLife(t *testing.T) {
	const w, h = 6, 6
	block := gridWith(w, h, [2]int{2, 2}, [2]int{3, 2}, [2]int{2, 3}, [2]int{3, 3})
	assert.Equal(t, block, serialNext(block, w, h))
}

func TestStepSerial_gliderWrapsAround(t *testing.T) {
	const w, h = 8, 8
	grid := gliderGrid(w, h)
	// a glider moves one cell diagonally every four generations, so after
	// 4*w generations it is back where it started
	for i := 0; i < 4*w; i++ {
		grid = serialNext(grid, w, h)
		require.Equal(t, 5, Population(grid), "generation %d", i+1)
	}
	assert.Equal(t, gliderGrid(w, h), grid)
}

func TestStepSerial_gliderTranslates(t *testing.T) {
	const w, h = 10, 10
	grid := gliderGrid(w, h)
	for i := 0; i < 4; i++ {
		grid = serialNext(grid, w, h)
	}
	assert.Equal(t, gridWith(w, h, [2]int{2, 1}, [2]int{3, 2}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3}), grid)
}

func TestStepSerial_preconditions(t *testing.T) {
	assert.Panics(t, func() { StepSerial(make([]uint8, 8), make([]uint8, 9), 3, 3) })
	assert.Panics(t, func() { StepSerial(make([]uint8, 9), make([]uint8, 9), 3, 2) })
}

func TestStepSerial_malformedCell(t *testing.T) {
	curr := make([]uint8, 9)
	curr[4] = 7
	assert.Panics(t, func() { StepSerial(curr, make([]uint8, 9), 3, 3) })
}
