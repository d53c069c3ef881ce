package life

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var crossStrategySizes = [...][2]int{
	{1, 1}, {1, 5}, {5, 1}, {3, 3}, {4, 7}, {17, 13}, {32, 32}, {61, 29},
}

func TestCrossStrategyDeterminism(t *testing.T) {
	for si, size := range crossStrategySizes {
		w, h := size[0], size[1]
		total := w * h
		curr := randomGrid(int64(si+1), w, h)
		want := serialNext(curr, w, h)

		t.Run(fmt.Sprintf("%dx%d", w, h), func(t *testing.T) {
			threadCounts := []int{1, 2, 3, 7, total, total + 3}
			for _, n := range threadCounts {
				next := make([]uint8, total)
				StepParallel(curr, next, n, w, h)
				require.Equal(t, want, next, "parallel threads=%d", n)

				for _, tile := range []int{1, 2, 8, 64} {
					next := make([]uint8, total)
					StepTiled(curr, next, n, tile, w, h)
					require.Equal(t, want, next, "tiled threads=%d tile=%d", n, tile)
				}

				for _, chunk := range []int{1, 3, 16, total, total + 1} {
					next := make([]uint8, total)
					StepWorkers(curr, next, n, chunk, w, h)
					require.Equal(t, want, next, "workers threads=%d chunk=%d", n, chunk)
				}
			}

			for _, n := range []int{1, 4} {
				for _, chunk := range []int{1, 5, total} {
					f := NewField(w, h)
					f.Load(curr)
					p := NewPool(f, n, chunk)
					p.Step()
					require.NoError(t, p.Close())
					require.Equal(t, want, f.Snapshot(), "pool threads=%d chunk=%d", n, chunk)
				}
			}
		})
	}
}

func TestStepParallel_everyThreadCount(t *testing.T) {
	const w, h = 6, 5
	curr := randomGrid(42, w, h)
	want := serialNext(curr, w, h)
	for n := 1; n <= w*h; n++ {
		next := make([]uint8, w*h)
		StepParallel(curr, next, n, w, h)
		require.Equal(t, want, next, "threads=%d", n)
	}
}

func TestStepWorkers_chunkOneGlider(t *testing.T) {
	const w, h = 20, 15
	curr := gliderGrid(w, h)
	for gen := 0; gen < 12; gen++ {
		want := serialNext(curr, w, h)
		next := make([]uint8, w*h)
		StepWorkers(curr, next, 4, 1, w, h)
		require.Equal(t, want, next, "generation %d", gen+1)
		curr = next
	}
}

func TestStepWorkers_chunkLargerThanGrid(t *testing.T) {
	defer checkNumGoroutines(3 * time.Second)(t)
	const w, h = 5, 5
	curr := randomGrid(21, w, h)
	want := serialNext(curr, w, h)
	for _, chunk := range []int{1 << 50, math.MaxInt} {
		next := make([]uint8, w*h)
		require.NotPanics(t, func() { StepWorkers(curr, next, 2, chunk, w, h) }, "chunk=%d", chunk)
		require.Equal(t, want, next, "chunk=%d", chunk)
	}
}

func TestJobCursor_hugeChunk(t *testing.T) {
	c := &jobCursor{total: 10, chunk: math.MaxInt}
	start, end, ok := c.claim()
	require.True(t, ok)
	require.Equal(t, 0, start)
	require.Equal(t, 10, end)
	_, _, ok = c.claim()
	require.False(t, ok)
}

func TestStepTiled_multiGeneration(t *testing.T) {
	const w, h = 40, 33
	serial := randomGrid(7, w, h)
	tiled := append([]uint8(nil), serial...)
	for gen := 0; gen < 20; gen++ {
		serial = serialNext(serial, w, h)
		next := make([]uint8, w*h)
		StepTiled(tiled, next, 3, 8, w, h)
		tiled = next
		require.Equal(t, serial, tiled, "generation %d", gen+1)
	}
}

func TestPartitionBands(t *testing.T) {
	for _, tc := range [...]struct {
		total, n  int
		wantSizes []int
	}{
		{10, 1, []int{10}},
		{10, 3, []int{4, 4, 2}},
		{10, 5, []int{2, 2, 2, 2, 2}},
		{3, 5, []int{1, 1, 1}},
		{9, 4, []int{3, 3, 3}},
	} {
		next := make([]uint8, tc.total)
		bands := partitionBands(next, tc.n)
		sizes := make([]int, len(bands))
		offset := 0
		for i, b := range bands {
			sizes[i] = len(b.cells)
			require.Equal(t, offset, b.start, "total=%d n=%d band %d", tc.total, tc.n, i)
			offset += len(b.cells)
		}
		require.Equal(t, tc.wantSizes, sizes, "total=%d n=%d", tc.total, tc.n)
		require.Equal(t, tc.total, offset)
	}
}

func TestConcurrentSteppers_preconditions(t *testing.T) {
	curr, next := make([]uint8, 9), make([]uint8, 9)
	require.Panics(t, func() { StepParallel(curr, next, 0, 3, 3) })
	require.Panics(t, func() { StepParallel(curr, next[:8], 2, 3, 3) })
	require.Panics(t, func() { StepTiled(curr, next, 2, 0, 3, 3) })
	require.Panics(t, func() { StepWorkers(curr, next, 2, 0, 3, 3) })
	require.Panics(t, func() { StepWorkers(curr, next, 0, 2, 3, 3) })
}

func TestConcurrentSteppers_workerPanicPropagates(t *testing.T) {
	const w, h = 8, 8
	curr := make([]uint8, w*h)
	curr[Index(5, 5, w)] = 9
	for name, step := range map[string]func(next []uint8){
		"parallel": func(next []uint8) { StepParallel(curr, next, 4, w, h) },
		"tiled":    func(next []uint8) { StepTiled(curr, next, 4, 2, w, h) },
		"workers":  func(next []uint8) { StepWorkers(curr, next, 4, 3, w, h) },
	} {
		t.Run(name, func(t *testing.T) {
			defer checkNumGoroutines(3 * time.Second)(t)
			wp := recoverWorkerPanic(t, func() { step(make([]uint8, w*h)) })
			require.Contains(t, fmt.Sprint(wp.Value), "life: ")
			require.NotEmpty(t, wp.Stack)
			require.Contains(t, wp.Error(), "panicked")
		})
	}
}
