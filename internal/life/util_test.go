package life

import (
	"math/rand"
	"runtime"
	"testing"
	"time"
)

// randomGrid fills a width x height grid from a fixed seed.
func randomGrid(seed int64, width, height int) []uint8 {
	r := rand.New(rand.NewSource(seed))
	grid := make([]uint8, width*height)
	for i := range grid {
		grid[i] = uint8(r.Intn(2))
	}
	return grid
}

// gridWith returns a dead grid with the listed (x, y) cells alive.
func gridWith(width, height int, cells ...[2]int) []uint8 {
	grid := make([]uint8, width*height)
	for _, c := range cells {
		grid[Index(c[0], c[1], width)] = Alive
	}
	return grid
}

// gliderGrid places a glider near the origin of a width x height grid.
func gliderGrid(width, height int) []uint8 {
	return gridWith(width, height, [2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})
}

// serialNext is the oracle result for one generation.
func serialNext(curr []uint8, width, height int) []uint8 {
	next := make([]uint8, len(curr))
	StepSerial(curr, next, width, height)
	return next
}

// checkNumGoroutines records the goroutine count and returns a check that
// waits up to timeout for it to drop back.
func checkNumGoroutines(timeout time.Duration) func(t *testing.T) {
	before := runtime.NumGoroutine()
	return func(t *testing.T) {
		t.Helper()
		deadline := time.Now().Add(timeout)
		for {
			after := runtime.NumGoroutine()
			if after <= before {
				return
			}
			if time.Now().After(deadline) {
				t.Errorf(`goroutine leak: before=%d after=%d`, before, after)
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
	}
}

// recoverWorkerPanic runs fn and returns the *WorkerPanic it panicked with.
func recoverWorkerPanic(t *testing.T, fn func()) (wp *WorkerPanic) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal(`expected a panic`)
		}
		var ok bool
		if wp, ok = r.(*WorkerPanic); !ok {
			t.Fatalf(`expected *WorkerPanic, got %T: %v`, r, r)
		}
	}()
	fn()
	return nil
}
