package life

import (
	"fmt"
	"sync"
)

// Field stores the current and next generation buffers of a simulation.
//
// The step functions take raw slices and never retain them; Field exists for
// the driving loop and for the Pool, which needs the locks guarding the two
// buffers while its workers run.
type Field struct {
	width, height int

	currMu sync.RWMutex
	curr   []uint8

	nextMu sync.Mutex
	next   []uint8
}

// NewField allocates a Field with two dead width x height buffers.
func NewField(width, height int) *Field {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("life: invalid grid dimensions %dx%d", width, height))
	}
	return &Field{
		width:  width,
		height: height,
		curr:   make([]uint8, width*height),
		next:   make([]uint8, width*height),
	}
}

// Width reports the number of columns.
func (f *Field) Width() int { return f.width }

// Height reports the number of rows.
func (f *Field) Height() int { return f.height }

// Len reports the number of cells per buffer.
func (f *Field) Len() int { return f.width * f.height }

// Set writes a cell of the current buffer. Coordinates wrap.
func (f *Field) Set(x, y int, state uint8) {
	f.currMu.Lock()
	f.curr[Index(Wrap(x, f.width), Wrap(y, f.height), f.width)] = state
	f.currMu.Unlock()
}

// Get reads a cell of the current buffer. Coordinates wrap.
func (f *Field) Get(x, y int) uint8 {
	f.currMu.RLock()
	defer f.currMu.RUnlock()
	return f.curr[Index(Wrap(x, f.width), Wrap(y, f.height), f.width)]
}

// Load replaces the current buffer contents with cells.
func (f *Field) Load(cells []uint8) {
	if len(cells) != f.Len() {
		panic(fmt.Sprintf("life: load of %d cells into %dx%d field", len(cells), f.width, f.height))
	}
	f.currMu.Lock()
	copy(f.curr, cells)
	f.currMu.Unlock()
}

// Read calls fn with the current buffer while holding the read lock. fn must
// not retain the slice.
func (f *Field) Read(fn func(curr []uint8)) {
	f.currMu.RLock()
	defer f.currMu.RUnlock()
	fn(f.curr)
}

// Snapshot returns a copy of the current buffer.
func (f *Field) Snapshot() []uint8 {
	out := make([]uint8, f.Len())
	f.Read(func(curr []uint8) { copy(out, curr) })
	return out
}

// Population counts the live cells in the current buffer.
func (f *Field) Population() int {
	var n int
	f.Read(func(curr []uint8) { n = Population(curr) })
	return n
}

// Advance runs one generation through s and swaps the buffers.
func (f *Field) Advance(s Stepper) {
	_ = f.Apply(func(curr, next []uint8) error {
		s.Step(curr, next, f.width, f.height)
		return nil
	})
}

// Apply calls fn with both buffers locked and swaps them if fn succeeds. On
// error the current buffer is left untouched.
func (f *Field) Apply(fn func(curr, next []uint8) error) error {
	f.currMu.Lock()
	defer f.currMu.Unlock()
	f.nextMu.Lock()
	defer f.nextMu.Unlock()
	if err := fn(f.curr, f.next); err != nil {
		return err
	}
	f.curr, f.next = f.next, f.curr
	return nil
}

// swap exchanges the buffers under both locks so that next becomes current.
func (f *Field) swap() {
	f.currMu.Lock()
	f.nextMu.Lock()
	f.curr, f.next = f.next, f.curr
	f.nextMu.Unlock()
	f.currMu.Unlock()
}
