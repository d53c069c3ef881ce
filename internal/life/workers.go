package life

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// jobCursor hands out half-open ranges of cell indices. Claimed ranges never
// overlap and advance monotonically until the cursor is reset.
type jobCursor struct {
	mu    sync.Mutex
	next  int
	total int
	chunk int
}

// claim reserves the next unclaimed range. ok is false once every cell has
// been handed out.
func (c *jobCursor) claim() (start, end int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.next >= c.total {
		return 0, 0, false
	}
	start = c.next
	end = start + min(c.chunk, c.total-start)
	c.next = end
	return start, end, true
}

func (c *jobCursor) reset() {
	c.mu.Lock()
	c.next = 0
	c.mu.Unlock()
}

// drain claims chunks until the cursor is exhausted. Each chunk is computed
// into scratch and then handed to commit, which copies it into the shared
// next buffer.
func drain(c *jobCursor, curr, scratch []uint8, width, height int, commit func(start int, cells []uint8)) {
	for {
		start, end, ok := c.claim()
		if !ok {
			return
		}
		out := scratch[:end-start]
		for i := range out {
			out[i] = nextCell(curr, start+i, width, height)
		}
		commit(start, out)
	}
}

// StepWorkers writes the successor of curr into next with numThreads
// goroutines pulling chunkSize-cell jobs from a shared cursor. Smaller chunks
// balance uneven progress better at the cost of more lock traffic.
//
// A panic in any goroutine is re-raised as a *WorkerPanic once all of them
// have finished; next is then only partially written.
func StepWorkers(curr, next []uint8, numThreads, chunkSize, width, height int) {
	checkBuffers(curr, next, width, height)
	checkPositive("numThreads", numThreads)
	checkPositive("chunkSize", chunkSize)

	cursor := &jobCursor{total: len(curr), chunk: chunkSize}
	var nextMu sync.Mutex
	commit := func(start int, cells []uint8) {
		nextMu.Lock()
		copy(next[start:start+len(cells)], cells)
		nextMu.Unlock()
	}

	var g errgroup.Group
	for id := 0; id < numThreads; id++ {
		g.Go(func() error {
			return guard(id, func() {
				scratch := make([]uint8, min(chunkSize, len(curr)))
				drain(cursor, curr, scratch, width, height, commit)
			})
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}
}
