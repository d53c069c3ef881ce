package life

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// WorkerState is the position of a pool worker in its generation cycle.
type WorkerState int32

const (
	// WaitStart: parked on the start rendezvous, waiting for a generation.
	WaitStart WorkerState = iota
	// Processing: claiming and computing chunks of the current generation.
	Processing
	// WaitEnd: finished its share, waiting for the rest at the end rendezvous.
	WaitEnd
	// Terminated: the worker goroutine has returned.
	Terminated
)

// String returns the kebab-case name used in logs.
func (s WorkerState) String() string {
	switch s {
	case WaitStart:
		return "wait-start"
	case Processing:
		return "processing"
	case WaitEnd:
		return "wait-end"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Pool advances a Field with long-lived worker goroutines, so a driving loop
// running many generations per second does not pay for goroutine start-up and
// join on every step.
//
// Each generation is bracketed by two rendezvous: the controller releases the
// workers through the start barrier, the workers drain a shared job cursor
// exactly like StepWorkers, and everyone meets at the end barrier before the
// controller swaps the buffers. Step and Close must be called from a single
// controlling goroutine at a time.
type Pool struct {
	field     *Field
	chunkSize int
	cursor    jobCursor

	start *barrier
	end   *barrier
	quit  atomic.Bool

	states  []atomic.Int32
	running atomic.Int32
	wg      sync.WaitGroup

	stepMu     sync.Mutex
	generation uint64
	closed     bool
	closeErr   error

	failMu  sync.Mutex
	failure *WorkerPanic

	logger zerolog.Logger
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithLogger sets the logger used for pool lifecycle events.
func WithLogger(logger zerolog.Logger) PoolOption {
	return func(p *Pool) { p.logger = logger }
}

// NewPool starts numThreads workers bound to field. Every worker immediately
// parks on the start barrier. The caller must Close the pool.
func NewPool(field *Field, numThreads, chunkSize int, opts ...PoolOption) *Pool {
	checkPositive("numThreads", numThreads)
	checkPositive("chunkSize", chunkSize)
	p := &Pool{
		field:     field,
		chunkSize: chunkSize,
		cursor:    jobCursor{total: field.Len(), chunk: chunkSize},
		start:     newBarrier(numThreads + 1),
		end:       newBarrier(numThreads + 1),
		states:    make([]atomic.Int32, numThreads),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.running.Store(int32(numThreads))
	p.wg.Add(numThreads)
	for id := 0; id < numThreads; id++ {
		go p.workerLoop(id)
	}
	p.logger.Debug().
		Int("workers", numThreads).
		Int("chunk_size", chunkSize).
		Int("width", field.Width()).
		Int("height", field.Height()).
		Msg("pool started")
	return p
}

func (p *Pool) workerLoop(id int) {
	defer p.wg.Done()
	defer p.running.Add(-1)
	defer p.setState(id, Terminated)

	// A chunk never spans more than the whole grid.
	scratch := make([]uint8, min(p.chunkSize, p.field.Len()))
	for {
		p.setState(id, WaitStart)
		if !p.start.wait() || p.quit.Load() {
			return
		}
		p.setState(id, Processing)
		err := guard(id, func() { p.process(scratch) })
		if err != nil {
			p.fail(err.(*WorkerPanic))
		}
		p.setState(id, WaitEnd)
		if !p.end.wait() || err != nil {
			return
		}
	}
}

// process drains the cursor for one generation while holding a read lock on
// the current buffer.
func (p *Pool) process(scratch []uint8) {
	f := p.field
	f.currMu.RLock()
	defer f.currMu.RUnlock()
	drain(&p.cursor, f.curr, scratch, f.width, f.height, func(start int, cells []uint8) {
		f.nextMu.Lock()
		copy(f.next[start:start+len(cells)], cells)
		f.nextMu.Unlock()
	})
}

func (p *Pool) setState(id int, s WorkerState) {
	p.states[id].Store(int32(s))
}

func (p *Pool) fail(wp *WorkerPanic) {
	p.failMu.Lock()
	if p.failure == nil {
		p.failure = wp
	}
	p.failMu.Unlock()
}

func (p *Pool) failed() *WorkerPanic {
	p.failMu.Lock()
	defer p.failMu.Unlock()
	return p.failure
}

// Step advances the field by one generation and swaps its buffers. If a
// worker panicked during the generation, the pool is broken, the remaining
// workers exit and the *WorkerPanic is re-panicked here.
func (p *Pool) Step() {
	p.stepMu.Lock()
	defer p.stepMu.Unlock()
	if p.closed {
		panic(ErrPoolClosed)
	}
	if wp := p.failed(); wp != nil {
		panic(wp)
	}

	p.cursor.reset()
	p.start.wait()
	p.end.wait()

	if wp := p.failed(); wp != nil {
		p.start.breakAll()
		p.end.breakAll()
		p.logger.Error().
			Int("worker", wp.Worker).
			Interface("panic", wp.Value).
			Uint64("generation", p.generation).
			Msg("pool worker panicked")
		panic(wp)
	}
	p.field.swap()
	p.generation++
}

// Close stops and joins every worker. It is safe to call more than once and
// returns the *WorkerPanic of a failed generation, if any.
func (p *Pool) Close() error {
	p.stepMu.Lock()
	defer p.stepMu.Unlock()
	if p.closed {
		return p.closeErr
	}
	p.closed = true

	if wp := p.failed(); wp != nil {
		p.start.breakAll()
		p.end.breakAll()
		p.wg.Wait()
		p.closeErr = wp
	} else {
		p.quit.Store(true)
		p.start.wait()
		p.wg.Wait()
	}
	p.logger.Debug().
		Uint64("generations", p.generation).
		Err(p.closeErr).
		Msg("pool stopped")
	return p.closeErr
}

// Generation reports how many generations the pool has completed.
func (p *Pool) Generation() uint64 {
	p.stepMu.Lock()
	defer p.stepMu.Unlock()
	return p.generation
}

// Running reports how many worker goroutines have not yet exited.
func (p *Pool) Running() int {
	return int(p.running.Load())
}

// States returns the current state of every worker.
func (p *Pool) States() []WorkerState {
	out := make([]WorkerState, len(p.states))
	for i := range p.states {
		out[i] = WorkerState(p.states[i].Load())
	}
	return out
}
