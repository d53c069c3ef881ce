package life

import "sync"

// barrier is a reusable rendezvous for a fixed number of parties. Each phase
// releases once every party has arrived; the phase counter lets a waiter
// distinguish its own release from a later one.
type barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	phase   uint64
	broken  bool
}

func newBarrier(parties int) *barrier {
	b := &barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// wait blocks until all parties have arrived. It returns false if the
// barrier is broken before the phase completes.
func (b *barrier) wait() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.broken {
		return false
	}
	phase := b.phase
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.phase++
		b.cond.Broadcast()
		return true
	}
	for phase == b.phase && !b.broken {
		b.cond.Wait()
	}
	return phase != b.phase
}

// breakAll releases every current and future waiter with a false result.
func (b *barrier) breakAll() {
	b.mu.Lock()
	b.broken = true
	b.cond.Broadcast()
	b.mu.Unlock()
}
