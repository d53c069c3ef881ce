package life

import (
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarrier_reusableAcrossPhases(t *testing.T) {
	const parties, phases = 5, 20
	b := newBarrier(parties)
	var arrived [phases]atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < parties; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for phase := 0; phase < phases; phase++ {
				arrived[phase].Add(1)
				assert.True(t, b.wait())
				// nobody leaves a phase before everyone has reached it
				assert.Equal(t, int32(parties), arrived[phase].Load())
			}
		}()
	}
	wg.Wait()
}

func TestBarrier_blocksUntilLastParty(t *testing.T) {
	b := newBarrier(2)
	released := make(chan bool)
	go func() { released <- b.wait() }()
	select {
	case <-released:
		t.Fatal(`released before the second party arrived`)
	case <-time.After(50 * time.Millisecond):
	}
	assert.True(t, b.wait())
	assert.True(t, <-released)
}

func TestBarrier_breakAll(t *testing.T) {
	b := newBarrier(3)
	results := make(chan bool, 2)
	for i := 0; i < 2; i++ {
		go func() { results <- b.wait() }()
	}
	time.Sleep(20 * time.Millisecond)
	b.breakAll()
	assert.False(t, <-results)
	assert.False(t, <-results)
	assert.False(t, b.wait(), "a broken barrier never blocks")
}

func TestJobCursor_claimsAreDisjointAndComplete(t *testing.T) {
	for _, chunk := range []int{1, 3, 64, 1000} {
		c := &jobCursor{total: 997, chunk: chunk}
		var mu sync.Mutex
		var ranges [][2]int
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for {
					start, end, ok := c.claim()
					if !ok {
						return
					}
					mu.Lock()
					ranges = append(ranges, [2]int{start, end})
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		sort.Slice(ranges, func(i, j int) bool { return ranges[i][0] < ranges[j][0] })
		next := 0
		for _, r := range ranges {
			require.Equal(t, next, r[0], "chunk=%d gap or overlap", chunk)
			require.LessOrEqual(t, r[1]-r[0], chunk)
			require.Greater(t, r[1], r[0])
			next = r[1]
		}
		require.Equal(t, 997, next, "chunk=%d", chunk)

		_, _, ok := c.claim()
		require.False(t, ok)
		c.reset()
		start, _, ok := c.claim()
		require.True(t, ok)
		require.Equal(t, 0, start)
	}
}
