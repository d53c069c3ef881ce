package life

import "golang.org/x/sync/errgroup"

// band is a contiguous run of next-generation cells owned by one goroutine.
type band struct {
	start int
	cells []uint8
}

// partitionBands splits next into at most n disjoint bands of
// ceil(len(next)/n) cells. Trailing workers get nothing when n exceeds the
// cell count.
func partitionBands(next []uint8, n int) []band {
	total := len(next)
	per := (total + n - 1) / n
	bands := make([]band, 0, n)
	rest := next
	for id := 0; id < n; id++ {
		start := id * per
		if start >= total {
			break
		}
		end := min(start+per, total)
		bands = append(bands, band{start: start, cells: rest[:end-start]})
		rest = rest[end-start:]
	}
	return bands
}

// StepParallel writes the successor of curr into next using numThreads
// goroutines, each owning one contiguous band of next. The bands are carved
// out before any goroutine starts, so no locking is needed while computing.
//
// A panic in any goroutine is re-raised as a *WorkerPanic once all of them
// have finished; next is then only partially written.
func StepParallel(curr, next []uint8, numThreads, width, height int) {
	checkBuffers(curr, next, width, height)
	checkPositive("numThreads", numThreads)

	var g errgroup.Group
	for id, b := range partitionBands(next, numThreads) {
		g.Go(func() error {
			return guard(id, func() {
				for i := range b.cells {
					b.cells[i] = nextCell(curr, b.start+i, width, height)
				}
			})
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}
}

// StepTiled is StepParallel with row-tile banding: each goroutine owns whole
// rows, rounded up to a multiple of tileSize, and walks them one
// tileSize x tileSize tile at a time. The result is identical to StepSerial.
func StepTiled(curr, next []uint8, numThreads, tileSize, width, height int) {
	checkBuffers(curr, next, width, height)
	checkPositive("numThreads", numThreads)
	checkPositive("tileSize", tileSize)

	rowsPer := (height + numThreads - 1) / numThreads
	rowsPer = (rowsPer + tileSize - 1) / tileSize * tileSize

	var g errgroup.Group
	rest := next
	for id, y0 := 0, 0; y0 < height; id, y0 = id+1, y0+rowsPer {
		y1 := min(y0+rowsPer, height)
		rows := rest[:(y1-y0)*width]
		rest = rest[len(rows):]
		g.Go(func() error {
			return guard(id, func() {
				stepTiles(curr, rows, y0, y1, tileSize, width, height)
			})
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}
}

// stepTiles fills rows, which holds grid rows [y0, y1), tile by tile.
func stepTiles(curr, rows []uint8, y0, y1, tileSize, width, height int) {
	for ty := y0; ty < y1; ty += tileSize {
		tyEnd := min(ty+tileSize, y1)
		for tx := 0; tx < width; tx += tileSize {
			txEnd := min(tx+tileSize, width)
			for y := ty; y < tyEnd; y++ {
				src := y * width
				dst := (y - y0) * width
				for x := tx; x < txEnd; x++ {
					rows[dst+x] = AdvanceCell(curr[src+x], NeighborCount(curr, x, y, width, height))
				}
			}
		}
	}
}
