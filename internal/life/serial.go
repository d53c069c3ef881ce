package life

// StepSerial writes the successor of curr into next, visiting cells
// left-to-right, top-to-bottom. It is the reference every other stepper is
// checked against.
func StepSerial(curr, next []uint8, width, height int) {
	checkBuffers(curr, next, width, height)
	for y := 0; y < height; y++ {
		base := y * width
		for x := 0; x < width; x++ {
			next[base+x] = AdvanceCell(curr[base+x], NeighborCount(curr, x, y, width, height))
		}
	}
}
