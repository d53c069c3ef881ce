package main

// Window, timing and stepping defaults. The window includes the status strip,
// so the grid is statusHeight rows shorter than the window.
const (
	defaultWidth, defaultHeight = 800, 600
	statusHeight                = 12
	targetTPS                   = 240

	defaultGenerationsPerFrame = 1
	generationsPerFrameStep    = 1
	minGenerationsPerFrame     = 1
	maxGenerationsPerFrame     = 64

	defaultChunkSize  = 256
	defaultTileSize   = 32
	defaultRandomSeed = 0xDEADBEEF

	windowTitle = "Game of Life"
)

var (
	aliveColour = [4]byte{0xff, 0xff, 0xff, 0xff}
	deadColour  = [4]byte{0x00, 0x00, 0x00, 0xff}
)
