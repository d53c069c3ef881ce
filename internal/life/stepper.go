package life

// Stepper computes one generation from curr into next. Implementations must
// not retain either slice after Step returns.
type Stepper interface {
	Step(curr, next []uint8, width, height int)
}

// Serial adapts StepSerial to Stepper.
type Serial struct{}

// Step calls StepSerial.
func (Serial) Step(curr, next []uint8, width, height int) {
	StepSerial(curr, next, width, height)
}

// Parallel adapts StepParallel to Stepper.
type Parallel struct {
	Threads int
}

// Step calls StepParallel with the adapter's settings.
func (p Parallel) Step(curr, next []uint8, width, height int) {
	StepParallel(curr, next, p.Threads, width, height)
}

// Tiled adapts StepTiled to Stepper.
type Tiled struct {
	Threads  int
	TileSize int
}

// Step calls StepTiled with the adapter's settings.
func (t Tiled) Step(curr, next []uint8, width, height int) {
	StepTiled(curr, next, t.Threads, t.TileSize, width, height)
}

// Workers adapts StepWorkers to Stepper.
type Workers struct {
	Threads   int
	ChunkSize int
}

// Step calls StepWorkers with the adapter's settings.
func (w Workers) Step(curr, next []uint8, width, height int) {
	StepWorkers(curr, next, w.Threads, w.ChunkSize, width, height)
}
