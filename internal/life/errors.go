package life

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	// ErrPoolClosed is the panic value of Step on a closed Pool.
	ErrPoolClosed = errors.New("life: pool is closed")

	// ErrOpenCLUnavailable is returned by NewOpenCL when the binary was built
	// without the opencl tag or no device could be found.
	ErrOpenCLUnavailable = errors.New("life: OpenCL stepper unavailable")
)

// WorkerPanic records a panic recovered from a worker goroutine. It is
// re-panicked in the goroutine that called the step function, so the
// generation being computed must be discarded.
type WorkerPanic struct {
	Worker int
	Value  any
	Stack  []byte
}

func (p *WorkerPanic) Error() string {
	return fmt.Sprintf("life: worker %d panicked: %v", p.Worker, p.Value)
}

// Unwrap exposes the recovered value when it was an error.
func (p *WorkerPanic) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}

// guard runs fn and converts a panic into a *WorkerPanic.
func guard(worker int, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &WorkerPanic{Worker: worker, Value: r, Stack: debug.Stack()}
		}
	}()
	fn()
	return nil
}
