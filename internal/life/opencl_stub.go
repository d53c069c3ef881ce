//go:build !opencl

package life

import "fmt"

// OpenCL is unavailable in builds without the opencl tag.
type OpenCL struct{}

func NewOpenCL(width, height int) (*OpenCL, error) {
	return nil, fmt.Errorf("%w: rebuild with -tags opencl", ErrOpenCLUnavailable)
}

func (s *OpenCL) Step(curr, next []uint8) error { return ErrOpenCLUnavailable }

func (s *OpenCL) Close() {}

func (s *OpenCL) DeviceName() string { return "" }
