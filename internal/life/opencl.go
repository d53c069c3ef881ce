//go:build opencl

package life

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// OpenCL steps the grid on an OpenCL device, one work item per cell.
type OpenCL struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	currBuf    *cl.MemObject
	nextBuf    *cl.MemObject
	width      int
	height     int
	deviceName string
}

const lifeKernelSource = `__kernel void life_step(
    const int width,
    const int height,
    __global const uchar* curr,
    __global uchar* next_buffer)
{
    int idx = get_global_id(0);
    if (idx >= width * height) {
        return;
    }
    int x = idx % width;
    int y = idx / width;
    int n = 0;
    for (int dy = -1; dy <= 1; dy++) {
        int ny = (y + dy + height) % height;
        for (int dx = -1; dx <= 1; dx++) {
            if (dx == 0 && dy == 0) {
                continue;
            }
            int nx = (x + dx + width) % width;
            n += curr[ny * width + nx];
        }
    }
    uchar c = curr[idx];
    next_buffer[idx] = (n == 3 || (c == 1 && n == 2)) ? 1 : 0;
}`

// pickDevice prefers the first GPU of any platform and falls back to a CPU
// device.
func pickDevice(platforms []*cl.Platform) *cl.Device {
	for _, kind := range []cl.DeviceType{cl.DeviceTypeGPU, cl.DeviceTypeCPU} {
		for _, p := range platforms {
			devices, err := p.GetDevices(kind)
			if err != nil && err != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				return devices[0]
			}
		}
	}
	return nil
}

// NewOpenCL compiles the life kernel and allocates device buffers for a
// width x height grid.
func NewOpenCL(width, height int) (*OpenCL, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", width, height)
	}
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrOpenCLUnavailable, msg, err)
	}
	device := pickDevice(platforms)
	if device == nil {
		return nil, fmt.Errorf("%w: no suitable OpenCL devices found", ErrOpenCLUnavailable)
	}

	s := &OpenCL{width: width, height: height, deviceName: device.Name()}
	if s.context, err = cl.CreateContext([]*cl.Device{device}); err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	if s.queue, err = s.context.CreateCommandQueue(device, 0); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	if s.program, err = s.context.CreateProgramWithSource([]string{lifeKernelSource}); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := s.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		s.Close()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	if s.kernel, err = s.program.CreateKernel("life_step"); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}
	size := width * height
	if s.currBuf, err = s.context.CreateEmptyBuffer(cl.MemReadOnly, size); err != nil {
		s.Close()
		return nil, fmt.Errorf("allocating current buffer: %w", err)
	}
	if s.nextBuf, err = s.context.CreateEmptyBuffer(cl.MemWriteOnly, size); err != nil {
		s.Close()
		return nil, fmt.Errorf("allocating next buffer: %w", err)
	}
	if err := s.kernel.SetArgs(int32(width), int32(height), s.currBuf, s.nextBuf); err != nil {
		s.Close()
		return nil, fmt.Errorf("setting kernel arguments: %w", err)
	}
	return s, nil
}

// Step uploads curr, runs the kernel and reads the result back into next.
func (s *OpenCL) Step(curr, next []uint8) error {
	checkBuffers(curr, next, s.width, s.height)
	size := len(curr)
	if _, err := s.queue.EnqueueWriteBuffer(s.currBuf, false, 0, size, unsafe.Pointer(&curr[0]), nil); err != nil {
		return fmt.Errorf("writing current buffer: %w", err)
	}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, []int{size}, nil, nil); err != nil {
		return fmt.Errorf("enqueueing kernel: %w", err)
	}
	if _, err := s.queue.EnqueueReadBuffer(s.nextBuf, true, 0, size, unsafe.Pointer(&next[0]), nil); err != nil {
		return fmt.Errorf("reading next buffer: %w", err)
	}
	return nil
}

// Close releases every device object. It is safe on a partially built value.
func (s *OpenCL) Close() {
	if s.nextBuf != nil {
		s.nextBuf.Release()
		s.nextBuf = nil
	}
	if s.currBuf != nil {
		s.currBuf.Release()
		s.currBuf = nil
	}
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}

// DeviceName reports the device the kernel runs on.
func (s *OpenCL) DeviceName() string {
	return s.deviceName
}
