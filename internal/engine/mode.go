package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects the stepping strategy.
type Mode int

const (
	Serial Mode = iota
	Parallel
	Tiled
	Workers
	Pool
	OpenCL
)

var modeNames = [...]string{
	Serial:   "serial",
	Parallel: "parallel",
	Tiled:    "tiled",
	Workers:  "workers",
	Pool:     "pool",
	OpenCL:   "opencl",
}

// Modes lists every mode in declaration order.
func Modes() []Mode {
	return []Mode{Serial, Parallel, Tiled, Workers, Pool, OpenCL}
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
	return modeNames[m]
}

// Set implements flag.Value.
func (m *Mode) Set(s string) error {
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseMode resolves a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range Modes() {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (want one of %s)", s, strings.Join(modeNames[:], ", "))
}

// Chunked reports whether the mode uses a chunk size.
func (m Mode) Chunked() bool {
	return m == Workers || m == Pool
}

// Threaded reports whether the mode uses more than one goroutine.
func (m Mode) Threaded() bool {
	return m != Serial && m != OpenCL
}
