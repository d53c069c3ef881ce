package seed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"automata/internal/life"
)

var (
	// ErrMissingHeader means no "x = N, y = M" line was found.
	ErrMissingHeader = errors.New("seed: missing RLE header")

	// ErrInvalidHeader means the header lacked a parsable x or y.
	ErrInvalidHeader = errors.New("seed: invalid RLE header")

	// ErrPatternTooLarge means the pattern does not fit the target grid.
	ErrPatternTooLarge = errors.New("seed: pattern too large for grid")
)

// ParseRLE decodes a run-length encoded pattern. Comment lines starting with
// '#' are skipped; the first line containing x, y and '=' is the header and
// everything after it is payload up to '!'. Unknown payload characters are
// ignored.
func ParseRLE(r io.Reader) (Pattern, error) {
	var (
		header  string
		payload strings.Builder
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if header == "" && strings.Contains(line, "x") && strings.Contains(line, "y") && strings.Contains(line, "=") {
			header = line
			continue
		}
		payload.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return Pattern{}, fmt.Errorf("reading RLE: %w", err)
	}
	if header == "" {
		return Pattern{}, ErrMissingHeader
	}
	width, okX := headerValue(header, "x")
	height, okY := headerValue(header, "y")
	if !okX || !okY {
		return Pattern{}, fmt.Errorf("%w: %q", ErrInvalidHeader, header)
	}

	p := Pattern{Width: width, Height: height}
	x, y, run := 0, 0, 0
decode:
	for _, ch := range payload.String() {
		switch {
		case ch >= '0' && ch <= '9':
			run = run*10 + int(ch-'0')
		case ch == 'b':
			x += max(run, 1)
			run = 0
		case ch == 'o':
			for n := max(run, 1); n > 0; n-- {
				p.Cells = append(p.Cells, Point{x, y})
				x++
			}
			run = 0
		case ch == '$':
			y += max(run, 1)
			x = 0
			run = 0
		case ch == '!':
			break decode
		}
	}
	return p, nil
}

// headerValue extracts the integer following "key =" in an RLE header such
// as "x = 398, y = 405, rule = B3/S23".
func headerValue(header, key string) (int, bool) {
	for _, field := range strings.Split(header, ",") {
		name, value, ok := strings.Cut(field, "=")
		if !ok || strings.TrimSpace(name) != key {
			continue
		}
		value = strings.TrimSpace(value)
		end := 0
		for end < len(value) && value[end] >= '0' && value[end] <= '9' {
			end++
		}
		n, err := strconv.Atoi(value[:end])
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// MustParseRLE is ParseRLE for patterns compiled into the binary.
func MustParseRLE(s string) Pattern {
	p, err := ParseRLE(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return p
}

// LoadRLE clears grid and writes the pattern read from r centred in it.
// Cells that fall outside the grid are dropped.
func LoadRLE(r io.Reader, grid []uint8, width, height int) error {
	p, err := ParseRLE(r)
	if err != nil {
		return err
	}
	if p.Width > width || p.Height > height {
		return fmt.Errorf("%w: pattern %dx%d, grid %dx%d", ErrPatternTooLarge, p.Width, p.Height, width, height)
	}
	clear(grid)
	ox, oy := width/2-p.Width/2, height/2-p.Height/2
	for _, c := range p.Cells {
		gx, gy := ox+c.X, oy+c.Y
		if gx < 0 || gx >= width || gy < 0 || gy >= height {
			continue
		}
		grid[life.Index(gx, gy, width)] = life.Alive
	}
	return nil
}

// LoadRLEFile is LoadRLE reading from path.
func LoadRLEFile(path string, grid []uint8, width, height int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := LoadRLE(f, grid, width, height); err != nil {
		return fmt.Errorf("loading %q: %w", path, err)
	}
	return nil
}
