package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size is a window or grid size written as WIDTHxHEIGHT.
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Set implements flag.Value.
func (s *Size) Set(v string) error {
	parsed, err := ParseSize(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSize parses "800x600".
func ParseSize(v string) (Size, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(v)), "x")
	if !ok {
		return Size{}, errors.New("missing height")
	}
	if ws == "" {
		return Size{}, errors.New("missing width")
	}
	width, err := strconv.Atoi(ws)
	if err != nil {
		return Size{}, fmt.Errorf("invalid width: %w", err)
	}
	height, err := strconv.Atoi(hs)
	if err != nil {
		return Size{}, fmt.Errorf("invalid height: %w", err)
	}
	if width <= 0 || height <= 0 {
		return Size{}, fmt.Errorf("size %dx%d must be positive", width, height)
	}
	return Size{Width: width, Height: height}, nil
}
