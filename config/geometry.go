package config

import (
	"errors"
	"fmt"
	"github.com/they4kman/gomaze/maze"
	"strconv"
	"strings"
)

var ErrInvalidGeometry = errors.New("invalid geometry")

// Geometry is an image size in pixels, written WIDTHxHEIGHT.
type Geometry struct {
	Width, Height uint
}

func (geometry Geometry) String() string {
	return fmt.Sprintf("%dx%d", geometry.Width, geometry.Height)
}

// ParseGeometry accepts exactly two positive decimal integers separated by
// an 'x', such as "100x100". Neither may exceed maze.MaxDimension.
func ParseGeometry(s string) (Geometry, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return Geometry{}, fmt.Errorf("%w %q: want WIDTHxHEIGHT", ErrInvalidGeometry, s)
	}

	var dims [2]uint
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil || n == 0 {
			return Geometry{}, fmt.Errorf("%w %q: %q is not a positive integer", ErrInvalidGeometry, s, part)
		}
		if n > maze.MaxDimension {
			return Geometry{}, fmt.Errorf("%w %q: %d exceeds %d pixels", ErrInvalidGeometry, s, n, maze.MaxDimension)
		}
		dims[i] = uint(n)
	}

	return Geometry{Width: dims[0], Height: dims[1]}, nil
}
