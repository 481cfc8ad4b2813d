package maze

import (
	"fmt"
	"image/color"
)

type CellKind int

const (
	Undefined CellKind = iota
	Path
	Wall
)

var CellKinds = []CellKind{
	Undefined,
	Path,
	Wall,
}

func (kind CellKind) String() string {
	switch kind {
	case Undefined:
		return "undefined"
	case Path:
		return "path"
	case Wall:
		return "wall"
	}
	return fmt.Sprintf("CellKind(%d)", int(kind))
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var Directions = []Direction{
	Up,
	Down,
	Left,
	Right,
}

func (dir Direction) String() string {
	switch dir {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(dir))
}

const (
	DefaultCellSize = 4

	// MaxDimension bounds the image width and height, in pixels.
	MaxDimension = 1 << 14
)

var (
	PathColor = color.RGBA{R: 253, G: 246, B: 227, A: 255}
	WallColor = color.RGBA{R: 7, G: 54, B: 66, A: 255}
)
