package maze

import (
	"github.com/sirupsen/logrus"
	"image"
	"image/color"
	"image/draw"
	"io"
)

type Options struct {
	Width, Height uint // in pixels
	CellSize      uint // pixels per cell side; DefaultCellSize if zero

	// Seed for the default Source. Ignored when Source is set.
	Seed int64
	// Source of random choices. Defaults to NewSource(Seed).
	Source Source

	Logger logrus.FieldLogger
}

// Passage records one successful growth step: the frontier wall that was
// opened and the undefined cell it was joined to.
type Passage struct {
	Wall Coord
	Cell Coord
}

type Stats struct {
	Iterations   int // frontier pops
	Misses       int // random direction stepped off the grid
	Dropped      int // random direction hit an already resolved cell
	Carved       int // steps that turned a wall and a cell into path
	FrontierPeak int
}

// Maze is a grid of cells overlaid on an RGBA raster. Cell state lives in an
// explicit grid; the raster is repainted whenever a cell changes.
type Maze struct {
	width, height         uint // in pixels
	cellSize              uint
	gridWidth, gridHeight uint // in number of cells

	cells []CellKind
	img   *image.RGBA

	seed     int64
	source   Source
	frontier []Coord
	passages []Passage

	generated bool
	stats     Stats

	logger logrus.FieldLogger
}

// New allocates the grid and its raster, and paints the strips on the right
// and bottom that are too narrow to hold a whole cell as wall.
func New(options Options) *Maze {
	cellSize := options.CellSize
	if cellSize == 0 {
		cellSize = DefaultCellSize
	}

	source := options.Source
	if source == nil {
		source = NewSource(options.Seed)
	}

	logger := options.Logger
	if logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		logger = discard
	}

	maze := &Maze{
		width:      options.Width,
		height:     options.Height,
		cellSize:   cellSize,
		gridWidth:  options.Width / cellSize,
		gridHeight: options.Height / cellSize,
		img:        image.NewRGBA(image.Rect(0, 0, int(options.Width), int(options.Height))),
		seed:       options.Seed,
		source:     source,
		logger:     logger,
	}
	maze.cells = make([]CellKind, maze.gridWidth*maze.gridHeight)

	maze.paintBorders()

	return maze
}

func (m *Maze) Width() uint      { return m.width }
func (m *Maze) Height() uint     { return m.height }
func (m *Maze) CellSize() uint   { return m.cellSize }
func (m *Maze) GridWidth() uint  { return m.gridWidth }
func (m *Maze) GridHeight() uint { return m.gridHeight }
func (m *Maze) Seed() int64      { return m.seed }
func (m *Maze) Stats() Stats     { return m.stats }

// Image returns the raster. It is only meant to be read once Generate has
// returned.
func (m *Maze) Image() *image.RGBA {
	return m.img
}

// Passages returns the growth steps taken by Generate, in order.
func (m *Maze) Passages() []Passage {
	return m.passages
}

// CellKind reports the state of c. Coordinates outside the grid are
// Undefined.
func (m *Maze) CellKind(c Coord) CellKind {
	if !m.inBounds(c) {
		return Undefined
	}
	return m.cells[m.index(c)]
}

func (m *Maze) paintBorders() {
	right := int(m.gridWidth * m.cellSize)
	bottom := int(m.gridHeight * m.cellSize)
	wall := image.NewUniform(WallColor)

	if right < int(m.width) {
		draw.Draw(m.img, image.Rect(right, 0, int(m.width), int(m.height)), wall, image.Point{}, draw.Src)
	}
	if bottom < int(m.height) {
		draw.Draw(m.img, image.Rect(0, bottom, int(m.width), int(m.height)), wall, image.Point{}, draw.Src)
	}
}

// paintCell sets the state of c, which must be inside the grid, and fills its
// block of the raster to match.
func (m *Maze) paintCell(c Coord, kind CellKind) {
	m.cells[m.index(c)] = kind

	var col color.RGBA
	switch kind {
	case Path:
		col = PathColor
	case Wall:
		col = WallColor
	}
	m.fillCell(c, col, 0)
}

// fillCell paints the block of c with col, leaving inset pixels untouched
// on every side.
func (m *Maze) fillCell(c Coord, col color.Color, inset uint) {
	if 2*inset >= m.cellSize {
		inset = 0
	}
	x0 := int(c.X*m.cellSize + inset)
	y0 := int(c.Y*m.cellSize + inset)
	x1 := int((c.X+1)*m.cellSize - inset)
	y1 := int((c.Y+1)*m.cellSize - inset)
	draw.Draw(m.img, image.Rect(x0, y0, x1, y1), image.NewUniform(col), image.Point{}, draw.Src)
}
