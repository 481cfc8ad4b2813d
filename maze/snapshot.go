package maze

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v2"
	"strings"
)

var ErrInvalidSnapshot = errors.New("invalid maze snapshot")

// Snapshot is the serializable form of a maze. Grid holds one row of cells
// per line: '.' for path, '#' for wall and '?' for undefined.
type Snapshot struct {
	Seed     int64  `yaml:"seed"`
	Width    uint   `yaml:"width"`
	Height   uint   `yaml:"height"`
	CellSize uint   `yaml:"cell_size"`
	Grid     string `yaml:"grid"`
}

var kindSymbols = map[CellKind]rune{
	Path:      '.',
	Wall:      '#',
	Undefined: '?',
}

func (m *Maze) Snapshot() *Snapshot {
	rows := make([]string, m.gridHeight)
	row := strings.Builder{}
	for y := uint(0); y < m.gridHeight; y++ {
		row.Reset()
		for x := uint(0); x < m.gridWidth; x++ {
			row.WriteRune(kindSymbols[m.CellKind(Coord{x, y})])
		}
		rows[y] = row.String()
	}

	return &Snapshot{
		Seed:     m.seed,
		Width:    m.width,
		Height:   m.height,
		CellSize: m.cellSize,
		Grid:     strings.Join(rows, "\n"),
	}
}

func (snapshot *Snapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// Maze rebuilds the maze the snapshot was taken of, raster included.
func (snapshot *Snapshot) Maze() (*Maze, error) {
	if snapshot.CellSize == 0 {
		return nil, fmt.Errorf("%w: cell size must be positive", ErrInvalidSnapshot)
	}
	if snapshot.Width > MaxDimension || snapshot.Height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels per side", ErrInvalidSnapshot, snapshot.Width, snapshot.Height, MaxDimension)
	}

	m := New(Options{
		Width:    snapshot.Width,
		Height:   snapshot.Height,
		CellSize: snapshot.CellSize,
		Seed:     snapshot.Seed,
	})

	// Rows of a zero-width grid are all empty, so only trailing newlines of
	// a grid with cells can be trimmed.
	grid := snapshot.Grid
	if m.gridWidth > 0 {
		grid = strings.TrimRight(grid, "\n")
	}
	var rows []string
	if m.gridHeight > 0 {
		rows = strings.Split(grid, "\n")
	}
	if uint(len(rows)) != m.gridHeight {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrInvalidSnapshot, len(rows), m.gridHeight)
	}

	for y, row := range rows {
		symbols := []rune(row)
		if uint(len(symbols)) != m.gridWidth {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSnapshot, y, len(symbols), m.gridWidth)
		}

		for x, symbol := range symbols {
			c := Coord{uint(x), uint(y)}
			switch symbol {
			case '.':
				m.paintCell(c, Path)
			case '#':
				m.paintCell(c, Wall)
			case '?':
			default:
				return nil, fmt.Errorf("%w: unknown cell %q at %v", ErrInvalidSnapshot, symbol, c)
			}
		}
	}

	m.generated = true
	return m, nil
}

func LoadSnapshot(in string) (*Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return &snapshot, nil
}
