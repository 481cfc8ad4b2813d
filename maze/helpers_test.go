package maze

// scriptedSource replays fixed choices, falling back to index 0 and Up once
// a script runs out.
type scriptedSource struct {
	indexes    []int
	directions []Direction
}

func (source *scriptedSource) Index(n int) int {
	if len(source.indexes) == 0 {
		return 0
	}
	i := source.indexes[0]
	source.indexes = source.indexes[1:]
	return i % n
}

func (source *scriptedSource) Direction() Direction {
	if len(source.directions) == 0 {
		return Up
	}
	dir := source.directions[0]
	source.directions = source.directions[1:]
	return dir
}

func generated(width, height, cellSize uint, seed int64) *Maze {
	m := New(Options{Width: width, Height: height, CellSize: cellSize, Seed: seed})
	m.Generate()
	return m
}

func pathCells(m *Maze) map[Coord]struct{} {
	cells := make(map[Coord]struct{})
	for y := uint(0); y < m.GridHeight(); y++ {
		for x := uint(0); x < m.GridWidth(); x++ {
			if m.CellKind(Coord{x, y}) == Path {
				cells[Coord{x, y}] = struct{}{}
			}
		}
	}
	return cells
}
