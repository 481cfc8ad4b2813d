package maze

import "fmt"

// Coord addresses a logical cell. Frontier walls share the same space: a wall
// is just the undefined neighbor being considered.
type Coord struct {
	X, Y uint
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Neighbor returns the cell one step from c in dir, or false if that step
// would leave the grid.
func (m *Maze) Neighbor(c Coord, dir Direction) (Coord, bool) {
	switch dir {
	case Up:
		if c.Y == 0 {
			return Coord{}, false
		}
		return Coord{c.X, c.Y - 1}, true
	case Down:
		if c.Y+1 >= m.gridHeight {
			return Coord{}, false
		}
		return Coord{c.X, c.Y + 1}, true
	case Left:
		if c.X == 0 {
			return Coord{}, false
		}
		return Coord{c.X - 1, c.Y}, true
	case Right:
		if c.X+1 >= m.gridWidth {
			return Coord{}, false
		}
		return Coord{c.X + 1, c.Y}, true
	}
	return Coord{}, false
}

func (m *Maze) inBounds(c Coord) bool {
	return c.X < m.gridWidth && c.Y < m.gridHeight
}

func (m *Maze) index(c Coord) uint {
	return c.Y*m.gridWidth + c.X
}
