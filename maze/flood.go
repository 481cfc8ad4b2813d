package maze

import (
	"errors"
	"fmt"
	"github.com/gammazero/deque"
	"github.com/they4kman/gomaze/util/collections"
	"image/color"
)

var ErrUnreachable = errors.New("cell is not reachable from the start")

// Visitor is called once per reached cell with its distance, in steps, from
// the cell the flood started at.
type Visitor func(c Coord, distance int)

type floodItem struct {
	cell     Coord
	distance int
}

// Flood visits every path cell reachable from `from` through 4-adjacent path
// cells, in breadth-first order. Nothing is visited if `from` is not path.
func (m *Maze) Flood(from Coord, visit Visitor) {
	m.flood(from, visit)
}

// flood returns the breadth-first parent of every reached cell except from.
func (m *Maze) flood(from Coord, visit Visitor) map[Coord]Coord {
	parents := make(map[Coord]Coord)
	if m.CellKind(from) != Path {
		return parents
	}

	visited := collections.Set[Coord]{}
	visited.Add(from)

	var queue deque.Deque
	queue.PushBack(floodItem{cell: from})

	for queue.Len() > 0 {
		item := queue.PopFront().(floodItem)
		if visit != nil {
			visit(item.cell, item.distance)
		}

		for _, dir := range Directions {
			next, ok := m.Neighbor(item.cell, dir)
			if !ok || m.CellKind(next) != Path || visited.Contains(next) {
				continue
			}
			visited.Add(next)
			parents[next] = item.cell
			queue.PushBack(floodItem{cell: next, distance: item.distance + 1})
		}
	}

	return parents
}

// Count returns the number of cells of the given kind.
func (m *Maze) Count(kind CellKind) int {
	count := 0
	for _, cellKind := range m.cells {
		if cellKind == kind {
			count++
		}
	}
	return count
}

// Connected reports whether every path cell can be reached from (0, 0).
func (m *Maze) Connected() bool {
	reached := 0
	m.Flood(Coord{0, 0}, func(Coord, int) {
		reached++
	})
	return reached == m.Count(Path)
}

// Farthest returns the path cell with the greatest distance from the start,
// and that distance. Ties go to the cell reached first.
func (m *Maze) Farthest() (Coord, int) {
	var farthest Coord
	maxDistance := -1
	m.Flood(Coord{0, 0}, func(c Coord, distance int) {
		if distance > maxDistance {
			farthest, maxDistance = c, distance
		}
	})
	return farthest, maxDistance
}

// Solve returns a shortest route of path cells from (0, 0) to `to`, both ends
// included.
func (m *Maze) Solve(to Coord) ([]Coord, error) {
	start := Coord{0, 0}
	if m.CellKind(to) != Path || m.CellKind(start) != Path {
		return nil, fmt.Errorf("solving to %v: %w", to, ErrUnreachable)
	}

	parents := m.flood(start, nil)

	route := []Coord{to}
	for c := to; c != start; {
		parent, ok := parents[c]
		if !ok {
			return nil, fmt.Errorf("solving to %v: %w", to, ErrUnreachable)
		}
		route = append(route, parent)
		c = parent
	}

	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route, nil
}

// DrawRoute marks each cell of route on the raster with a dot of col, inset
// from the cell edges. Cell kinds are left alone.
func (m *Maze) DrawRoute(route []Coord, col color.Color) {
	for _, c := range route {
		if m.inBounds(c) {
			m.fillCell(c, col, m.cellSize/4)
		}
	}
}
