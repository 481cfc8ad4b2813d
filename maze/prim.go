package maze

import "github.com/sirupsen/logrus"

// Generate carves the maze with a randomized variant of Prim's algorithm.
//
// The start cell (0, 0) becomes path and its undefined neighbors become walls
// on the frontier. Until the frontier is empty, a uniformly random wall is
// removed from it and a uniformly random direction is tried from that wall.
// If the cell in that direction is still undefined, its own undefined
// neighbors join the frontier and both it and the wall become path.
// Otherwise the wall is dropped and stays a wall for good.
//
// Unlike classical Prim's, a wall only gets a single attempt, and nothing is
// weighted by distance from the start. Walls near the start tend to be
// resolved first, which gives long corridors winding out from the origin.
//
// Generate runs once; later calls return the first run's stats.
func (m *Maze) Generate() Stats {
	if m.generated {
		return m.stats
	}
	m.generated = true

	if m.gridWidth == 0 || m.gridHeight == 0 {
		m.logStats()
		return m.stats
	}

	start := Coord{0, 0}
	m.paintCell(start, Path)
	m.addWallsAround(start)

	for len(m.frontier) > 0 {
		m.stats.Iterations++

		wall := m.popRandomWall()
		next, ok := m.Neighbor(wall, m.source.Direction())
		if !ok {
			m.stats.Misses++
			continue
		}
		if m.CellKind(next) != Undefined {
			m.stats.Dropped++
			continue
		}

		m.addWallsAround(next)
		m.paintCell(next, Path)
		m.paintCell(wall, Path)

		m.passages = append(m.passages, Passage{Wall: wall, Cell: next})
		m.stats.Carved++
	}

	m.logStats()
	return m.stats
}

// addWallsAround marks every undefined in-bounds neighbor of c as a wall and
// pushes it onto the frontier. A cell is only ever pushed while undefined, so
// it lands on the frontier at most once.
func (m *Maze) addWallsAround(c Coord) {
	for _, dir := range Directions {
		wall, ok := m.Neighbor(c, dir)
		if !ok || m.CellKind(wall) != Undefined {
			continue
		}
		m.paintCell(wall, Wall)
		m.frontier = append(m.frontier, wall)
	}

	if len(m.frontier) > m.stats.FrontierPeak {
		m.stats.FrontierPeak = len(m.frontier)
	}
}

// popRandomWall swap-removes a uniformly chosen frontier entry.
func (m *Maze) popRandomWall() Coord {
	last := len(m.frontier) - 1
	i := m.source.Index(len(m.frontier))

	wall := m.frontier[i]
	m.frontier[i] = m.frontier[last]
	m.frontier = m.frontier[:last]

	return wall
}

func (m *Maze) logStats() {
	m.logger.WithFields(logrus.Fields{
		"grid_width":    m.gridWidth,
		"grid_height":   m.gridHeight,
		"seed":          m.seed,
		"iterations":    m.stats.Iterations,
		"misses":        m.stats.Misses,
		"dropped":       m.stats.Dropped,
		"carved":        m.stats.Carved,
		"frontier_peak": m.stats.FrontierPeak,
	}).Debug("Generated maze")
}
