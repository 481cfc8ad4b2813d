package maze

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
	"testing"
)

func adjacent(a, b Coord) bool {
	dx := int(a.X) - int(b.X)
	dy := int(a.Y) - int(b.Y)
	return dx*dx+dy*dy == 1
}

func TestFloodVisitsInDistanceOrder(t *testing.T) {
	m := generated(80, 60, 4, 21)

	last := 0
	visited := 0
	m.Flood(Coord{0, 0}, func(c Coord, distance int) {
		assert.Equal(t, Path, m.CellKind(c))
		assert.GreaterOrEqual(t, distance, last)
		last = distance
		visited++
	})
	assert.Equal(t, m.Count(Path), visited)
}

func TestFloodFromNonPath(t *testing.T) {
	m := generated(80, 60, 4, 21)

	called := false
	m.Flood(Coord{500, 500}, func(Coord, int) { called = true })
	assert.False(t, called)
}

func TestSolveToFarthest(t *testing.T) {
	m := generated(120, 80, 4, 3)

	farthest, distance := m.Farthest()
	route, err := m.Solve(farthest)
	require.NoError(t, err)

	require.Len(t, route, distance+1)
	assert.Equal(t, Coord{0, 0}, route[0])
	assert.Equal(t, farthest, route[len(route)-1])
	for i, c := range route {
		assert.Equal(t, Path, m.CellKind(c))
		if i > 0 {
			assert.True(t, adjacent(route[i-1], c), "%v -> %v", route[i-1], c)
		}
	}
}

func TestSolveStart(t *testing.T) {
	m := generated(4, 4, 4, 1)

	route, err := m.Solve(Coord{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []Coord{{0, 0}}, route)

	farthest, distance := m.Farthest()
	assert.Equal(t, Coord{0, 0}, farthest)
	assert.Equal(t, 0, distance)
}

func TestSolveUnreachable(t *testing.T) {
	snapshot := &Snapshot{
		Width:    16,
		Height:   4,
		CellSize: 4,
		Grid:     "..#.",
	}
	m, err := snapshot.Maze()
	require.NoError(t, err)

	assert.False(t, m.Connected())

	_, err = m.Solve(Coord{3, 0})
	assert.ErrorIs(t, err, ErrUnreachable)

	_, err = m.Solve(Coord{2, 0})
	assert.ErrorIs(t, err, ErrUnreachable)

	route, err := m.Solve(Coord{1, 0})
	require.NoError(t, err)
	assert.Equal(t, []Coord{{0, 0}, {1, 0}}, route)
}

func TestDrawRoute(t *testing.T) {
	m := generated(120, 80, 4, 3)
	farthest, _ := m.Farthest()
	route, err := m.Solve(farthest)
	require.NoError(t, err)

	m.DrawRoute(route, colornames.Crimson)

	img := m.Image()
	for _, c := range route {
		x, y := int(c.X*4), int(c.Y*4)
		assert.Equal(t, PathColor, img.RGBAAt(x, y), "cell corner stays path colored")
		assert.Equal(t, colornames.Crimson, img.RGBAAt(x+1, y+1))
		assert.Equal(t, colornames.Crimson, img.RGBAAt(x+2, y+2))
		assert.Equal(t, Path, m.CellKind(c))
	}
}
