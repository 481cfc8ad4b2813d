package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gomaze/config"
	"github.com/they4kman/gomaze/maze"
	"golang.org/x/image/colornames"
)

// cellSize is fixed for generated images.
const cellSize = maze.DefaultCellSize

func resolveSeed(seed int64) int64 {
	if seed < 0 {
		return maze.TimeSeed()
	}
	return seed
}

// generate builds and carves a maze from an already validated config.
func generate(cfg config.Config, logger logrus.FieldLogger) *maze.Maze {
	geometry, _ := config.ParseGeometry(cfg.Geometry)
	seed := resolveSeed(cfg.Seed)

	logger.WithFields(logrus.Fields{
		"geometry": geometry,
		"seed":     seed,
	}).Info("Generating maze")

	m := maze.New(maze.Options{
		Width:    geometry.Width,
		Height:   geometry.Height,
		CellSize: cellSize,
		Seed:     seed,
		Logger:   logger,
	})
	m.Generate()
	return m
}

// drawSolution overlays the route from the start to the farthest path cell.
func drawSolution(m *maze.Maze, cfg config.Config, logger logrus.FieldLogger) error {
	farthest, distance := m.Farthest()
	if distance < 0 {
		logger.Warn("Maze has no path cells; nothing to solve")
		return nil
	}

	route, err := m.Solve(farthest)
	if err != nil {
		return err
	}
	m.DrawRoute(route, colornames.Map[cfg.SolutionColor])

	logger.WithFields(logrus.Fields{
		"to":     farthest,
		"length": len(route),
	}).Debug("Drew solution")
	return nil
}
