//go:build !headless

package cmd

import (
	"fmt"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gomaze/config"
	"golang.org/x/image/colornames"
	"math/rand"
)

// showWindow must be called from the main goroutine.
func showWindow(cfg config.Config, logger logrus.FieldLogger) error {
	var runErr error
	pixelgl.Run(func() {
		runErr = runWindow(cfg, logger)
	})
	return runErr
}

func runWindow(cfg config.Config, logger logrus.FieldLogger) error {
	geometry, _ := config.ParseGeometry(cfg.Geometry)

	winCfg := pixelgl.WindowConfig{
		Title:  "gomaze",
		Bounds: pixel.R(0, 0, float64(geometry.Width), float64(geometry.Height)),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(winCfg)
	if err != nil {
		return fmt.Errorf("opening window: %w", err)
	}
	defer win.Destroy()

	seeds := rand.New(rand.NewSource(cfg.Seed))
	showSolution := false

	var sprite *pixel.Sprite
	render := func() error {
		m := generate(cfg, logger)
		if showSolution {
			if err := drawSolution(m, cfg, logger); err != nil {
				return err
			}
		}

		picture := pixel.PictureDataFromImage(m.Image())
		sprite = pixel.NewSprite(picture, picture.Bounds())
		win.SetTitle(fmt.Sprintf("%s | seed %d", winCfg.Title, cfg.Seed))
		return nil
	}

	if err := render(); err != nil {
		return err
	}

	for !win.Closed() {
		switch {
		case win.JustPressed(pixelgl.KeyEscape):
			win.SetClosed(true)
			continue
		case win.JustPressed(pixelgl.KeyEnter):
			cfg.Seed = seeds.Int63()
			if err := render(); err != nil {
				return err
			}
		case win.JustPressed(pixelgl.KeyS):
			showSolution = !showSolution
			if err := render(); err != nil {
				return err
			}
		}

		win.Clear(colornames.Black)
		sprite.Draw(win, pixel.IM.Moved(win.Bounds().Center()))
		win.Update()
	}

	return nil
}
