package maze

import (
	"errors"
	"fmt"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrImageWrite = errors.New("could not write image")

type encoder func(io.Writer, image.Image) error

var encoders = map[string]encoder{
	".png": png.Encode,
	".jpg": func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	},
	".gif": func(w io.Writer, img image.Image) error {
		return gif.Encode(w, img, nil)
	},
	".bmp": bmp.Encode,
	".tif": func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	},
}

func init() {
	encoders[".jpeg"] = encoders[".jpg"]
	encoders[".tiff"] = encoders[".tif"]
}

// Save encodes img to path, in the format implied by its extension.
func Save(img image.Image, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	encode, ok := encoders[ext]
	if !ok {
		return fmt.Errorf("%w %s: unsupported extension %q", ErrImageWrite, path, ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImageWrite, err)
	}

	if err := encode(file, img); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("%w %s: %v", ErrImageWrite, path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrImageWrite, err)
	}
	return nil
}

// Save writes the maze raster to path.
func (m *Maze) Save(path string) error {
	return Save(m.img, path)
}
