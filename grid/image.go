// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // register PNG decoder
	"io"
	"io/fs"
	"os"

	_ "github.com/jbuchbinder/gopnm" // register PGM/PPM/PBM decoders
)

// DefaultImageThreshold separates occupied from free pixels in an occupancy
// image: gray levels strictly below it become Obstacle.
const DefaultImageThreshold uint8 = 128

// LoadImage builds a Grid from an occupancy image (PGM as used by ROS map
// servers, or PNG). Each pixel becomes one cell: image row y is grid row y.
// Pixels darker than threshold are Obstacle, all others Free.
//
// Errors: ErrNotFound if path does not exist, ErrFormat if it cannot be decoded.
func LoadImage(path string, threshold uint8) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("grid: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := DecodeImage(f, threshold)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// DecodeImage is the reader form of LoadImage.
func DecodeImage(r io.Reader, threshold uint8) (*Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %v: %w", err, ErrFormat)
	}

	return FromImage(img, threshold)
}

// FromImage converts an already decoded image into a Grid.
func FromImage(img image.Image, threshold uint8) (*Grid, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([][]CellState, b.Dy())
	for y := 0; y < b.Dy(); y++ {
		cells[y] = make([]CellState, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			gray := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray).Y
			if gray < threshold {
				cells[y][x] = Obstacle
			}
		}
	}

	return &Grid{rows: b.Dy(), cols: b.Dx(), cells: cells}, nil
}
