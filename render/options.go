// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image/color"
)

// Sentinel errors for rendering.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to a renderer.
	ErrNilGrid = errors.New("render: grid is nil")

	// ErrOptionViolation indicates invalid Options (e.g. CellSize < 1).
	ErrOptionViolation = errors.New("render: invalid option supplied")
)

// Palette holds the colors used for every drawable element.
type Palette struct {
	Free     color.Color
	Obstacle color.Color
	Path     color.Color
	GridLine color.Color
	Start    color.Color
	Goal     color.Color
}

// Options controls the output geometry and colors.
//
// CellSize      – side of one cell in pixels; must be >= 1.
// ShowGridLines – outline every cell with Colors.GridLine.
// Colors        – element colors; nil entries fall back to the defaults.
type Options struct {
	CellSize      int
	ShowGridLines bool
	Colors        Palette
}

// DefaultPalette is white free space, black obstacles, green path, gray grid
// lines, a green start and a red goal.
func DefaultPalette() Palette {
	return Palette{
		Free:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Obstacle: color.RGBA{A: 255},
		Path:     color.RGBA{G: 255, A: 255},
		GridLine: color.RGBA{R: 128, G: 128, B: 128, A: 255},
		Start:    color.RGBA{G: 255, A: 255},
		Goal:     color.RGBA{R: 255, A: 255},
	}
}

// DefaultOptions returns 30-pixel cells with grid lines and DefaultPalette.
func DefaultOptions() Options {
	return Options{
		CellSize:      30,
		ShowGridLines: true,
		Colors:        DefaultPalette(),
	}
}

// normalize validates o and fills nil colors from DefaultPalette.
func (o Options) normalize() (Options, error) {
	if o.CellSize < 1 {
		return o, fmt.Errorf("%w: CellSize must be >= 1, got %d", ErrOptionViolation, o.CellSize)
	}
	def := DefaultPalette()
	fill := func(c *color.Color, d color.Color) {
		if *c == nil {
			*c = d
		}
	}
	fill(&o.Colors.Free, def.Free)
	fill(&o.Colors.Obstacle, def.Obstacle)
	fill(&o.Colors.Path, def.Path)
	fill(&o.Colors.GridLine, def.GridLine)
	fill(&o.Colors.Start, def.Start)
	fill(&o.Colors.Goal, def.Goal)

	return o, nil
}

// gifPalette lists the palette entries as a color.Palette, free color first
// so it becomes the GIF background.
func (p Palette) gifPalette() color.Palette {
	return color.Palette{p.Free, p.Obstacle, p.Path, p.GridLine, p.Start, p.Goal}
}
