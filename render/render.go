// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"time"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridpath/grid"
)

// Image draws g with path overlaid and start/goal highlighted.
// Coordinates outside g are ignored. g is never modified.
func Image(g *grid.Grid, path []grid.Coord, start, goal grid.Coord, opts Options) (image.Image, error) {
	dc, err := paint(g, path, start, goal, opts)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// PNG encodes the Image output as PNG to w.
func PNG(w io.Writer, g *grid.Grid, path []grid.Coord, start, goal grid.Coord, opts Options) error {
	dc, err := paint(g, path, start, goal, opts)
	if err != nil {
		return err
	}
	if err = dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}

	return nil
}

// Frames returns one image per path prefix: frame i shows path[:i+1]. With an
// empty path a single frame of the bare grid is returned.
func Frames(g *grid.Grid, path []grid.Coord, start, goal grid.Coord, opts Options) ([]image.Image, error) {
	if len(path) == 0 {
		img, err := Image(g, nil, start, goal, opts)
		if err != nil {
			return nil, err
		}
		return []image.Image{img}, nil
	}

	frames := make([]image.Image, 0, len(path))
	for i := range path {
		img, err := Image(g, path[:i+1], start, goal, opts)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}

	return frames, nil
}

// GIF writes an animated GIF that draws path one cell per frame. delay is the
// pause between frames, rounded down to 10ms with a minimum of 10ms.
func GIF(w io.Writer, g *grid.Grid, path []grid.Coord, start, goal grid.Coord, opts Options, delay time.Duration) error {
	o, err := opts.normalize()
	if err != nil {
		return err
	}
	frames, err := Frames(g, path, start, goal, o)
	if err != nil {
		return err
	}

	cs := int(delay / (10 * time.Millisecond))
	if cs < 1 {
		cs = 1
	}
	pal := o.Colors.gifPalette()
	anim := &gif.GIF{
		Image: make([]*image.Paletted, 0, len(frames)),
		Delay: make([]int, 0, len(frames)),
	}
	for _, f := range frames {
		anim.Image = append(anim.Image, toPaletted(f, pal))
		anim.Delay = append(anim.Delay, cs)
	}
	if err = gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("render: encode gif: %w", err)
	}

	return nil
}

// toPaletted maps img onto pal using nearest-color lookup.
func toPaletted(img image.Image, pal color.Palette) *image.Paletted {
	b := img.Bounds()
	pm := image.NewPaletted(b, pal)
	draw.Draw(pm, b, img, b.Min, draw.Src)

	return pm
}

// paint renders into a fresh gg context in four layers: cell states, path,
// endpoints, grid lines.
func paint(g *grid.Grid, path []grid.Coord, start, goal grid.Coord, opts Options) (*gg.Context, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	rows, cols := g.Dimensions()
	size := o.CellSize
	dc := gg.NewContext(cols*size, rows*size)
	dc.SetColor(o.Colors.Free)
	dc.Clear()

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			s, _ := g.StateAt(grid.C(r, c))
			switch s {
			case grid.Obstacle:
				fillCell(dc, grid.C(r, c), size, o.Colors.Obstacle)
			case grid.Path:
				fillCell(dc, grid.C(r, c), size, o.Colors.Path)
			}
		}
	}

	for _, p := range path {
		if g.InBounds(p) {
			fillCell(dc, p, size, o.Colors.Path)
		}
	}
	if g.InBounds(start) {
		fillCell(dc, start, size, o.Colors.Start)
	}
	if g.InBounds(goal) {
		fillCell(dc, goal, size, o.Colors.Goal)
	}

	if o.ShowGridLines {
		drawGridLines(dc, rows, cols, size, o.Colors.GridLine)
	}

	return dc, nil
}

func fillCell(dc *gg.Context, c grid.Coord, size int, col color.Color) {
	dc.SetColor(col)
	dc.DrawRectangle(float64(c.Col*size), float64(c.Row*size), float64(size), float64(size))
	dc.Fill()
}

// drawGridLines strokes 1px lines on the first pixel row and column of every
// cell plus the closing right and bottom borders.
func drawGridLines(dc *gg.Context, rows, cols, size int, col color.Color) {
	w, h := float64(cols*size), float64(rows*size)
	dc.SetColor(col)
	dc.SetLineWidth(1)
	for c := 0; c <= cols; c++ {
		x := float64(c*size) + 0.5
		if c == cols {
			x = w - 0.5
		}
		dc.DrawLine(x, 0, x, h)
	}
	for r := 0; r <= rows; r++ {
		y := float64(r*size) + 0.5
		if r == rows {
			y = h - 0.5
		}
		dc.DrawLine(0, y, w, y)
	}
	dc.Stroke()
}
