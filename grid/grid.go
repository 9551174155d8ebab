// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of states.
// It deep-copies the input so later changes to values do not leak in.
// Returns ErrEmptyGrid if values has no rows or no columns, ErrFormat if any
// row length differs, and ErrInvalidState for an unknown state.
// Complexity: O(rows×cols) time and memory.
func New(values [][]CellState) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	cells := make([][]CellState, rows)
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), cols, ErrFormat)
		}
		cells[r] = make([]CellState, cols)
		for c, s := range row {
			if !s.Valid() {
				return nil, fmt.Errorf("cell (%d,%d) = %d: %w", r, c, int(s), ErrInvalidState)
			}
			cells[r][c] = s
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// FromInts builds a Grid from raw file codes (0 Free, 5 Obstacle, 1 Path).
// Any other value is reported as ErrFormat.
func FromInts(values [][]int) (*Grid, error) {
	states := make([][]CellState, len(values))
	for r, row := range values {
		states[r] = make([]CellState, len(row))
		for c, v := range row {
			s := CellState(v)
			if !s.Valid() {
				return nil, fmt.Errorf("cell (%d,%d) = %d: %w", r, c, v, ErrFormat)
			}
			states[r][c] = s
		}
	}

	return New(states)
}

// Filled returns a rows×cols grid with every cell set to s.
func Filled(rows, cols int, s CellState) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if !s.Valid() {
		return nil, ErrInvalidState
	}
	cells := make([][]CellState, rows)
	for r := range cells {
		cells[r] = make([]CellState, cols)
		for c := range cells[r] {
			cells[r][c] = s
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Dimensions returns the number of rows and columns.
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// InBounds reports whether c lies within [0,rows)×[0,cols).
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// StateAt returns the state of cell c, or ErrOutOfBounds.
func (g *Grid) StateAt(c Coord) (CellState, error) {
	if !g.InBounds(c) {
		return Free, fmt.Errorf("%v in %dx%d grid: %w", c, g.rows, g.cols, ErrOutOfBounds)
	}

	return g.cells[c.Row][c.Col], nil
}

// SetState overwrites the state of cell c in place.
func (g *Grid) SetState(c Coord, s CellState) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%v in %dx%d grid: %w", c, g.rows, g.cols, ErrOutOfBounds)
	}
	if !s.Valid() {
		return fmt.Errorf("%d: %w", int(s), ErrInvalidState)
	}
	g.cells[c.Row][c.Col] = s

	return nil
}

// IsFree reports whether c is in bounds and Free.
func (g *Grid) IsFree(c Coord) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] == Free
}

// Neighbors returns the in-bounds cells reachable from c by one move in
// offsets, in the order of offsets. Cell states are not inspected.
func (g *Grid) Neighbors(c Coord, offsets []Offset) []Coord {
	out := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		if n := c.Add(d); g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// MarkPath sets every coordinate of path to Path. The grid is left untouched
// if any coordinate is out of bounds.
func (g *Grid) MarkPath(path []Coord) error {
	for _, c := range path {
		if !g.InBounds(c) {
			return fmt.Errorf("mark %v: %w", c, ErrOutOfBounds)
		}
	}
	for _, c := range path {
		g.cells[c.Row][c.Col] = Path
	}

	return nil
}

// Count returns the number of cells in state s.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v == s {
				n++
			}
		}
	}

	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([][]CellState, g.rows)
	for r, row := range g.cells {
		cells[r] = make([]CellState, g.cols)
		copy(cells[r], row)
	}

	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal reports whether g and o have the same dimensions and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != o.cells[r][c] {
				return false
			}
		}
	}

	return true
}

// String renders the grid in the text file format, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.cells {
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(int(v)))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
