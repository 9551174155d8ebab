// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// CellState is the occupancy of a single cell. Its numeric value equals the
// integer used for the cell in the text grid format.
type CellState int

const (
	// Free is a traversable cell ("0").
	Free CellState = 0
	// Path marks a cell that belongs to a found path ("1").
	Path CellState = 1
	// Obstacle is a blocked cell ("5").
	Obstacle CellState = 5
)

// Valid reports whether s is one of Free, Obstacle or Path.
func (s CellState) Valid() bool {
	switch s {
	case Free, Obstacle, Path:
		return true
	}
	return false
}

// String returns the lower-case state name.
func (s CellState) String() string {
	switch s {
	case Free:
		return "free"
	case Obstacle:
		return "obstacle"
	case Path:
		return "path"
	}
	return fmt.Sprintf("CellState(%d)", int(s))
}

// Coord addresses a cell by zero-based row and column.
// It is comparable and therefore usable as a map key.
type Coord struct {
	Row, Col int
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add returns c shifted by the offset d.
func (c Coord) Add(d Offset) Coord {
	return Coord{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// ParseCoord parses "row,col" (surrounding spaces allowed) as produced by
// the "%d,%d" layout. Anything else is ErrFormat.
func ParseCoord(s string) (Coord, error) {
	rs, cs, ok := strings.Cut(strings.Trim(strings.TrimSpace(s), "()"), ",")
	if !ok {
		return Coord{}, fmt.Errorf("coordinate %q: want \"row,col\": %w", s, ErrFormat)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return Coord{}, fmt.Errorf("coordinate %q: row: %w", s, ErrFormat)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return Coord{}, fmt.Errorf("coordinate %q: col: %w", s, ErrFormat)
	}

	return Coord{Row: row, Col: col}, nil
}

// Offset is a relative move between two cells.
type Offset struct {
	DRow, DCol int
}

// Offsets4 lists the orthogonal moves in evaluation order: up, down, left, right.
var Offsets4 = []Offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a rectangular occupancy matrix. cells[row][col] holds the state of
// each cell; every row has exactly cols entries.
//
// A Grid is not safe for concurrent mutation. Concurrent reads (StateAt,
// Neighbors, searches) are fine as long as no goroutine calls SetState or
// MarkPath at the same time.
type Grid struct {
	rows, cols int
	cells      [][]CellState
}
