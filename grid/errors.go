// SPDX-License-Identifier: MIT

package grid

import "errors"

// Sentinel errors for grid construction, parsing and lookup.
// Callers match them with errors.Is; context is added with %w wrapping.
var (
	// ErrNotFound indicates the grid source (file) does not exist.
	ErrNotFound = errors.New("grid: source not found")

	// ErrFormat indicates a malformed grid: unequal row lengths, a non-integer
	// token, or an integer that maps to no cell state.
	ErrFormat = errors.New("grid: malformed grid data")

	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")

	// ErrOutOfBounds indicates a coordinate outside [0,rows)×[0,cols).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrInvalidState indicates a CellState value that is not Free, Obstacle or Path.
	ErrInvalidState = errors.New("grid: invalid cell state")
)
