// SPDX-License-Identifier: MIT

// Package grid models a rectangular occupancy grid for path search.
//
// What:
//
//   - Grid holds a rows×cols matrix of CellState: Free, Obstacle or Path.
//   - Coord addresses a cell by zero-based (Row, Col) and is usable as a map key.
//   - Load/Parse read the plain-text format; WriteTo/Save write it back.
//   - LoadImage imports occupancy maps stored as PGM or PNG images.
//   - Regions finds 4-connected regions of Free cells.
//
// Text format:
//
//	0 0 5 0 1
//	0 5 0 5 1
//	1 1 1 1 1
//
// where 0 is Free, 5 is Obstacle and 1 is Path. All lines must hold the same
// number of values.
//
// Mutation:
//
//	A grid is built once. The only intended in-place change is marking a
//	found path via MarkPath (or SetState); search itself only reads.
//
// Errors:
//
//   - ErrNotFound:     the grid file does not exist.
//   - ErrFormat:       ragged rows, non-integer token or unknown value.
//   - ErrEmptyGrid:    no rows or no columns.
//   - ErrOutOfBounds:  coordinate outside the grid.
//   - ErrInvalidState: CellState other than Free, Obstacle or Path.
package grid
