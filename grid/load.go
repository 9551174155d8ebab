// SPDX-License-Identifier: MIT

package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
)

// Load reads a grid file: one row per line, integers separated by spaces,
// each one of 0 (Free), 5 (Obstacle) or 1 (Path).
//
// Errors:
//   - ErrNotFound if path does not exist.
//   - ErrFormat for unequal row lengths, non-integer tokens or unknown values.
//
// No partial grid is returned on failure.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("grid: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Parse reads a grid in the text format from r. Blank lines are skipped, so
// a trailing newline is accepted. An input without any row is ErrFormat.
func Parse(r io.Reader) (*Grid, error) {
	var (
		values [][]int
		width  = -1
		lineNo int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if width >= 0 && len(fields) != width {
			return nil, fmt.Errorf("line %d: %d values, want %d: %w", lineNo, len(fields), width, ErrFormat)
		}
		width = len(fields)

		row := make([]int, len(fields))
		for i, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d: token %q is not an integer: %w", lineNo, tok, ErrFormat)
			}
			if !CellState(v).Valid() {
				return nil, fmt.Errorf("line %d: value %d is not a cell state: %w", lineNo, v, ErrFormat)
			}
			row[i] = v
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no rows: %w", ErrFormat)
	}

	return FromInts(values)
}
