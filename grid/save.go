// SPDX-License-Identifier: MIT

package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// WriteTo writes g in the text grid format accepted by Parse.
// It implements io.WriterTo.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, row := range g.cells {
		for c, v := range row {
			if c > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return n, err
				}
				n++
			}
			k, err := bw.WriteString(strconv.Itoa(int(v)))
			n += int64(k)
			if err != nil {
				return n, err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}

	return n, bw.Flush()
}

// Save writes g to path, creating parent directories as needed. The file is
// written to a temporary sibling first and renamed into place.
func Save(path string, g *Grid) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("grid: create directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".grid-*")
	if err != nil {
		return fmt.Errorf("grid: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := g.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("grid: write %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("grid: chmod %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("grid: close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("grid: rename into %s: %w", path, err)
	}

	return nil
}
