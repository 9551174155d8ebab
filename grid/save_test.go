// SPDX-License-Identifier: MIT

package grid_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

func TestWriteTo_RoundTrip(t *testing.T) {
	g, err := grid.FromInts([][]int{
		{0, 0, 5},
		{1, 1, 1},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "0 0 5\n1 1 1\n", buf.String())

	back, err := grid.Parse(&buf)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
}

// TestSave_MarkedGrid mirrors exporting a grid after a path has been marked.
func TestSave_MarkedGrid(t *testing.T) {
	g, err := grid.Filled(2, 3, grid.Free)
	require.NoError(t, err)
	require.NoError(t, g.MarkPath([]grid.Coord{grid.C(0, 0), grid.C(0, 1), grid.C(1, 1)}))

	path := filepath.Join(t.TempDir(), "out", "grid_with_path.txt")
	require.NoError(t, grid.Save(path, g))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1 1 0\n0 1 0\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}
