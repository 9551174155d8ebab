package main

import (
	"bytes"
	"context"
	"errors"
	"image/gif"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
)

const sample = "0 0 0\n0 5 0\n0 0 0\n"

// run executes the app with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run(context.Background(), append([]string{"gridpath"}, args...))
	return stdout.String(), err
}

func writeGrid(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestFind_SavesAndPrints(t *testing.T) {
	in := writeGrid(t, sample)
	out := filepath.Join(t.TempDir(), "marked.txt")

	stdout, err := run(t, "--grid", in, "--start", "0,0", "--goal", "2,2", "find", "--out", out, "--print")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Path found: (0,0) -> (1,0) -> (2,0) -> (2,1) -> (2,2)")
	assert.Contains(t, stdout, "Steps: 4, cost: 4")
	assert.Contains(t, stdout, "Grid saved to "+out)
	assert.Contains(t, stdout, "1 0 0\n1 5 0\n1 1 1\n")

	saved, err := grid.Load(out)
	require.NoError(t, err)
	assert.Equal(t, 5, saved.Count(grid.Path))

	// The input file is left untouched.
	orig, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, sample, string(orig))
}

func TestFind_NoPath(t *testing.T) {
	in := writeGrid(t, "0 5\n5 0\n")
	stdout, err := run(t, "--grid", in, "--start", "0,0", "--goal", "1,1", "find")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No path found.")
	assert.NotContains(t, stdout, "saved")
}

func TestFind_Errors(t *testing.T) {
	in := writeGrid(t, sample)
	cases := []struct {
		name string
		args []string
		err  error
	}{
		{"MissingGrid", []string{"--grid", filepath.Join(t.TempDir(), "nope.txt"), "--start", "0,0", "--goal", "1,1", "find"}, grid.ErrNotFound},
		{"OutOfBounds", []string{"--grid", in, "find"}, grid.ErrOutOfBounds},
		{"BadStart", []string{"--grid", in, "--start", "zero", "find"}, grid.ErrFormat},
		{"BadHeuristic", []string{"--grid", in, "--heuristic", "chebyshev", "find"}, config.ErrInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFind_ConfigFile(t *testing.T) {
	in := writeGrid(t, sample)
	cfgPath := filepath.Join(t.TempDir(), "gridpath.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"grid_file: "+in+"\nstart: 2,0\ngoal: 0,2\nheuristic: manhattan\n"), 0o644))

	stdout, err := run(t, "--config", cfgPath, "find", "--no-save")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Steps: 4")
	assert.NotContains(t, stdout, "saved")
}

func TestRender_PNGAndGIF(t *testing.T) {
	in := writeGrid(t, sample)
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "out.png")
	_, err := run(t, "--grid", in, "--start", "0,0", "--goal", "2,2", "render", "--output", pngPath)
	require.NoError(t, err)
	f, err := os.Open(pngPath)
	require.NoError(t, err)
	img, err := png.Decode(f)
	f.Close()
	require.NoError(t, err)
	assert.Equal(t, 3*config.Default().Render.CellSize, img.Bounds().Dx())

	gifPath := filepath.Join(dir, "anim", "out.gif")
	_, err = run(t, "--grid", in, "--start", "0,0", "--goal", "2,2", "render", "--output", gifPath, "--frame-delay", "50ms")
	require.NoError(t, err)
	f, err = os.Open(gifPath)
	require.NoError(t, err)
	anim, err := gif.DecodeAll(f)
	f.Close()
	require.NoError(t, err)
	assert.Len(t, anim.Image, 5)
	assert.Equal(t, 5, anim.Delay[0])
}

func TestInspect(t *testing.T) {
	in := writeGrid(t, "0 5 0\n0 5 0\n0 5 1\n")
	stdout, err := run(t, "--grid", in, "--start", "0,0", "--goal", "0,2", "inspect")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Size:      3 x 3")
	assert.Contains(t, stdout, "Free:      5")
	assert.Contains(t, stdout, "Obstacle:  3")
	assert.Contains(t, stdout, "Path:      1")
	assert.Contains(t, stdout, "Regions:   2 (largest 3 cells)")
	assert.Contains(t, stdout, "Reachable: (0,0) -> (0,2): false")
}

// TestInspect_Reachability follows find's endpoint rule, so a goal already
// marked Path by an earlier run still counts as reachable.
func TestInspect_Reachability(t *testing.T) {
	cases := []struct {
		name string
		grid string
		goal string
		want string
	}{
		{"GoalMarkedPath", "0 0 1\n", "0,2", "Reachable: (0,0) -> (0,2): true"},
		{"GoalObstacle", "0 0 5\n", "0,2", "Reachable: (0,0) -> (0,2): false"},
		{"GoalOutOfBounds", "0 0 0\n", "4,4", "Reachable: (0,0) -> (4,4): out of bounds"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := writeGrid(t, tc.grid)
			stdout, err := run(t, "--grid", in, "--start", "0,0", "--goal", tc.goal, "inspect")
			require.NoError(t, err)
			assert.Contains(t, stdout, tc.want)
		})
	}
}

func TestWriteImage_EncodeFailureLeavesNoFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "out.png")
	errEncode := errors.New("encode failed")

	err := writeImage(out, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return errEncode
	})
	require.ErrorIs(t, err, errEncode)
	_, statErr := os.Stat(out)
	assert.ErrorIs(t, statErr, fs.ErrNotExist)
	_, statErr = os.Stat(filepath.Dir(out))
	assert.ErrorIs(t, statErr, fs.ErrNotExist)

	require.NoError(t, writeImage(out, func(w io.Writer) error {
		_, werr := w.Write([]byte("ok"))
		return werr
	}))
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(b))
}
