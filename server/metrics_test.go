package server

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

func TestSearch_RecordsOutcome(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("0 0\n5 0\n"))
	require.NoError(t, err)
	s, err := New(g, Config{}, nil)
	require.NoError(t, err)

	found := testutil.ToFloat64(searchesTotal.WithLabelValues(resultFound))
	nopath := testutil.ToFloat64(searchesTotal.WithLabelValues(resultNoPath))
	failed := testutil.ToFloat64(searchesTotal.WithLabelValues(resultError))

	_, err = s.search(grid.C(0, 0), grid.C(1, 1))
	require.NoError(t, err)
	_, err = s.search(grid.C(0, 0), grid.C(1, 0))
	require.NoError(t, err)
	_, err = s.search(grid.C(0, 0), grid.C(4, 4))
	require.ErrorIs(t, err, grid.ErrOutOfBounds)

	assert.Equal(t, found+1, testutil.ToFloat64(searchesTotal.WithLabelValues(resultFound)))
	assert.Equal(t, nopath+1, testutil.ToFloat64(searchesTotal.WithLabelValues(resultNoPath)))
	assert.Equal(t, failed+1, testutil.ToFloat64(searchesTotal.WithLabelValues(resultError)))
}
