// File: server/server_test.go
package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/server"
)

const sampleGrid = "0 0 0\n0 5 0\n0 0 0\n"

func newTestServer(t *testing.T, cfg server.Config) *httptest.Server {
	t.Helper()
	g, err := grid.Parse(strings.NewReader(sampleGrid))
	require.NoError(t, err)
	srv, err := server.New(g, cfg, nil)
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestNew_NilGrid(t *testing.T) {
	srv, err := server.New(nil, server.Config{}, nil)
	require.ErrorIs(t, err, server.ErrNilGrid)
	assert.Nil(t, srv)
}

type pathBody struct {
	Found    bool     `json:"found"`
	Cost     float64  `json:"cost"`
	Expanded int      `json:"expanded"`
	Path     [][2]int `json:"path"`
	Error    string   `json:"error"`
}

func getPath(t *testing.T, ts *httptest.Server, query string) (int, pathBody) {
	t.Helper()
	resp, err := http.Get(ts.URL + "/path?" + query)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body pathBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestGrid(t *testing.T) {
	ts := newTestServer(t, server.Config{})
	resp, err := http.Get(ts.URL + "/grid")
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, sampleGrid, string(b))
}

func TestPath_Found(t *testing.T) {
	ts := newTestServer(t, server.Config{})
	status, body := getPath(t, ts, "start=0,0&goal=2,2")

	require.Equal(t, http.StatusOK, status)
	assert.True(t, body.Found)
	assert.Equal(t, 4.0, body.Cost)
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}, body.Path)
	assert.Positive(t, body.Expanded)
}

func TestPath_SegmentRoute(t *testing.T) {
	ts := newTestServer(t, server.Config{})
	resp, err := http.Get(ts.URL + "/path/2,2/0,0")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body pathBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, body.Found)
	assert.Equal(t, [2]int{2, 2}, body.Path[0])
	assert.Equal(t, [2]int{0, 0}, body.Path[len(body.Path)-1])
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t, server.Config{})
	resp, err := http.Post(ts.URL+"/grid", "text/plain", strings.NewReader(""))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPath_NoPath(t *testing.T) {
	ts := newTestServer(t, server.Config{})
	// The obstacle itself is never enterable.
	status, body := getPath(t, ts, "start=0,0&goal=1,1")

	require.Equal(t, http.StatusOK, status)
	assert.False(t, body.Found)
	assert.Empty(t, body.Path)
}

func TestPath_Errors(t *testing.T) {
	ts := newTestServer(t, server.Config{MaxExpansions: 1})
	cases := []struct {
		name   string
		query  string
		status int
	}{
		{"MissingStart", "goal=1,1", http.StatusBadRequest},
		{"MalformedGoal", "start=0,0&goal=x", http.StatusBadRequest},
		{"StartOutOfBounds", "start=9,9&goal=0,0", http.StatusUnprocessableEntity},
		{"GoalOutOfBounds", "start=0,0&goal=0,-1", http.StatusUnprocessableEntity},
		{"ExpansionLimit", "start=0,0&goal=2,2", http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := getPath(t, ts, tc.query)
			assert.Equal(t, tc.status, status)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, server.Config{})
	getPath(t, ts, "start=0,0&goal=2,2")

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(b), `gridpath_searches_total{result="found"}`)
	assert.Contains(t, string(b), "gridpath_search_expanded_nodes_bucket")
	assert.Contains(t, string(b), "gridpath_search_duration_seconds_count")
}

func dialStream(t *testing.T, ts *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readAll collects messages until the server closes the connection.
func readAll(t *testing.T, conn *websocket.Conn) []server.Message {
	t.Helper()
	var out []server.Message
	for {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var m server.Message
		if err := conn.ReadJSON(&m); err != nil {
			require.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "unexpected error: %v", err)
			return out
		}
		out = append(out, m)
	}
}

func TestStream_Path(t *testing.T) {
	ts := newTestServer(t, server.Config{StepDelay: time.Millisecond})
	msgs := readAll(t, dialStream(t, ts, "start=0,0&goal=2,2"))

	require.Len(t, msgs, 1+5+1)
	assert.Equal(t, server.MsgGrid, msgs[0].Type)
	assert.Equal(t, 3, msgs[0].Rows)
	assert.Equal(t, [][]int{{0, 0, 0}, {0, 5, 0}, {0, 0, 0}}, msgs[0].Cells)

	want := [][2]int{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}
	for i, w := range want {
		m := msgs[1+i]
		assert.Equal(t, server.MsgStep, m.Type)
		assert.Equal(t, i, m.Index)
		require.NotNil(t, m.Coord)
		assert.Equal(t, w, *m.Coord)
	}

	last := msgs[len(msgs)-1]
	assert.Equal(t, server.MsgDone, last.Type)
	assert.Equal(t, 4.0, last.Cost)
}

func TestStream_NoPath(t *testing.T) {
	ts := newTestServer(t, server.Config{})
	msgs := readAll(t, dialStream(t, ts, "start=0,0&goal=1,1"))

	require.Len(t, msgs, 2)
	assert.Equal(t, server.MsgGrid, msgs[0].Type)
	assert.Equal(t, server.MsgNoPath, msgs[1].Type)
}

func TestStream_RejectsBeforeUpgrade(t *testing.T) {
	ts := newTestServer(t, server.Config{})
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?start=0,0&goal=7,7"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	url = "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?start=a&goal=0,0"
	_, resp, err = websocket.DefaultDialer.Dial(url, nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
