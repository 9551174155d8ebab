// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/gridpath/grid"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Stream message types, in the order a client receives them.
const (
	MsgGrid   = "grid"   // full grid, sent first
	MsgStep   = "step"   // one path cell
	MsgDone   = "done"   // path complete
	MsgNoPath = "nopath" // goal unreachable
	MsgError  = "error"  // search failed after the upgrade
)

// Message is one websocket frame of the path stream.
type Message struct {
	Type     string  `json:"type"`
	Rows     int     `json:"rows,omitempty"`
	Cols     int     `json:"cols,omitempty"`
	Cells    [][]int `json:"cells,omitempty"`
	Index    int     `json:"index"`
	Coord    *[2]int `json:"coord,omitempty"`
	Cost     float64 `json:"cost,omitempty"`
	Expanded int     `json:"expanded,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// handleStream validates the query before upgrading, so malformed or
// out-of-bounds requests get a plain HTTP error status.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	start, goal, err := endpoints(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if !s.grid.InBounds(start) || !s.grid.InBounds(goal) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: grid.ErrOutOfBounds.Error()})
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go readPump(conn, cancel)

	if err = s.stream(ctx, conn, start, goal); err != nil {
		s.log.WithError(err).Debug("stream ended early")
		return
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// stream sends the grid, then the path cell by cell, then the outcome.
func (s *Server) stream(ctx context.Context, conn *websocket.Conn, start, goal grid.Coord) error {
	rows, cols := s.grid.Dimensions()
	if err := send(conn, Message{Type: MsgGrid, Rows: rows, Cols: cols, Cells: cells(s.grid)}); err != nil {
		return err
	}

	res, err := s.search(start, goal)
	if err != nil {
		return send(conn, Message{Type: MsgError, Error: err.Error(), Expanded: res.Expanded})
	}
	if !res.Found {
		return send(conn, Message{Type: MsgNoPath, Expanded: res.Expanded})
	}

	timer := time.NewTimer(0)
	defer timer.Stop()
	for i, c := range res.Path {
		if i > 0 && s.cfg.StepDelay > 0 {
			timer.Reset(s.cfg.StepDelay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
		if err = send(conn, Message{Type: MsgStep, Index: i, Coord: &[2]int{c.Row, c.Col}}); err != nil {
			return err
		}
	}

	return send(conn, Message{Type: MsgDone, Cost: res.Cost, Expanded: res.Expanded})
}

// readPump drains client frames and cancels the stream once the peer goes away.
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(maxMessageSize)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func send(conn *websocket.Conn, m Message) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(m)
}

// cells returns the grid as its numeric state values.
func cells(g *grid.Grid) [][]int {
	rows, cols := g.Dimensions()
	out := make([][]int, rows)
	for r := range out {
		out[r] = make([]int, cols)
		for c := range out[r] {
			st, _ := g.StateAt(grid.C(r, c))
			out[r][c] = int(st)
		}
	}

	return out
}
