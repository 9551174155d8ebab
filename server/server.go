// SPDX-License-Identifier: MIT

// Package server exposes a loaded grid over HTTP:
//
//	GET /grid                          grid in the text format
//	GET /path?start=r,c&goal=r,c       search result as JSON
//	GET /path/:start/:goal             same, endpoints as path segments
//	GET /ws?start=r,c&goal=r,c         websocket stream of the path, one cell per step
//	GET /metrics                       Prometheus metrics
//
// The grid is read-only for the lifetime of the server, so requests run
// searches concurrently without locking.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/matryer/way"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// ErrNilGrid is returned by New when no grid is supplied.
var ErrNilGrid = errors.New("server: grid is nil")

// Config configures a Server.
//
// Addr          – listen address for ListenAndServe.
// StepDelay     – pause between websocket step messages.
// Heuristic     – search heuristic; nil means astar.Euclidean.
// MaxExpansions – per-request expansion cap; 0 means none.
type Config struct {
	Addr          string
	StepDelay     time.Duration
	Heuristic     astar.Heuristic
	MaxExpansions int
}

// Server serves searches over a fixed grid.
type Server struct {
	grid   *grid.Grid
	cfg    Config
	log    logrus.FieldLogger
	router *way.Router
}

// New builds a Server for g. A nil log discards output.
func New(g *grid.Grid, cfg Config, log logrus.FieldLogger) (*Server, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if cfg.Heuristic == nil {
		cfg.Heuristic = astar.Euclidean
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	s := &Server{grid: g, cfg: cfg, log: log}
	s.routes()

	return s, nil
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.WithField("addr", s.cfg.Addr).Info("server listening")

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info("server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}

	return nil
}

// pathResponse is the JSON body of GET /path.
type pathResponse struct {
	Found    bool     `json:"found"`
	Cost     float64  `json:"cost"`
	Expanded int      `json:"expanded"`
	Path     [][2]int `json:"path"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleGrid(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = s.grid.WriteTo(w)
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	start, goal, err := endpoints(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	res, err := s.search(start, goal)
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, pathResponse{
		Found:    res.Found,
		Cost:     res.Cost,
		Expanded: res.Expanded,
		Path:     pairs(res.Path),
	})
}

// search runs FindPath, then logs and records the outcome.
func (s *Server) search(start, goal grid.Coord) (astar.Result, error) {
	began := time.Now()
	res, err := astar.FindPath(s.grid, start, goal,
		astar.WithHeuristic(s.cfg.Heuristic),
		astar.WithMaxExpansions(s.cfg.MaxExpansions),
	)
	took := time.Since(began)

	entry := s.log.WithFields(logrus.Fields{
		"start":    start.String(),
		"goal":     goal.String(),
		"expanded": res.Expanded,
		"took":     took,
	})
	switch {
	case err != nil:
		observeSearch(resultError, res.Expanded, took)
		entry.WithError(err).Warn("search failed")
	case res.Found:
		observeSearch(resultFound, res.Expanded, took)
		entry.WithField("cost", res.Cost).Info("path found")
	default:
		observeSearch(resultNoPath, res.Expanded, took)
		entry.Info("no path")
	}

	return res, err
}

// endpoints parses start and goal from the path segments when the route has
// them, otherwise from the query string.
func endpoints(r *http.Request) (start, goal grid.Coord, err error) {
	q := r.URL.Query()
	rawStart, rawGoal := way.Param(r.Context(), "start"), way.Param(r.Context(), "goal")
	if rawStart == "" && rawGoal == "" {
		rawStart, rawGoal = q.Get("start"), q.Get("goal")
	}
	if start, err = grid.ParseCoord(rawStart); err != nil {
		return start, goal, fmt.Errorf("start: %w", err)
	}
	if goal, err = grid.ParseCoord(rawGoal); err != nil {
		return start, goal, fmt.Errorf("goal: %w", err)
	}

	return start, goal, nil
}

// statusFor maps a search error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, grid.ErrOutOfBounds), errors.Is(err, astar.ErrExpansionLimit):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func pairs(p astar.Path) [][2]int {
	out := make([][2]int, len(p))
	for i, c := range p {
		out[i] = [2]int{c.Row, c.Col}
	}

	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
