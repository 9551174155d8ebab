// SPDX-License-Identifier: MIT

package server

import (
	"net/http"

	"github.com/matryer/way"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc(http.MethodGet, "/grid", s.handleGrid)
	s.router.HandleFunc(http.MethodGet, "/path/:start/:goal", s.handlePath)
	s.router.HandleFunc(http.MethodGet, "/path", s.handlePath)
	s.router.HandleFunc(http.MethodGet, "/ws", s.handleStream)
	s.router.Handle(http.MethodGet, "/metrics", promhttp.Handler())
}
