package server

import (
	"net/http"

	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/steeze-dummy/pkg/core"
	"github.com/joeydtaylor/steeze-dummy/pkg/middleware/metrics"
	"github.com/joeydtaylor/steeze-dummy/pkg/transport/httpx"
	"go.uber.org/zap"
)

// buildRouter puts the dispatcher behind every method and path of a chi mux.
// Middleware must be installed before any route.
func (s *Server) buildRouter() http.Handler {
	d := core.NewDispatcher(s.reg,
		core.WithMissHook(func(r *http.Request) {
			metrics.ObserveMiss()
			s.log.Debug("route miss", zap.String("method", r.Method), zap.String("uri", r.RequestURI))
		}),
		core.WithErrorHook(func(r *http.Request, err error) {
			s.log.Warn("request body read failed", zap.String("uri", r.RequestURI), zap.Error(err))
		}),
	)

	r := httpx.NewChi()
	r.Use(
		chimd.RequestID,
		s.access.Middleware(),
		metrics.Collect(metrics.WithRouteLabel(s.routeLabel)),
		chimd.Recoverer,
	)
	httpx.CatchAll(r, d)
	return r.Mux()
}

func (s *Server) routeLabel(r *http.Request) string {
	if _, ok := s.reg.Lookup(r.Method, r.URL.Path); ok {
		return r.URL.Path
	}
	return metrics.Unmatched
}

// buildAdmin serves the Prometheus scrape endpoint and a liveness probe.
func (s *Server) buildAdmin() http.Handler {
	r := httpx.NewChi()
	r.Use(chimd.Heartbeat("/ping"))
	r.Handle(http.MethodGet, "/metrics", s.metrics)
	return r.Mux()
}
