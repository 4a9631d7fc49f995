package server

import (
	"net/http"

	"github.com/joeydtaylor/steeze-dummy/pkg/core"
	"github.com/joeydtaylor/steeze-dummy/pkg/middleware/logger"
)

type Option func(*Server)

// WithAccessLogger sets the middleware writing the per-request access log.
func WithAccessLogger(m *logger.Middleware) Option {
	return func(s *Server) {
		if m != nil {
			s.access = m
		}
	}
}

// WithRegistryHook runs fn after the built-in and canned routes are
// registered and before the listener binds. Later registrations win.
func WithRegistryHook(fn func(*core.Registry)) Option {
	return func(s *Server) {
		if fn != nil {
			s.hooks = append(s.hooks, fn)
		}
	}
}

// WithMetricsHandler replaces the /metrics handler of the admin listener.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		if h != nil {
			s.metrics = h
		}
	}
}
