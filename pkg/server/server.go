// Package server assembles and runs one dummy HTTP server instance.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/joeydtaylor/steeze-dummy/pkg/core"
	"github.com/joeydtaylor/steeze-dummy/pkg/handlers"
	"github.com/joeydtaylor/steeze-dummy/pkg/manifest"
	"github.com/joeydtaylor/steeze-dummy/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-dummy/pkg/middleware/metrics"
	"github.com/joeydtaylor/steeze-dummy/pkg/transport/httpx"
	"go.uber.org/zap"
)

var ErrAlreadyStarted = errors.New("server already started")

// Server owns a route registry, the socket log, and the listeners serving
// them. Routes are fixed once Start has been called.
type Server struct {
	cfg     manifest.Config
	log     *zap.Logger
	access  *logger.Middleware
	metrics http.Handler
	hooks   []func(*core.Registry)
	reg     *core.Registry
	sockets *handlers.SocketLog

	mu      sync.Mutex
	srv     *http.Server
	admin   *http.Server
	ln      net.Listener
	adminLn net.Listener
	wg      sync.WaitGroup
}

// New validates cfg and registers the built-in routes, then the manifest's
// canned routes, then any registry hooks.
func New(cfg manifest.Config, log *zap.Logger, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		cfg:     cfg,
		log:     log,
		access:  logger.NewMiddleware(nil),
		metrics: metrics.NewPromHttpHandler(),
		reg:     core.NewRegistry(),
		sockets: handlers.NewSocketLog(),
	}
	for _, o := range opts {
		o(s)
	}

	handlers.Register(s.reg, handlers.Deps{
		Sockets:  s.sockets,
		SleepFor: cfg.Handlers.SleepDuration(),
		Logger:   log,
	})
	manifest.RegisterRoutes(s.reg, cfg.Routes)
	for _, h := range s.hooks {
		h(s.reg)
	}

	s.srv = &http.Server{
		Handler:      s.buildRouter(),
		ConnContext:  httpx.ConnContext,
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
		ErrorLog:     zap.NewStdLog(log),
	}
	if cfg.Metrics.Listen != "" {
		s.admin = &http.Server{
			Handler:     s.buildAdmin(),
			ReadTimeout: cfg.Server.ReadTimeoutDuration(),
			ErrorLog:    zap.NewStdLog(log),
		}
	}
	return s, nil
}

// Start binds the configured address (and the admin address, if any) and
// serves in the background. It returns once the listeners are bound.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return ErrAlreadyStarted
	}

	var lc net.ListenConfig
	addr := s.cfg.Server.Addr()
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	if s.admin != nil {
		aln, err := lc.Listen(ctx, "tcp", s.cfg.Metrics.Listen)
		if err != nil {
			_ = ln.Close()
			return fmt.Errorf("listen admin %s: %w", s.cfg.Metrics.Listen, err)
		}
		s.adminLn = aln
		s.serve("admin", s.admin, aln)
		s.log.Info("admin listening", zap.String("addr", aln.Addr().String()))
	}
	s.ln = ln
	s.serve("http", s.srv, ln)

	s.log.Info("server listening",
		zap.String("addr", ln.Addr().String()),
		zap.Int("routes", s.reg.Len()),
	)
	return nil
}

func (s *Server) serve(name string, srv *http.Server, ln net.Listener) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("server failed", zap.String("listener", name), zap.Error(err))
		}
	}()
}

// Shutdown stops accepting connections and waits for in-flight requests on
// both listeners, or for ctx to end.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	started := s.ln != nil
	s.mu.Unlock()
	if !started {
		return nil
	}

	s.log.Info("server stopping")
	var errs []error
	if err := s.srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http: %w", err))
	}
	if s.admin != nil {
		if err := s.admin.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown admin: %w", err))
		}
	}
	s.wg.Wait()
	return errors.Join(errs...)
}

// Addr is the bound main address, or "" before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// URL is the base URL of the main listener, e.g. http://127.0.0.1:41234.
func (s *Server) URL() string {
	if a := s.Addr(); a != "" {
		return "http://" + a
	}
	return ""
}

// AdminAddr is the bound admin address, or "" when disabled or not started.
func (s *Server) AdminAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.adminLn == nil {
		return ""
	}
	return s.adminLn.Addr().String()
}

func (s *Server) Sockets() *handlers.SocketLog { return s.sockets }
func (s *Server) Registry() *core.Registry      { return s.reg }
