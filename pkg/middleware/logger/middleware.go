package logger

import (
	"bytes"
	"io"
	"net/http"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/steeze-dummy/pkg/transport/httpx"
	"go.uber.org/zap"
)

// Middleware writes one access-log entry per request.
type Middleware struct {
	log    *zap.Logger
	bodies *bodyAllowlist
}

// NewMiddleware logs to l; a nil l discards entries.
func NewMiddleware(l *zap.Logger) *Middleware {
	if l == nil {
		l = zap.NewNop()
	}
	return &Middleware{log: l, bodies: newBodyAllowlist(DefaultBodyLogPaths...)}
}

// AddBodyLogPaths extends the allowlist of routes whose bodies are logged.
func (m *Middleware) AddBodyLogPaths(paths ...string) { m.bodies.add(paths...) }

func (m *Middleware) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimd.NewWrapResponseWriter(w, r.ProtoMajor)

			// Read and RESTORE request body so downstream can consume it
			var body []byte
			if r.Body != nil {
				if b, err := io.ReadAll(r.Body); err == nil {
					body = b
				}
				r.Body.Close()
				r.Body = io.NopCloser(bytes.NewReader(body))
			}

			start := time.Now()
			defer func() {
				lat := time.Since(start)

				connID := ""
				if ci, ok := httpx.ConnFromContext(r.Context()); ok {
					connID = ci.ID
				}

				log := m.log.With(
					zap.String("dateTime", start.UTC().Format(time.RFC1123)),
					zap.String("requestId", chimd.GetReqID(r.Context())),
					zap.String("connId", connID),
					zap.String("httpProto", r.Proto),
					zap.String("httpMethod", r.Method),
					zap.String("remoteAddr", r.RemoteAddr),
					zap.String("uri", r.RequestURI),
					zap.Duration("lat", lat),
					zap.Int("responseSize", ww.BytesWritten()),
					zap.Int("status", ww.Status()),
				)

				if m.bodies.shouldLog(r, body) {
					log.Info("request", zap.ByteString("requestData", body))
				} else {
					log.Info("request")
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
