// Package handlers holds the built-in routes of the dummy server: each one a
// small, fixed behaviour an HTTP client test suite can assert against.
package handlers

import (
	"net/http"
	"time"

	"github.com/joeydtaylor/steeze-dummy/pkg/core"
	"go.uber.org/zap"
)

// DefaultSleep is how long /sleep stalls unless Deps says otherwise.
const DefaultSleep = 2 * time.Second

// Deps are the shared resources handlers may touch.
type Deps struct {
	Sockets  *SocketLog
	SleepFor time.Duration
	Logger   *zap.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Sockets == nil {
		d.Sockets = NewSocketLog()
	}
	if d.SleepFor <= 0 {
		d.SleepFor = DefaultSleep
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	return d
}

// Register installs every built-in route on reg.
func Register(reg *core.Registry, deps Deps) {
	d := deps.withDefaults()

	reg.RegisterFunc(core.MethodGet, "/", root)
	reg.RegisterFunc(core.MethodHead, "/", headRoot)

	reg.Register(core.MethodGet, "/sleep", sleep(d.SleepFor))
	reg.Register(core.MethodPost, "/sleep", sleep(d.SleepFor))

	for _, p := range []string{"/socket", "/socket/1", "/socket/2"} {
		reg.Register(core.MethodGet, p, socket(d.Sockets))
	}

	reg.RegisterFunc(core.MethodGet, "/params", params)
	reg.RegisterFunc(core.MethodGet, "/multiple-params", multipleParams)
	reg.RegisterFunc(core.MethodGet, "/proxy", fixed(http.StatusOK, "Proxy!"))
	reg.RegisterFunc(core.MethodGet, "/not-found", fixed(http.StatusNotFound, "not found"))
	reg.RegisterFunc(core.MethodGet, "/redirect-301", redirect(http.StatusMovedPermanently))
	reg.RegisterFunc(core.MethodGet, "/redirect-302", redirect(http.StatusFound))

	reg.RegisterFunc(core.MethodPost, "/form", form)
	reg.RegisterFunc(core.MethodPost, "/body", body)
	reg.RegisterFunc(core.MethodPost, "/echo-body", echoBody)
	reg.Register(core.MethodPost, "/encoded-body", encodedBody(d.Logger))
	reg.RegisterFunc(core.MethodPost, "/no-content-204", noContent)

	reg.RegisterFunc(core.MethodGet, "/bytes", rawBytes)
	reg.Register(core.MethodGet, "/iso-8859-1", latin1(d.Logger))
	reg.RegisterFunc(core.MethodGet, "/cookies", cookies)
	reg.RegisterFunc(core.MethodGet, "/hello world", fixed(http.StatusOK, "hello world"))
}

func fixed(status int, body string) func(*core.Request, *core.Response) {
	return func(_ *core.Request, res *core.Response) {
		res.Status = status
		res.SetBody(body)
	}
}

func internalError(log *zap.Logger, req *core.Request, res *core.Response, err error) {
	log.Error("handler failed",
		zap.String("method", req.Method),
		zap.String("uri", req.RequestURI),
		zap.Error(err),
	)
	res.Header = http.Header{}
	res.Status = http.StatusInternalServerError
	res.SetBody("internal error")
}
