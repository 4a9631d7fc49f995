package manifest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/joeydtaylor/steeze-dummy/pkg/core"
)

// Route is a canned response bound to an exact (method, path).
type Route struct {
	Method  string            `toml:"method" validate:"required,oneof=GET POST HEAD"`
	Path    string            `toml:"path" validate:"required"`
	Status  int               `toml:"status" validate:"omitempty,min=100,max=599"`
	Headers map[string]string `toml:"headers"`
	Body    string            `toml:"body"`
}

// validate fields that are independent of global state. The path is kept
// verbatim: no slash folding, no cleaning.
func (r *Route) validate() error {
	if r.Path == "" {
		return errors.New("path is required")
	}
	if _, ok := core.ParseMethod(r.Method); !ok {
		return fmt.Errorf("method %q not one of GET, POST, HEAD", r.Method)
	}
	if r.Status != 0 && (r.Status < 100 || r.Status > 599) {
		return fmt.Errorf("status %d out of range", r.Status)
	}
	return nil
}

// Handler builds the handler serving this canned response.
func (r Route) Handler() core.Handler {
	status := r.Status
	if status == 0 {
		status = http.StatusOK
	}
	hdr := http.Header{}
	for k, v := range r.Headers {
		hdr.Set(k, v)
	}
	body := []byte(r.Body)
	return core.HandlerFunc(func(_ *core.Request, res *core.Response) {
		res.Status = status
		for k, vs := range hdr {
			res.Header[k] = append([]string(nil), vs...)
		}
		res.Body = append([]byte(nil), body...)
	})
}

// RegisterRoutes installs every canned route, in manifest order, on reg.
func RegisterRoutes(reg *core.Registry, routes []Route) {
	for _, rt := range routes {
		m, ok := core.ParseMethod(rt.Method)
		if !ok {
			continue
		}
		reg.Register(m, rt.Path, rt.Handler())
	}
}
