package core

import (
	"net/http"
)

// NotFound is the route-miss response: 404 naming the request target exactly
// as it appeared on the request line, query string included.
func NotFound(req *Request, res *Response) {
	res.Status = http.StatusNotFound
	res.SetBody(req.RequestURI + " not found")
}

// Dispatcher resolves each request against a Registry.
type Dispatcher struct {
	reg    *Registry
	onMiss func(*http.Request)
	onErr  func(*http.Request, error)
}

type DispatchOption func(*Dispatcher)

// WithMissHook is called for every request that matched no route.
func WithMissHook(fn func(*http.Request)) DispatchOption {
	return func(d *Dispatcher) { d.onMiss = fn }
}

// WithErrorHook is called when the request body could not be read.
func WithErrorHook(fn func(*http.Request, error)) DispatchOption {
	return func(d *Dispatcher) { d.onErr = fn }
}

func NewDispatcher(reg *Registry, opts ...DispatchOption) *Dispatcher {
	d := &Dispatcher{reg: reg}
	for _, o := range opts {
		o(d)
	}
	return d
}

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := NewRequest(r)
	if err != nil {
		if d.onErr != nil {
			d.onErr(r, err)
		}
		res := NewResponse()
		res.Status = http.StatusBadRequest
		res.SetBody("unreadable request body")
		res.WriteTo(w, r.Method)
		return
	}

	res := NewResponse()
	if h, ok := d.reg.Lookup(r.Method, r.URL.Path); ok {
		h.Handle(req, res)
	} else {
		if d.onMiss != nil {
			d.onMiss(r)
		}
		NotFound(req, res)
	}
	res.WriteTo(w, r.Method)
}
