// pkg/core/types.go
package core

import (
	"bytes"
	"io"
	"net/http"

	"github.com/joeydtaylor/steeze-dummy/pkg/transport/httpx"
)

// Request is what a handler sees: the parsed request, its fully read body and
// the connection it arrived on.
type Request struct {
	*http.Request
	Body []byte
	Conn httpx.ConnInfo
}

// NewRequest drains r.Body and restores it so form parsing still works.
func NewRequest(r *http.Request) (*Request, error) {
	var body []byte
	if r.Body != nil {
		b, err := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		body = b
	}
	ci, _ := httpx.ConnFromContext(r.Context())
	return &Request{Request: r, Body: body, Conn: ci}, nil
}

// Response is filled in by a handler and serialized by the dispatcher.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// NewResponse returns the default response: 200, no headers, empty body.
func NewResponse() *Response {
	return &Response{Status: http.StatusOK, Header: http.Header{}}
}

func (res *Response) SetBody(s string) { res.Body = []byte(s) }

// WriteTo serializes res onto w. Nothing but the handler's headers reach the
// wire: Content-Type is not sniffed when the handler left it unset.
func (res *Response) WriteTo(w http.ResponseWriter, method string) {
	h := w.Header()
	for k, vs := range res.Header {
		h[k] = append([]string(nil), vs...)
	}
	if _, ok := h["Content-Type"]; !ok {
		h["Content-Type"] = nil
	}

	status := res.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	if method == http.MethodHead || !bodyAllowed(status) || len(res.Body) == 0 {
		return
	}
	_, _ = w.Write(res.Body)
}

func bodyAllowed(status int) bool {
	switch {
	case status >= 100 && status <= 199:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	}
	return true
}
