package core

import "net/http"

// Method is one of the HTTP methods routes can be registered under.
type Method string

const (
	MethodGet  Method = http.MethodGet
	MethodPost Method = http.MethodPost
	MethodHead Method = http.MethodHead
)

// ParseMethod accepts the registrable methods only, compared as they appear
// on the request line.
func ParseMethod(s string) (Method, bool) {
	switch Method(s) {
	case MethodGet, MethodPost, MethodHead:
		return Method(s), true
	default:
		return "", false
	}
}

// Key is the exact (method, path) pair a handler is bound to.
type Key struct {
	Method Method
	Path   string
}

func (k Key) String() string { return string(k.Method) + " " + k.Path }
