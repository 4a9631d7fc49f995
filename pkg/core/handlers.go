// core/handlers.go
package core

import (
	"sort"
	"sync"
)

// Handler fills in res for a request that matched its route key.
type Handler interface {
	Handle(req *Request, res *Response)
}

// HandlerFunc adapts an ordinary function to Handler.
type HandlerFunc func(req *Request, res *Response)

func (f HandlerFunc) Handle(req *Request, res *Response) { f(req, res) }

// Registry maps exact route keys to handlers. It is populated before the
// listener binds and only read afterwards.
type Registry struct {
	mu     sync.RWMutex
	routes map[Key]Handler
}

func NewRegistry() *Registry {
	return &Registry{routes: make(map[Key]Handler)}
}

// Register binds h to (m, path). A later registration for the same key
// replaces the earlier one. The path is stored verbatim.
func (r *Registry) Register(m Method, path string, h Handler) {
	if h == nil {
		return
	}
	r.mu.Lock()
	r.routes[Key{Method: m, Path: path}] = h
	r.mu.Unlock()
}

// RegisterFunc is Register for plain functions.
func (r *Registry) RegisterFunc(m Method, path string, f func(*Request, *Response)) {
	if f == nil {
		return
	}
	r.Register(m, path, HandlerFunc(f))
}

// Lookup retrieves the handler for an exact (method, path) match.
func (r *Registry) Lookup(method, path string) (Handler, bool) {
	m, ok := ParseMethod(method)
	if !ok {
		return nil, false
	}
	r.mu.RLock()
	h, ok := r.routes[Key{Method: m, Path: path}]
	r.mu.RUnlock()
	return h, ok
}

// Keys lists registered route keys ordered by path, then method.
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	keys := make([]Key, 0, len(r.routes))
	for k := range r.routes {
		keys = append(keys, k)
	}
	r.mu.RUnlock()
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Path != keys[j].Path {
			return keys[i].Path < keys[j].Path
		}
		return keys[i].Method < keys[j].Method
	})
	return keys
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.routes)
}
