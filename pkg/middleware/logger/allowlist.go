package logger

import (
	"net/http"
	"strings"
	"sync"
)

const maxLoggedBody = 1 << 16 // 64 KiB

// DefaultBodyLogPaths are the routes whose request bodies are worth seeing in
// the access log.
var DefaultBodyLogPaths = []string{"/body", "/echo-body", "/encoded-body", "/form"}

type bodyAllowlist struct {
	mu    sync.RWMutex
	paths map[string]struct{}
}

func newBodyAllowlist(paths ...string) *bodyAllowlist {
	a := &bodyAllowlist{paths: map[string]struct{}{}}
	a.add(paths...)
	return a
}

func (a *bodyAllowlist) add(paths ...string) {
	a.mu.Lock()
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p != "" {
			a.paths[p] = struct{}{}
		}
	}
	a.mu.Unlock()
}

// Only log small bodies of body-carrying methods on allowlisted routes.
func (a *bodyAllowlist) shouldLog(r *http.Request, body []byte) bool {
	if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
		return false
	}
	if len(body) == 0 || len(body) > maxLoggedBody {
		return false
	}
	a.mu.RLock()
	_, ok := a.paths[r.URL.Path]
	a.mu.RUnlock()
	return ok
}
