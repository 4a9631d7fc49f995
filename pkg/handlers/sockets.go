package handlers

import (
	"sync"

	"github.com/joeydtaylor/steeze-dummy/pkg/core"
)

// SocketLog records, in arrival order, the connection that served each
// /socket* request. It only grows.
type SocketLog struct {
	mu  sync.Mutex
	ids []string
}

func NewSocketLog() *SocketLog { return &SocketLog{} }

func (l *SocketLog) Append(id string) {
	l.mu.Lock()
	l.ids = append(l.ids, id)
	l.mu.Unlock()
}

// Entries returns a copy of the log.
func (l *SocketLog) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.ids))
	copy(out, l.ids)
	return out
}

func (l *SocketLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.ids)
}

// Last returns the most recent entry, or "" if nothing was recorded.
func (l *SocketLog) Last() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.ids) == 0 {
		return ""
	}
	return l.ids[len(l.ids)-1]
}

func socket(log *SocketLog) core.HandlerFunc {
	return func(req *core.Request, res *core.Response) {
		log.Append(req.Conn.ID)
		res.SetBody(req.Conn.ID)
	}
}
