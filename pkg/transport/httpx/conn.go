package httpx

import (
	"context"
	"net"

	"github.com/google/uuid"
)

type connKey struct{}

// ConnInfo identifies one accepted TCP connection. Every request served over
// the same connection carries the same ID.
type ConnInfo struct {
	ID     string
	Local  net.Addr
	Remote net.Addr
}

// ConnContext is suitable for http.Server.ConnContext.
func ConnContext(ctx context.Context, c net.Conn) context.Context {
	return context.WithValue(ctx, connKey{}, ConnInfo{
		ID:     uuid.NewString(),
		Local:  c.LocalAddr(),
		Remote: c.RemoteAddr(),
	})
}

// ConnFromContext returns the connection stored by ConnContext.
func ConnFromContext(ctx context.Context) (ConnInfo, bool) {
	ci, ok := ctx.Value(connKey{}).(ConnInfo)
	return ci, ok
}

// WithConn attaches ci to ctx. Handy for handler tests that never touch a socket.
func WithConn(ctx context.Context, ci ConnInfo) context.Context {
	return context.WithValue(ctx, connKey{}, ci)
}
