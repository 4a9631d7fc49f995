package handlers

import (
	"net"
	"net/http"

	"github.com/joeydtaylor/steeze-dummy/pkg/core"
)

// redirect points back at the server root, addressed exactly as the live
// connection was accepted.
func redirect(status int) func(*core.Request, *core.Response) {
	return func(req *core.Request, res *core.Response) {
		res.Status = status
		res.Header.Set("Location", "http://"+selfHost(req)+"/")
	}
}

func selfHost(req *core.Request) string {
	if a := req.Conn.Local; a != nil {
		return a.String()
	}
	if a, ok := req.Context().Value(http.LocalAddrContextKey).(net.Addr); ok {
		return a.String()
	}
	return req.Host
}
