package handlers

import (
	"net/http"
	"time"

	"github.com/joeydtaylor/steeze-dummy/pkg/core"
)

// sleep stalls only the calling request; other connections keep being served.
func sleep(d time.Duration) core.HandlerFunc {
	return func(req *core.Request, res *core.Response) {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
		case <-req.Context().Done():
		}
		res.Status = http.StatusOK
		res.SetBody("hello")
	}
}
