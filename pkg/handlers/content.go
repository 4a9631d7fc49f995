package handlers

import (
	"net/http"
	"strings"

	"github.com/joeydtaylor/steeze-dummy/pkg/codec"
	"github.com/joeydtaylor/steeze-dummy/pkg/core"
	"go.uber.org/zap"
)

// zipHeader is a ZIP local file header prefix plus a few trailing bytes.
var zipHeader = []byte{80, 75, 3, 4, 20, 0, 0, 0, 8, 0, 123, 104, 169, 70, 99, 243, 243}

func root(req *core.Request, res *core.Response) {
	res.Status = http.StatusOK
	if req.Header.Get("Accept") == "application/json" {
		res.Header.Set("Content-Type", "application/json")
		res.SetBody(`{"json": true}`)
		return
	}
	res.Header.Set("Content-Type", "text/html")
	res.SetBody("<!doctype html>")
}

func headRoot(_ *core.Request, res *core.Response) {
	res.Status = http.StatusOK
	res.Header.Set("Content-Type", "text/html")
}

func rawBytes(_ *core.Request, res *core.Response) {
	res.Header.Set("Content-Type", "application/octet-stream")
	res.Body = append([]byte(nil), zipHeader...)
}

func latin1(log *zap.Logger) core.HandlerFunc {
	return func(req *core.Request, res *core.Response) {
		b, err := codec.EncodeString("ISO-8859-1", "testæ")
		if err != nil {
			internalError(log, req, res, err)
			return
		}
		res.Header.Set("Content-Type", "text/plain; charset=ISO-8859-1")
		res.Body = b
	}
}

func cookies(req *core.Request, res *core.Response) {
	res.Header.Set("Set-Cookie", "foo=bar")
	lines := make([]string, 0, len(req.Cookies()))
	for _, c := range req.Cookies() {
		lines = append(lines, c.Name+": "+c.Value)
	}
	res.SetBody(strings.Join(lines, "\n"))
}
