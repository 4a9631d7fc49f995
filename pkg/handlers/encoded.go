package handlers

import (
	"net/http"

	"github.com/joeydtaylor/steeze-dummy/pkg/codec"
	"github.com/joeydtaylor/steeze-dummy/pkg/core"
	"go.uber.org/zap"
)

func echoBody(req *core.Request, res *core.Response) {
	res.Status = http.StatusOK
	res.Body = append([]byte(nil), req.Body...)
}

// encodedBody answers with the request body plus a suffix naming the encoding
// applied: -gzipped, -deflated, or -raw when Accept-Encoding names neither.
func encodedBody(log *zap.Logger) core.HandlerFunc {
	return func(req *core.Request, res *core.Response) {
		res.Status = http.StatusOK

		enc, ok := codec.ForAcceptEncoding(req.Header.Get("Accept-Encoding"))
		if !ok {
			res.SetBody(string(req.Body) + "-raw")
			return
		}

		suffix := "-gzipped"
		if enc == codec.Deflate {
			suffix = "-deflated"
		}
		out, err := enc.Encode(append(append([]byte(nil), req.Body...), suffix...))
		if err != nil {
			internalError(log, req, res, err)
			return
		}
		res.Header.Set("Content-Encoding", enc.ContentEncoding())
		res.Body = out
	}
}

// noContent declares an encoding for a body that is never sent.
func noContent(req *core.Request, res *core.Response) {
	res.Status = http.StatusNoContent
	res.Body = nil
	if enc, ok := codec.ForAcceptEncoding(req.Header.Get("Accept-Encoding")); ok {
		res.Header.Set("Content-Encoding", enc.ContentEncoding())
	}
}
