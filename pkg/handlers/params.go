package handlers

import (
	"net/http"
	"net/url"

	"github.com/joeydtaylor/steeze-dummy/pkg/core"
)

const (
	passed  = "passed :)"
	invalid = "invalid! >:E"
)

var wantMultiple = url.Values{"foo": {"bar"}, "baz": {"quux"}}

func params(req *core.Request, res *core.Response) {
	if req.URL.RawQuery != "foo=bar" {
		core.NotFound(req, res)
		return
	}
	res.Status = http.StatusOK
	res.SetBody("Params!")
}

func multipleParams(req *core.Request, res *core.Response) {
	got, err := url.ParseQuery(req.URL.RawQuery)
	if err != nil || !sameValues(got, wantMultiple) {
		core.NotFound(req, res)
		return
	}
	res.Status = http.StatusOK
	res.SetBody("More Params!")
}

func sameValues(a, b url.Values) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
	}
	return true
}

// form reads "example" from a url-encoded or multipart body, falling back to
// the query string.
func form(req *core.Request, res *core.Response) {
	if req.FormValue("example") == "testing-form" {
		res.Status = http.StatusOK
		res.SetBody(passed)
		return
	}
	res.Status = http.StatusBadRequest
	res.SetBody(invalid)
}

func body(req *core.Request, res *core.Response) {
	if string(req.Body) == "testing-body" {
		res.Status = http.StatusOK
		res.SetBody(passed)
		return
	}
	res.Status = http.StatusBadRequest
	res.SetBody(invalid)
}
