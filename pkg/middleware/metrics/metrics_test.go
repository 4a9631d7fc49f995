package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectCountsByRouteLabel(t *testing.T) {
	label := func(r *http.Request) string {
		if r.URL.Path == "/known" {
			return "/known"
		}
		return Unmatched
	}
	h := Collect(WithRouteLabel(label))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/known" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))

	known := totalHttpRequestsToRoute.WithLabelValues("200", "/known", "GET")
	missed := totalHttpRequestsToRoute.WithLabelValues("404", Unmatched, "POST")
	beforeKnown, beforeMissed := testutil.ToFloat64(known), testutil.ToFloat64(missed)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/known", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/a/b/c", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/d", nil))

	assert.Equal(t, beforeKnown+1, testutil.ToFloat64(known))
	assert.Equal(t, beforeMissed+2, testutil.ToFloat64(missed))
}

func TestCollectDefaultsToUnmatched(t *testing.T) {
	c := totalHttpRequestsToRoute.WithLabelValues("200", Unmatched, "HEAD")
	before := testutil.ToFloat64(c)

	Collect(WithRouteLabel(nil))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodHead, "/x", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestObserveMiss(t *testing.T) {
	before := testutil.ToFloat64(routeMisses)
	ObserveMiss()
	assert.Equal(t, before+1, testutil.ToFloat64(routeMisses))
}

func TestPromHandlerExposesCollectors(t *testing.T) {
	ObserveMiss()
	rec := httptest.NewRecorder()
	NewPromHttpHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	b, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "route_misses_total"))
}
