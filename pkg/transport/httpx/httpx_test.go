package httpx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatchAllRoutesEveryMethodAndPath(t *testing.T) {
	t.Parallel()

	r := NewChi()
	CatchAll(r, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = io.WriteString(w, req.Method+" "+req.URL.Path)
	}))

	cases := []struct{ method, target, want string }{
		{http.MethodGet, "/", "GET /"},
		{http.MethodPost, "/a/b/c", "POST /a/b/c"},
		{http.MethodHead, "/x", ""},
		{"PURGE", "/cache", "PURGE /cache"},
		{http.MethodGet, "/hello%20world", "GET /hello world"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(tc.method, tc.target, nil))
		assert.Equal(t, http.StatusOK, rec.Code, tc.target)
		if tc.method != http.MethodHead {
			assert.Equal(t, tc.want, rec.Body.String())
		}
	}
}

func TestConnContextAssignsOneIDPerConnection(t *testing.T) {
	t.Parallel()

	srv := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ci, ok := ConnFromContext(r.Context())
		if !ok {
			http.Error(w, "no conn", http.StatusInternalServerError)
			return
		}
		_, _ = io.WriteString(w, ci.ID)
	}))
	srv.Config.ConnContext = ConnContext
	srv.Start()
	defer srv.Close()

	get := func(c *http.Client) string {
		resp, err := c.Get(srv.URL)
		require.NoError(t, err)
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		return string(b)
	}

	client := srv.Client()
	first, second := get(client), get(client)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)

	fresh := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	a, b := get(fresh), get(fresh)
	assert.NotEqual(t, a, b)
	assert.False(t, strings.Contains(a, " "))
}

func TestConnFromContextMissing(t *testing.T) {
	_, ok := ConnFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithConn(context.Background(), ConnInfo{ID: "abc"})
	ci, ok := ConnFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "abc", ci.ID)
}
