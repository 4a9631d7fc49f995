package serverfx

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/joeydtaylor/steeze-dummy/pkg/manifest"
	"github.com/joeydtaylor/steeze-dummy/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

const doc = `
[handlers]
sleep = "10ms"

[logging]
console = false
files = false

[[route]]
method = "GET"
path = "/from-manifest"
body = "hi"
`

func TestModuleStartsAndStopsServer(t *testing.T) {
	p := filepath.Join(t.TempDir(), "dummy.toml")
	require.NoError(t, os.WriteFile(p, []byte(doc), 0o644))

	var s *server.Server
	app := fxtest.New(t,
		Module(
			WithConfigPath(p),
			WithOverride(func(c *manifest.Config) { c.Server.Host = "127.0.0.1" }),
		),
		fx.Populate(&s),
	)
	app.RequireStart()

	res, err := http.Get(s.URL() + "/from-manifest")
	require.NoError(t, err)
	b, _ := io.ReadAll(res.Body)
	_ = res.Body.Close()
	assert.Equal(t, "hi", string(b))

	res, err = http.Get(s.URL() + "/proxy")
	require.NoError(t, err)
	b, _ = io.ReadAll(res.Body)
	_ = res.Body.Close()
	assert.Equal(t, "Proxy!", string(b))

	app.RequireStop()
	assert.Empty(t, s.Sockets().Entries())
}

func TestModuleRejectsInvalidOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "dummy.toml")
	require.NoError(t, os.WriteFile(p, []byte(doc), 0o644))

	app := fx.New(
		Module(
			WithConfigPath(p),
			WithOverride(func(c *manifest.Config) { c.Server.Port = 99999 }),
		),
		fx.Invoke(func(*server.Server) {}),
	)
	assert.Error(t, app.Err())
}

func TestModuleMissingManifest(t *testing.T) {
	app := fx.New(
		Module(WithConfigPath(filepath.Join(t.TempDir(), "nope.toml"))),
		fx.Invoke(func(*server.Server) {}),
	)
	assert.Error(t, app.Err())
}
