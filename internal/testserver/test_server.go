package testserver

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rpggio/flick/internal/app"
	"github.com/rpggio/flick/internal/config"
	"github.com/stretchr/testify/require"
)

// TestServer runs the full HTTP surface of an App on a local listener.
type TestServer struct {
	Server *httptest.Server
	App    *app.App
}

// New starts an unseeded server. Pass a config modifier to change that.
func New(t *testing.T, configure ...func(*config.Config)) *TestServer {
	t.Helper()

	cfg := config.Default()
	cfg.Seed.Enabled = false
	for _, fn := range configure {
		fn(&cfg)
	}

	a, err := app.New(context.Background(), cfg)
	require.NoError(t, err)

	server := httptest.NewServer(a.Handler())

	t.Cleanup(func() {
		server.Close()
		_ = a.Close()
	})

	return &TestServer{Server: server, App: a}
}

// URL returns the absolute URL of path on the test server.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}
