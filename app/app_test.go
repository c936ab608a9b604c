package app_test

import (
	"context"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/advdv/tcphttp"
	"github.com/advdv/tcphttp/app"
	"github.com/advdv/tcphttp/app/apptest"
	"github.com/carlmjohnson/requests"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func basicAuth(srv *tcphttp.Server) {
	srv.Use(tcphttp.BasicAuth())
}

func TestAppServesOverTCP(t *testing.T) {
	root := newContentRoot(t)
	writeFile(t, filepath.Join(root, "private", "secret.txt"), "secret")
	apptest.SetBaseEnv(t, root).Routes("private", " ")

	var srv *tcphttp.Server
	a := apptest.New[app.BaseEnvironment](t, basicAuth, app.WithFx(fx.Populate(&srv)))
	a.RequireStart()
	t.Cleanup(a.RequireStop)

	require.Equal(t, []string{"private"}, srv.Routes())

	base := "http://" + srv.Addr().String()
	client := &http.Client{
		Timeout:   5 * time.Second,
		Transport: &http.Transport{DisableKeepAlives: true},
	}
	ctx := context.Background()

	for _, tt := range []struct {
		name   string
		path   string
		auth   bool
		status int
		body   string
	}{
		{"stylesheet", "/static/app.css", true, http.StatusOK, appCSS},
		{"missing authorization", "/static/app.css", false, http.StatusUnauthorized, unauthorizedPage},
		{"missing file", "/static/nope.css", true, http.StatusNotFound, notFoundPage},
		{"route in table", "/private/secret.txt", true, http.StatusNotFound, notFoundPage},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var body string
			rb := requests.URL(base + tt.path).
				Client(client).
				CheckStatus(tt.status).
				ToString(&body)
			if tt.auth {
				rb = rb.Header("Authorization", "Basic dTpw")
			}

			require.NoError(t, rb.Fetch(ctx))
			require.Equal(t, clientBody(tt.body), body)
		})
	}
}

func TestAppReadsConfigurationFile(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)
	require.NoError(t, ln.Close())

	root := newContentRoot(t)
	file := filepath.Join(t.TempDir(), "Configuration.json")
	writeFile(t, file, `{"IpAddress": "127.0.0.1", "Port": "`+port+`"}`)
	apptest.SetBaseEnv(t, root).IPAddress("").Port("").ConfigFile(file)

	var srv *tcphttp.Server
	a := apptest.New[app.BaseEnvironment](t, basicAuth, app.WithFx(fx.Populate(&srv)))
	a.RequireStart()
	t.Cleanup(a.RequireStop)

	require.Equal(t, "127.0.0.1:"+port, srv.Addr().String())
}

func TestAppBindFailureFailsStart(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	apptest.SetBaseEnv(t, newContentRoot(t)).Port(strconv.Itoa(ln.Addr().(*net.TCPAddr).Port))

	a := app.NewApp[app.BaseEnvironment](basicAuth)
	require.NoError(t, a.Err())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.ErrorContains(t, a.Start(ctx), "listen on")
}

func TestAppConfigurationErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		set  func(*apptest.Env)
		want string
	}{
		{"port out of range", func(e *apptest.Env) { e.Port("65536") }, "invalid port number"},
		{"bad address", func(e *apptest.Env) { e.IPAddress("localhost") }, "invalid IP address"},
		{"unknown exporter", func(e *apptest.Env) { e.OtelExporter("zipkin") }, "unsupported TCPHTTP_OTEL_EXPORTER"},
		{"negative buffer", func(e *apptest.Env) { e.ReadBufferSize(-1) }, "invalid read buffer size"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			tt.set(apptest.SetBaseEnv(t, newContentRoot(t)))

			a := app.NewApp[app.BaseEnvironment](basicAuth)
			require.ErrorContains(t, a.Err(), tt.want)
		})
	}
}
