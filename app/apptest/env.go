package apptest

import (
	"strconv"
	"strings"
	"testing"
)

// Env provides a chainable builder for setting [app.BaseEnvironment] env vars
// via t.Setenv. Create one with [SetBaseEnv].
type Env struct {
	t testing.TB
}

// SetBaseEnv sets all [app.BaseEnvironment] env vars to sensible test defaults.
// The content root is required because each test brings its own pages.
//
// Defaults:
//   - TCPHTTP_IP_ADDRESS: "127.0.0.1"
//   - TCPHTTP_PORT: "0", so the listener picks a free port
//   - TCPHTTP_ROUTES: ""
//   - TCPHTTP_LOG_LEVEL: "error"
//   - TCPHTTP_OTEL_EXPORTER: "none"
//   - TCPHTTP_SERVICE_NAME: "test"
//
// Use the returned [Env] to override individual values:
//
//	apptest.SetBaseEnv(t, root).Port("18081").ReadBufferSize(64)
func SetBaseEnv(t testing.TB, contentRoot string) *Env {
	t.Helper()
	t.Setenv("TCPHTTP_IP_ADDRESS", "127.0.0.1")
	t.Setenv("TCPHTTP_PORT", "0")
	t.Setenv("TCPHTTP_CONTENT_ROOT", contentRoot)
	t.Setenv("TCPHTTP_ROUTES", "")
	t.Setenv("TCPHTTP_LOG_LEVEL", "error")
	t.Setenv("TCPHTTP_OTEL_EXPORTER", "none")
	t.Setenv("TCPHTTP_SERVICE_NAME", "test")
	return &Env{t: t}
}

// IPAddress overrides TCPHTTP_IP_ADDRESS.
func (e *Env) IPAddress(ip string) *Env {
	e.t.Helper()
	e.t.Setenv("TCPHTTP_IP_ADDRESS", ip)
	return e
}

// Port overrides TCPHTTP_PORT.
func (e *Env) Port(port string) *Env {
	e.t.Helper()
	e.t.Setenv("TCPHTTP_PORT", port)
	return e
}

// ConfigFile overrides TCPHTTP_CONFIG_FILE.
func (e *Env) ConfigFile(path string) *Env {
	e.t.Helper()
	e.t.Setenv("TCPHTTP_CONFIG_FILE", path)
	return e
}

// Routes overrides TCPHTTP_ROUTES.
func (e *Env) Routes(names ...string) *Env {
	e.t.Helper()
	e.t.Setenv("TCPHTTP_ROUTES", strings.Join(names, ","))
	return e
}

// ReadBufferSize overrides TCPHTTP_READ_BUFFER_SIZE.
func (e *Env) ReadBufferSize(n int) *Env {
	e.t.Helper()
	e.t.Setenv("TCPHTTP_READ_BUFFER_SIZE", strconv.Itoa(n))
	return e
}

// OtelExporter overrides TCPHTTP_OTEL_EXPORTER.
func (e *Env) OtelExporter(name string) *Env {
	e.t.Helper()
	e.t.Setenv("TCPHTTP_OTEL_EXPORTER", name)
	return e
}
