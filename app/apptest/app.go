// Package apptest provides test helpers for app-based servers.
//
// It constructs the identical DI graph as [app.NewApp] but uses
// [fxtest.App] which fails the test immediately on DI errors.
//
// Example:
//
//	apptest.SetBaseEnv(t, root).Routes("admin")
//	a := apptest.New[app.BaseEnvironment](t, setup, app.WithFx(fx.Populate(&srv)))
//	a.RequireStart()
//	t.Cleanup(a.RequireStop)
package apptest

import (
	"testing"

	"github.com/advdv/tcphttp/app"
	"go.uber.org/fx/fxtest"
)

// App embeds *fxtest.App for testing apps.
type App struct {
	*fxtest.App
}

// New creates a test app with the same DI graph as [app.NewApp].
func New[E app.Environment](t testing.TB, setup any, opts ...app.Option) *App {
	return &App{App: fxtest.New(t, app.FxOptions[E](setup, opts...)...)}
}
