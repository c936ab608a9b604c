package app

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// App wraps an fx.App for lifecycle management.
type App struct {
	app *fx.App
}

// AppConfig holds configuration for the app.
type AppConfig struct {
	FxOptions []fx.Option
}

// Option configures the App.
type Option func(*AppConfig)

// WithFx adds fx options for dependency injection.
func WithFx(fxOpts ...fx.Option) Option {
	return func(c *AppConfig) {
		c.FxOptions = append(c.FxOptions, fxOpts...)
	}
}

// FxOptions returns the options that make up the dependency graph of an app. The setup function
// may request any provided type, at minimum *tcphttp.Server to register middleware and routes.
func FxOptions[E Environment](setup any, opts ...Option) []fx.Option {
	var cfg AppConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	baseOpts := make([]fx.Option, 0, 10+len(cfg.FxOptions))
	baseOpts = append(baseOpts, []fx.Option{
		fx.NopLogger,
		fx.Provide(ParseEnv[E]()),
		fx.Provide(func(e E) Environment { return e }),
		fx.Provide(func(e E) (*zap.Logger, error) { return NewLogger(e) }),
		fx.Provide(NewTracerProvider),
		fx.Provide(NewPropagator),
		fx.Provide(NewServer),
		fx.Invoke(startServerHook),
		fx.Invoke(setup),
	}...)

	return append(baseOpts, cfg.FxOptions...)
}

// NewApp creates an app that serves until interrupted.
//
// Example:
//
//	app.NewApp[app.BaseEnvironment](func(srv *tcphttp.Server) {
//	    srv.Use(tcphttp.BasicAuth())
//	}).Run()
func NewApp[E Environment](setup any, opts ...Option) *App {
	return &App{
		app: fx.New(FxOptions[E](setup, opts...)...),
	}
}

// Run starts the application and blocks until interrupted. A failure to start, such as an
// endpoint that cannot be bound, exits the process with a non-zero status.
func (a *App) Run() {
	a.app.Run()
}

// Start starts the application with the given context and stops it when ctx is done.
func (a *App) Start(ctx context.Context) error {
	if err := a.app.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), a.app.StopTimeout())
	defer cancel()

	return a.app.Stop(stopCtx)
}

// Err returns any error encountered while building the dependency graph.
func (a *App) Err() error {
	return a.app.Err()
}
