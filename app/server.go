package app

import (
	"context"

	"github.com/advdv/tcphttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ServerParams holds the dependencies for creating the server.
type ServerParams struct {
	fx.In

	Env        Environment
	Logger     *zap.Logger
	TracerProv trace.TracerProvider
	Propagator propagation.TextMapPropagator
}

// NewServer creates the server from the environment and registers the configured routes.
// Middleware is added by the setup function passed to [NewApp].
func NewServer(params ServerParams) (*tcphttp.Server, error) {
	ep, err := ResolveEndpoint(params.Env)
	if err != nil {
		return nil, err
	}

	root, err := contentRoot(params.Env)
	if err != nil {
		return nil, err
	}

	srv, err := tcphttp.NewServerWith(ep.IPAddress, ep.Port, root, tcphttp.ServerOptions{
		ReadBufferSize: params.Env.readBufferSize(),
		Logger:         newZapServerLogger(params.Logger),
		TracerProvider: params.TracerProv,
		Propagator:     params.Propagator,
	})
	if err != nil {
		return nil, err
	}

	for _, route := range params.Env.routes() {
		srv.AddRoute(route)
	}

	return srv, nil
}

// startServerHook binds the server on start, so a bind failure fails the app, and serves
// connections in the background until stop.
func startServerHook(lc fx.Lifecycle, srv *tcphttp.Server, logger *zap.Logger) {
	var (
		cancel context.CancelFunc
		done   = make(chan struct{})
	)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := srv.Start(); err != nil {
				return err
			}

			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())

			logger.Info("serving", zap.Stringer("addr", srv.Addr()))
			go func() {
				defer close(done)
				if err := srv.Serve(ctx); err != nil {
					logger.Error("server error", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			cancel()

			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
