package app

import (
	"net"

	"github.com/advdv/tcphttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a zap logger configured from the environment.
// TCPHTTP_LOG_LEVEL controls the level (debug, info, warn, error). Request and response dumps
// are logged at debug.
func NewLogger(env Environment) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(env.logLevel())
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

type zapLogger struct{ *zap.Logger }

func (l zapLogger) LogStarted(addr net.Addr) {
	l.Logger.Info("server started", zap.Stringer("addr", addr))
}

func (l zapLogger) LogStopped() {
	l.Logger.Info("server stopped")
}

func (l zapLogger) LogRequest(raw string) {
	l.Logger.Debug("request", zap.String("raw", raw))
}

func (l zapLogger) LogResponse(formatted string) {
	l.Logger.Debug("response", zap.String("raw", formatted))
}

func (l zapLogger) LogConnError(err error) {
	l.Logger.Error("connection error", zap.Error(err))
}

func (l zapLogger) LogErrorPageFailure(err error) {
	l.Logger.Error("failed to send error page", zap.Error(err))
}

func (l zapLogger) LogUnmappedOutcome(c tcphttp.Code) {
	l.Logger.Warn("middleware outcome has no response, closing without reply", zap.Int("outcome", int(c)))
}

func (l zapLogger) LogAcceptError(err error) {
	l.Logger.Error("failed to accept connection", zap.Error(err))
}

func newZapServerLogger(l *zap.Logger) tcphttp.Logger {
	return zapLogger{l.Named("tcphttp").Named("server")}
}
