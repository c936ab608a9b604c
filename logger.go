package tcphttp

import (
	"log"
	"net"
	"sync/atomic"
	"testing"
)

// Logger can be implemented to get informed about important states.
type Logger interface {
	LogStarted(addr net.Addr)
	LogStopped()
	LogRequest(raw string)
	LogResponse(formatted string)
	LogConnError(err error)
	LogErrorPageFailure(err error)
	LogUnmappedOutcome(c Code)
	LogAcceptError(err error)
}

type stdLogger struct{ *log.Logger }

func (l stdLogger) LogStarted(addr net.Addr) {
	l.Logger.Printf("tcphttp: server started on %s", addr)
}

func (l stdLogger) LogStopped() {
	l.Logger.Printf("tcphttp: server stopped")
}

func (l stdLogger) LogRequest(raw string) {
	l.Logger.Printf("tcphttp: request:\n%s", raw)
}

func (l stdLogger) LogResponse(formatted string) {
	l.Logger.Printf("tcphttp: response:\n%s", formatted)
}

func (l stdLogger) LogConnError(err error) {
	l.Logger.Printf("tcphttp: error while handling connection: %s", err)
}

func (l stdLogger) LogErrorPageFailure(err error) {
	l.Logger.Printf("tcphttp: error sending error response: %s", err)
}

func (l stdLogger) LogUnmappedOutcome(c Code) {
	l.Logger.Printf("tcphttp: middleware outcome %d has no response, closing connection", c)
}

func (l stdLogger) LogAcceptError(err error) {
	l.Logger.Printf("tcphttp: error while accepting connection: %s", err)
}

func NewStdLogger(l *log.Logger) Logger {
	return stdLogger{l}
}

type TestLogger struct {
	tb testing.TB

	NumLogRequest           int64
	NumLogResponse          int64
	NumLogConnError         int64
	NumLogErrorPageFailure  int64
	NumLogUnmappedOutcome   int64
	NumLogAcceptError       int64
	NumLogStartedAndStopped int64
}

func NewTestLogger(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (l *TestLogger) LogStarted(addr net.Addr) {
	atomic.AddInt64(&l.NumLogStartedAndStopped, 1)
	l.tb.Logf("tcphttp: server started on %s", addr)
}

func (l *TestLogger) LogStopped() {
	atomic.AddInt64(&l.NumLogStartedAndStopped, 1)
	l.tb.Logf("tcphttp: server stopped")
}

func (l *TestLogger) LogRequest(raw string) {
	atomic.AddInt64(&l.NumLogRequest, 1)
	l.tb.Logf("tcphttp: request:\n%s", raw)
}

func (l *TestLogger) LogResponse(formatted string) {
	atomic.AddInt64(&l.NumLogResponse, 1)
	l.tb.Logf("tcphttp: response:\n%s", formatted)
}

func (l *TestLogger) LogConnError(err error) {
	atomic.AddInt64(&l.NumLogConnError, 1)
	l.tb.Logf("tcphttp: error while handling connection: %s", err)
}

func (l *TestLogger) LogErrorPageFailure(err error) {
	atomic.AddInt64(&l.NumLogErrorPageFailure, 1)
	l.tb.Logf("tcphttp: error sending error response: %s", err)
}

func (l *TestLogger) LogUnmappedOutcome(c Code) {
	atomic.AddInt64(&l.NumLogUnmappedOutcome, 1)
	l.tb.Logf("tcphttp: middleware outcome %d has no response, closing connection", c)
}

func (l *TestLogger) LogAcceptError(err error) {
	atomic.AddInt64(&l.NumLogAcceptError, 1)
	l.tb.Logf("tcphttp: error while accepting connection: %s", err)
}

var _ Logger = &TestLogger{}
