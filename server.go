package tcphttp

import (
	"context"
	"io"
	"log"
	"net"
	"net/netip"
	"strconv"
	"sync"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	htmlContentType = "text/html"
	tracerName      = "github.com/advdv/tcphttp"
)

var errNotStarted = errors.Mark(errors.New("server has not been started"), ErrSocket)

// ServerOptions holds the optional dependencies of a [Server]. Zero values are replaced by defaults.
type ServerOptions struct {
	// ReadBufferSize is the size of the one read that makes up a request. Defaults to
	// [DefaultReadBufferSize].
	ReadBufferSize int
	// Logger defaults to a std logger on log.Default().
	Logger Logger
	// TracerProvider defaults to a no-op provider.
	TracerProvider trace.TracerProvider
	// Propagator extracts trace context from request headers. Defaults to W3C trace context.
	Propagator propagation.TextMapPropagator
}

// Server accepts connections one at a time and answers each with a single response. Routes and
// middleware are registered before Start and are read-only afterwards.
type Server struct {
	endpoint   netip.AddrPort
	bufSize    int
	logs       Logger
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
	builder    *ResponseBuilder
	pages      *Pages
	router     *Router
	chain      *Chain

	mu       sync.Mutex
	listener net.Listener
	started  bool
}

// NewServer creates a server with default options.
func NewServer(ipAddress, port, contentRoot string) (*Server, error) {
	return NewServerWith(ipAddress, port, contentRoot, ServerOptions{})
}

// NewServerWith validates the endpoint and creates a server. Invalid input is reported as an
// error marked with [ErrConfiguration].
func NewServerWith(ipAddress, port, contentRoot string, opts ServerOptions) (*Server, error) {
	endpoint, err := ParseEndpoint(ipAddress, port)
	if err != nil {
		return nil, err
	}

	if contentRoot == "" {
		return nil, errors.Mark(errors.New("content root must not be empty"), ErrConfiguration)
	}

	if opts.ReadBufferSize == 0 {
		opts.ReadBufferSize = DefaultReadBufferSize
	}

	if opts.ReadBufferSize < 0 {
		return nil, errors.Mark(errors.Newf("invalid read buffer size: %d", opts.ReadBufferSize), ErrConfiguration)
	}

	if opts.Logger == nil {
		opts.Logger = NewStdLogger(log.Default())
	}

	if opts.TracerProvider == nil {
		opts.TracerProvider = noop.NewTracerProvider()
	}

	if opts.Propagator == nil {
		opts.Propagator = propagation.TraceContext{}
	}

	pages := NewPages(contentRoot)

	return &Server{
		endpoint:   endpoint,
		bufSize:    opts.ReadBufferSize,
		logs:       opts.Logger,
		tracer:     opts.TracerProvider.Tracer(tracerName),
		propagator: opts.Propagator,
		builder:    NewResponseBuilder(opts.Logger),
		pages:      pages,
		router:     NewRouter(pages, NewResolver(contentRoot, pages)),
		chain:      NewChain(),
	}, nil
}

// ParseEndpoint validates an IPv4 or IPv6 address and a port between 0 and 65535.
func ParseEndpoint(ipAddress, port string) (netip.AddrPort, error) {
	p, err := strconv.Atoi(port)
	if err != nil || p < 0 || p > 65535 {
		return netip.AddrPort{}, errors.Mark(errors.Newf(
			"invalid port number %q: port must be a valid integer between 0 and 65535", port), ErrConfiguration)
	}

	addr, err := netip.ParseAddr(ipAddress)
	if err != nil {
		return netip.AddrPort{}, errors.Mark(errors.Wrapf(err, "invalid IP address %q", ipAddress), ErrConfiguration)
	}

	return netip.AddrPortFrom(addr, uint16(p)), nil
}

// Use appends middleware to the chain.
func (s *Server) Use(m ...Middleware) {
	s.ensureNotStarted("Use")
	s.chain.Use(m...)
}

// AddRoute registers a route name in the route table.
func (s *Server) AddRoute(name string) {
	s.ensureNotStarted("AddRoute")
	s.router.AddRoute(name)
}

// Routes returns the registered route names.
func (s *Server) Routes() []string { return s.router.Routes() }

// Endpoint returns the validated endpoint the server binds to.
func (s *Server) Endpoint() netip.AddrPort { return s.endpoint }

// Addr returns the address of the listener, nil when not listening.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

// Start binds the endpoint. Failures are marked with [ErrSocket].
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return errors.Mark(errors.New("server already started"), ErrSocket)
	}

	ln, err := net.Listen("tcp", s.endpoint.String())
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "listen on %s", s.endpoint), ErrSocket)
	}

	s.listener, s.started = ln, true
	s.logs.LogStarted(ln.Addr())

	return nil
}

// Stop releases the listener.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return errNotStarted
	}

	err := s.listener.Close()
	s.listener = nil
	if err != nil {
		return errors.Mark(errors.Wrap(err, "close listener"), ErrSocket)
	}

	s.logs.LogStopped()

	return nil
}

// Accept blocks until a client connects.
func (s *Server) Accept(ctx context.Context) (net.Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()

	if ln == nil {
		return nil, errNotStarted
	}

	conn, err := ln.Accept()
	if err != nil {
		return nil, errors.Wrap(err, "accept")
	}

	return conn, nil
}

// Serve accepts and handles connections one after the other until ctx is cancelled or the
// server is stopped. Cancelling ctx stops the server. A failing connection never ends the loop.
func (s *Server) Serve(ctx context.Context) error {
	defer context.AfterFunc(ctx, func() { _ = s.Stop() })()

	for {
		conn, err := s.Accept(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, errNotStarted) || errors.Is(err, net.ErrClosed) {
				return nil
			}

			s.logs.LogAcceptError(err)
			continue
		}

		s.HandleConn(ctx, conn)
	}
}

// HandleConn reads one request from conn, answers it and closes conn on every path.
func (s *Server) HandleConn(ctx context.Context, conn net.Conn) {
	defer s.closeConn(conn)

	raw, err := s.read(conn)
	if err != nil {
		s.fail(conn, err)
		return
	}

	req := NewRequest(raw)
	ctx = s.propagator.Extract(ctx, headerCarrier{req})
	ctx, span := s.tracer.Start(ctx, "tcphttp.conn",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("net.peer.addr", addrString(conn.RemoteAddr()))))
	defer span.End()

	code, err := s.serve(ctx, conn, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.fail(conn, err)

		return
	}

	span.SetAttributes(attribute.Int("tcphttp.outcome", int(code)))
}

func (s *Server) serve(ctx context.Context, conn net.Conn, req *Request) (Code, error) {
	s.logs.LogRequest(req.Raw())

	if accepted, outcome := s.chain.Run(ctx, req); !accepted {
		s.respondOutcome(conn, outcome)
		return outcome, nil
	}

	resp, err := s.router.Route(ctx, req)
	if err != nil {
		return CodeUnknown, err
	}

	if err := s.write(conn, s.builder.BuildResponse(resp)); err != nil {
		return resp.Code, err
	}

	return resp.Code, nil
}

// respondOutcome answers a request the chain stopped. Outcomes without an error page are not
// answered at all.
func (s *Server) respondOutcome(conn net.Conn, outcome Code) {
	if _, ok := pageForCode(outcome); !ok {
		s.logs.LogUnmappedOutcome(outcome)
		return
	}

	if err := s.sendPage(conn, outcome); err != nil {
		s.logs.LogErrorPageFailure(err)
	}
}

// fail logs err and makes a best-effort attempt at sending the matching error page.
func (s *Server) fail(conn net.Conn, err error) {
	s.logs.LogConnError(err)

	code := CodeOf(err)
	if _, ok := pageForCode(code); !ok {
		code = CodeInternalServerError
	}

	if err := s.sendPage(conn, code); err != nil {
		s.logs.LogErrorPageFailure(err)
	}
}

func (s *Server) sendPage(conn net.Conn, c Code) error {
	name, _ := pageForCode(c)

	body, err := s.pages.Load(name)
	if err != nil {
		return err
	}

	return s.write(conn, s.builder.Build(htmlContentType, body, c))
}

func (s *Server) read(conn net.Conn) (string, error) {
	buf := make([]byte, s.bufSize)

	n, err := conn.Read(buf)
	if err != nil && (n == 0 || !errors.Is(err, io.EOF)) {
		return "", errors.Wrap(err, "read request")
	}

	return string(buf[:n]), nil
}

func (s *Server) write(conn net.Conn, b []byte) error {
	if _, err := conn.Write(b); err != nil {
		return errors.Wrap(err, "write response")
	}

	return nil
}

func (s *Server) closeConn(conn net.Conn) {
	if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		s.logs.LogConnError(errors.Wrap(err, "close connection"))
	}
}

func (s *Server) ensureNotStarted(method string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		panic("tcphttp: cannot call " + method + "() after Start")
	}
}

func addrString(a net.Addr) string {
	if a == nil {
		return ""
	}

	return a.String()
}
