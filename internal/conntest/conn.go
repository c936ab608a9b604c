// Package conntest provides an in-memory net.Conn for testing connection handling.
package conntest

import (
	"bytes"
	"net"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
)

// Addr is a fixed net.Addr.
type Addr string

func (a Addr) Network() string { return "conntest" }
func (a Addr) String() string  { return string(a) }

// Conn serves reads from a fixed input and captures everything written to it.
type Conn struct {
	mu       sync.Mutex
	in       *bytes.Reader
	out      bytes.Buffer
	readErr  error
	writeErr error
	closed   int
}

var _ net.Conn = &Conn{}

// New inits a conn that yields input to the reader.
func New(input string) *Conn {
	return &Conn{in: bytes.NewReader([]byte(input))}
}

// FailRead makes every read return err.
func (c *Conn) FailRead(err error) *Conn {
	c.readErr = err
	return c
}

// FailWrite makes every write return err.
func (c *Conn) FailWrite(err error) *Conn {
	c.writeErr = err
	return c
}

func (c *Conn) Read(b []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed > 0 {
		return 0, net.ErrClosed
	}

	if c.readErr != nil {
		return 0, c.readErr
	}

	return c.in.Read(b)
}

func (c *Conn) Write(b []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed > 0 {
		return 0, net.ErrClosed
	}

	if c.writeErr != nil {
		return 0, c.writeErr
	}

	return c.out.Write(b)
}

func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed++
	if c.closed > 1 {
		return errors.Wrap(net.ErrClosed, "conntest: close")
	}

	return nil
}

// Written returns everything written so far.
func (c *Conn) Written() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.out.String()
}

// Closed reports whether Close was called.
func (c *Conn) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closed > 0
}

func (c *Conn) LocalAddr() net.Addr                { return Addr("(server)") }
func (c *Conn) RemoteAddr() net.Addr               { return Addr("(client)") }
func (c *Conn) SetDeadline(t time.Time) error      { return nil }
func (c *Conn) SetReadDeadline(t time.Time) error  { return nil }
func (c *Conn) SetWriteDeadline(t time.Time) error { return nil }
