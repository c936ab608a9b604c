package tcphttp

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Code is an outcome code produced by middleware and by the router. It mirrors the http status codes
// the server is able to put on the wire, plus [CodeAccepted] which middleware uses to pass a request on.
type Code int

const (
	CodeUnknown             Code = 0
	CodeOK                  Code = http.StatusOK                  // RFC 9110, 15.3.1
	CodeAccepted            Code = http.StatusAccepted            // continue signal, never written
	CodeUnauthorized        Code = http.StatusUnauthorized        // RFC 9110, 15.5.2
	CodeNotFound            Code = http.StatusNotFound            // RFC 9110, 15.5.5
	CodeInternalServerError Code = http.StatusInternalServerError // RFC 9110, 15.6.1
)

var (
	// ErrConfiguration marks errors caused by an invalid endpoint configuration.
	ErrConfiguration = errors.New("configuration error")
	// ErrSocket marks errors caused by binding or listening on the endpoint.
	ErrSocket = errors.New("socket error")
	// ErrMalformedRequestLine is returned when the first request line has less than two tokens.
	ErrMalformedRequestLine = errors.New("malformed request line")
)

// StatusPhrase returns the status line text for the code. Codes that are never put on the
// wire map to the empty string.
func StatusPhrase(c Code) string {
	switch c {
	case CodeOK:
		return "200 OK"
	case CodeNotFound:
		return "404 Not Found"
	case CodeUnauthorized:
		return "401 Unauthorized"
	case CodeInternalServerError:
		return "500 Internal Server Error"
	default:
		return ""
	}
}

// Error describes a failure that carries the outcome code it should be answered with.
type Error struct {
	code Code
	err  error
}

// NewError inits a new error given the outcome code.
func NewError(c Code, underlying error) *Error {
	return &Error{c, underlying}
}

func (e *Error) Code() Code    { return e.code }
func (e *Error) Unwrap() error { return e.err }
func (e *Error) Error() string {
	status := http.StatusText(int(e.Code()))
	if status == "" {
		status = "Unknown"
	}

	return fmt.Sprintf("%s: %s", status, e.err.Error())
}

// CodeOf returns the error's outcome code if it is or wraps an [*Error] and
// [CodeUnknown] otherwise.
func CodeOf(err error) Code {
	if codedErr, ok := asError(err); ok {
		return codedErr.Code()
	}
	return CodeUnknown
}

// asError uses errors.As to unwrap any error and look for a coded *Error.
func asError(err error) (*Error, bool) {
	var codedErr *Error
	ok := errors.As(err, &codedErr)
	return codedErr, ok
}
