package tcphttp

import (
	"fmt"
	"unicode/utf8"
)

// responseTemplate is the wire layout of every response. The space after the blank line is
// part of the format and is not included in Content-Length.
const responseTemplate = "HTTP/1.1 %s\r\n" +
	"Content-Type:%s\r\n" +
	"Content-Length:%d\r\n" +
	"\r\n %s"

// Response is what the router decided to answer with.
type Response struct {
	Code        Code
	ContentType string
	Body        string
}

// ResponseBuilder serializes responses and logs each one it produces.
type ResponseBuilder struct {
	logs Logger
}

// NewResponseBuilder inits the builder.
func NewResponseBuilder(logs Logger) *ResponseBuilder {
	return &ResponseBuilder{logs: logs}
}

// Build formats the status line, headers and body. Content-Length is the number of characters
// in body, which only equals the byte count for ASCII bodies.
func (b *ResponseBuilder) Build(contentType, body string, c Code) []byte {
	formatted := fmt.Sprintf(responseTemplate, StatusPhrase(c), contentType, utf8.RuneCountInString(body), body)
	b.logs.LogResponse(formatted)

	return []byte(formatted)
}

// BuildResponse is a shorthand for building resp.
func (b *ResponseBuilder) BuildResponse(resp Response) []byte {
	return b.Build(resp.ContentType, resp.Body, resp.Code)
}
