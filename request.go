package tcphttp

import (
	"path"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/propagation"
)

// DefaultReadBufferSize is the size of the single read that is treated as the entire request.
const DefaultReadBufferSize = 1024

// authorizationToken is the literal first token of the header line the basic auth gate looks for.
const authorizationToken = "Authorization:"

var contentTypes = map[string]string{
	".html": "text/html",
	".js":   "application/javascript",
	".css":  "text/css",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".xml":  "application/xml",
}

// Request holds the raw text of one read from a client connection. Everything else is derived
// from it on demand, so middleware can inspect a request that would not parse.
type Request struct {
	raw string
}

// NewRequest wraps raw request text.
func NewRequest(raw string) *Request {
	return &Request{raw: raw}
}

// Raw returns the request text exactly as it was read.
func (r *Request) Raw() string { return r.raw }

// Method returns the first token of the request line.
func (r *Request) Method() (string, error) {
	method, _, err := requestLine(r.raw)
	return method, err
}

// Path returns the second token of the request line.
func (r *Request) Path() (string, error) {
	_, p, err := requestLine(r.raw)
	return p, err
}

// Route returns the first path segment, see [ExtractRoute].
func (r *Request) Route() (string, error) { return ExtractRoute(r.raw) }

// Resource returns the last path segment, see [ExtractResource].
func (r *Request) Resource() (string, error) { return ExtractResource(r.raw) }

// Authorization returns the tokens of the Authorization header line, see [AuthorizationTokens].
func (r *Request) Authorization() ([]string, bool) { return AuthorizationTokens(r.raw) }

// Header returns the trimmed value of the first header line with the given name. Names are
// compared case-insensitively and the scan stops at the blank line that ends the header block.
func (r *Request) Header(name string) (string, bool) {
	for _, line := range headerLines(r.raw) {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			break
		}

		key, val, ok := strings.Cut(line, ":")
		if ok && strings.EqualFold(strings.TrimSpace(key), name) {
			return strings.TrimSpace(val), true
		}
	}

	return "", false
}

// ExtractRoute returns the first path segment after the leading slash, up to the next slash. The
// route of "/" is the empty string.
func ExtractRoute(raw string) (string, error) {
	_, p, err := requestLine(raw)
	if err != nil {
		return "", err
	}

	route := p[1:]
	if idx := strings.IndexByte(route, '/'); idx >= 0 {
		route = route[:idx]
	}

	return route, nil
}

// ExtractResource returns everything after the final slash of the path. It is empty when the
// path ends in a slash or has no slash at all.
func ExtractResource(raw string) (string, error) {
	_, p, err := requestLine(raw)
	if err != nil {
		return "", err
	}

	idx := strings.LastIndexByte(p, '/')
	if idx < 0 {
		return "", nil
	}

	return p[idx+1:], nil
}

// ContentTypeOf maps the extension of a resource name to its content type, text/plain if unknown.
func ContentTypeOf(resource string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(resource))]; ok {
		return ct
	}

	return "text/plain"
}

// AuthorizationTokens scans the lines after the request line for one whose first whitespace
// delimited token is exactly "Authorization:" and returns all tokens of that line.
func AuthorizationTokens(raw string) ([]string, bool) {
	line, ok := lo.Find(headerLines(raw), func(l string) bool {
		fields := strings.Fields(l)
		return len(fields) > 0 && fields[0] == authorizationToken
	})
	if !ok {
		return nil, false
	}

	return strings.Fields(line), true
}

func requestLine(raw string) (method, target string, err error) {
	first, _, _ := strings.Cut(raw, "\n")

	fields := strings.Fields(first)
	if len(fields) < 2 {
		return "", "", NewError(CodeInternalServerError,
			errors.Wrapf(ErrMalformedRequestLine, "request line %q", first))
	}

	return fields[0], fields[1], nil
}

func headerLines(raw string) []string {
	_, rest, ok := strings.Cut(raw, "\n")
	if !ok {
		return nil
	}

	return strings.Split(rest, "\n")
}

// headerCarrier exposes the request's header lines to an otel propagator.
type headerCarrier struct{ req *Request }

var _ propagation.TextMapCarrier = headerCarrier{}

func (c headerCarrier) Get(key string) string {
	v, _ := c.req.Header(key)
	return v
}

func (c headerCarrier) Set(string, string) {}

func (c headerCarrier) Keys() []string {
	var keys []string
	for _, line := range headerLines(c.req.raw) {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			break
		}

		if key, _, ok := strings.Cut(line, ":"); ok {
			keys = append(keys, strings.ToLower(strings.TrimSpace(key)))
		}
	}

	return keys
}
