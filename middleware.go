package tcphttp

import "context"

// Middleware gates a request before it is routed. Returning [CodeAccepted] passes the request on
// to the next middleware, any other code ends the chain and decides the response.
type Middleware interface {
	Handle(ctx context.Context, req *Request) Code
}

// MiddlewareFunc allow casting a function to implement [Middleware].
type MiddlewareFunc func(context.Context, *Request) Code

// Handle implements the [Middleware] interface.
func (f MiddlewareFunc) Handle(ctx context.Context, req *Request) Code {
	return f(ctx, req)
}

// BasicAuth returns a gate that only checks that an Authorization header line is present. The
// scheme and the credentials are not validated.
func BasicAuth() Middleware {
	return MiddlewareFunc(func(_ context.Context, req *Request) Code {
		if _, ok := req.Authorization(); !ok {
			return CodeUnauthorized
		}

		return CodeAccepted
	})
}
