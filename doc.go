// Package tcphttp provides a minimal HTTP/1.1 server built directly on TCP connections.
//
// # Overview
//
// tcphttp serves static files from a content root without using net/http. Every connection
// goes through the same pipeline:
//
//	accept -> read -> middleware chain -> router -> response builder -> write -> close
//
// A minimal example:
//
//	srv, err := tcphttp.NewServer("127.0.0.1", "8080", "/var/www")
//	if err != nil {
//	    return err // marked with tcphttp.ErrConfiguration
//	}
//
//	srv.Use(tcphttp.BasicAuth())
//	if err := srv.Start(); err != nil {
//	    return err // marked with tcphttp.ErrSocket
//	}
//
//	return srv.Serve(ctx)
//
// # Connections
//
// The server handles exactly one connection at a time. A single read of at most
// [DefaultReadBufferSize] bytes is treated as the entire request, there is no keep-alive, no
// request body and no TLS. The connection is closed after the response is written, also when
// handling it failed.
//
// # Middleware
//
// [Middleware] gates a request before it is routed and returns an outcome [Code]:
//
//   - [CodeAccepted] passes the request on to the next middleware
//   - [CodeUnauthorized], [CodeNotFound], [CodeInternalServerError] stop the chain and send the
//     matching error page
//   - any other code stops the chain and nothing is written to the connection
//
// Middleware is added with [Server.Use] and runs in the order it was added:
//
//	srv.Use(tcphttp.MiddlewareFunc(func(ctx context.Context, req *tcphttp.Request) tcphttp.Code {
//	    if method, _ := req.Method(); method != "GET" {
//	        return tcphttp.CodeNotFound
//	    }
//	    return tcphttp.CodeAccepted
//	}))
//
// # Routing
//
// The first path segment of the request is its route and the last segment its resource. The
// file contentRoot/route/resource is served with a content type derived from the resource
// extension. Routes added with [Server.AddRoute] are answered with the not-found page, whether
// or not a matching file exists.
//
// # Error Pages
//
// Error responses use the canned pages in contentRoot/Static, see [PageNotFound],
// [PageUnauthorized] and [PageInternalServerError]. When a page is missing the connection is
// closed without writing anything.
//
// # Wire Format
//
// Responses are written as:
//
//	HTTP/1.1 <status>\r\nContent-Type:<type>\r\nContent-Length:<n>\r\n\r\n <body>
//
// Note the space in front of the body. Content-Length counts the characters of the body, not
// the space and not the bytes.
package tcphttp
