package tcphttp

import (
	"context"
	"sort"

	"github.com/samber/lo"
)

// Router decides how an accepted request is answered. Requests whose route is registered in the
// route table are answered with the not-found page, all others are resolved on disk.
type Router struct {
	routes   map[string]bool
	pages    *Pages
	resolver *Resolver
}

// NewRouter inits a router with an empty route table.
func NewRouter(pages *Pages, resolver *Resolver) *Router {
	return &Router{
		routes:   make(map[string]bool),
		pages:    pages,
		resolver: resolver,
	}
}

// AddRoute registers a route name.
func (rt *Router) AddRoute(name string) {
	rt.routes[name] = true
}

// HasRoute reports whether the route name is registered.
func (rt *Router) HasRoute(name string) bool {
	return rt.routes[name]
}

// Routes returns the registered route names, sorted.
func (rt *Router) Routes() []string {
	names := lo.Keys(rt.routes)
	sort.Strings(names)

	return names
}

// Route answers the request. The content type is derived from the requested resource, also when
// the resource was not found.
func (rt *Router) Route(ctx context.Context, req *Request) (Response, error) {
	route, err := req.Route()
	if err != nil {
		return Response{}, err
	}

	if rt.HasRoute(route) {
		body, err := rt.pages.Load(PageNotFound)
		if err != nil {
			return Response{}, err
		}

		return Response{Code: CodeNotFound, ContentType: htmlContentType, Body: body}, nil
	}

	resource, err := req.Resource()
	if err != nil {
		return Response{}, err
	}

	body, code, err := rt.resolver.Resolve(ctx, route, resource)
	if err != nil {
		return Response{}, err
	}

	return Response{Code: code, ContentType: ContentTypeOf(resource), Body: body}, nil
}
