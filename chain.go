package tcphttp

import "context"

// Chain runs middleware in the order it was added. The first outcome that is not
// [CodeAccepted] stops the chain.
type Chain struct {
	middlewares []Middleware
}

// NewChain inits a chain with the given middleware.
func NewChain(m ...Middleware) *Chain {
	return &Chain{middlewares: m}
}

// Use appends middleware to the end of the chain.
func (c *Chain) Use(m ...Middleware) {
	c.middlewares = append(c.middlewares, m...)
}

// Len returns the number of middleware in the chain.
func (c *Chain) Len() int { return len(c.middlewares) }

// Run evaluates the chain. When every middleware accepts the request it returns true and
// [CodeAccepted], otherwise false and the outcome that stopped the chain.
func (c *Chain) Run(ctx context.Context, req *Request) (bool, Code) {
	for _, m := range c.middlewares {
		if outcome := m.Handle(ctx, req); outcome != CodeAccepted {
			return false, outcome
		}
	}

	return true, CodeAccepted
}
