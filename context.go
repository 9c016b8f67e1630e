package gazelle

import (
	"context"
	"net/http"
)

// Context is the per-request state threaded through a handler chain. It
// pairs the immutable request view with the mutable response accumulator.
// A Context is owned exclusively by the one in-flight request that created
// it and must not be shared across requests.
type Context struct {
	// Request is the incoming request. Handlers read from it; the core
	// never mutates anything but the attached context values.
	Request *http.Request

	// Response accumulates status, headers, and body until the outcome is
	// finalized and flushed to the transport.
	Response *Response

	path string
}

// NewContext creates a Context for the given request with an empty
// response accumulator.
func NewContext(r *http.Request) *Context {
	return &Context{
		Request:  r,
		Response: NewResponse(),
		path:     r.URL.Path,
	}
}

// Path returns the portion of the request path still available for
// matching. It starts as the full URL path; SubRoute narrows it to the
// unmatched remainder for nested routing.
func (c *Context) Path() string {
	return c.path
}

func (c *Context) setPath(p string) {
	c.path = p
}

// Err reports whether the request has been cancelled or timed out.
func (c *Context) Err() error {
	return c.Request.Context().Err()
}

type contextKey[T any] struct{}

// SetValue stores a typed value on the request context. For use in
// pass-through handlers that establish state for the rest of the chain.
func SetValue[T any](c *Context, val T) {
	ctx := context.WithValue(c.Request.Context(), contextKey[T]{}, val)
	c.Request = c.Request.WithContext(ctx)
}

// GetValue retrieves a typed value stored with SetValue.
func GetValue[T any](c *Context) (T, bool) {
	val, ok := c.Request.Context().Value(contextKey[T]{}).(T)
	return val, ok
}
