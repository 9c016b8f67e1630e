package gazelle

// Outcome is the result of running a handler: either the handler produced
// the response, or it declined and the next alternative should be tried.
type Outcome uint8

const (
	// NotHandled means the handler declined the request. Control passes to
	// the next alternative in the enclosing Choose, if any.
	NotHandled Outcome = iota

	// Handled means the handler finalized the response. No handler queued
	// after it in the same chain runs.
	Handled
)

// Next is the continuation of a chain: what runs if the current handler
// passes control on instead of finalizing or declining.
type Next func(c *Context) (Outcome, error)

// Handler is the unit of request processing. A handler inspects the
// Context, optionally mutates the response, and either returns Handled to
// finalize, NotHandled to defer to a sibling alternative, or invokes next
// to delegate to the rest of the chain. Errors are reserved for failures
// that need the caller's error handler (binding, encoding); a route or
// method mismatch is a plain NotHandled, never an error.
//
// Handlers carry no mutable per-request state of their own — anything
// request-scoped lives in the Context, and anything fixed is closed over
// at construction time. A constructed handler tree is therefore safe for
// concurrent use across requests.
type Handler func(c *Context, next Next) (Outcome, error)

// Finish is the terminal continuation. Reaching the end of a chain means
// the request was handled with whatever response state has accumulated.
func Finish(_ *Context) (Outcome, error) {
	return Handled, nil
}

// Lazy defers handler construction until the request arrives. Useful when
// the handler depends on per-request state that is not known at assembly
// time.
func Lazy(f func(c *Context) Handler) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		return f(c)(c, next)
	}
}
