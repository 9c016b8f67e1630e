package gazelle

// Then sequences two handlers: a runs with a continuation that runs b,
// which in turn runs the original continuation. If a returns Handled or
// NotHandled without delegating, b never runs.
//
// Then is associative: Then(Then(a, b), c) and Then(a, Then(b, c)) behave
// identically for every context, which is what makes arbitrarily deep
// pipelines safe to build in either grouping.
func Then(a, b Handler) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		return a(c, func(c *Context) (Outcome, error) {
			return b(c, next)
		})
	}
}

// Chain sequences any number of handlers with Then. Chain() is the
// identity: it delegates straight to its continuation.
func Chain(handlers ...Handler) Handler {
	if len(handlers) == 0 {
		return func(c *Context, next Next) (Outcome, error) {
			return next(c)
		}
	}
	h := handlers[len(handlers)-1]
	for i := len(handlers) - 2; i >= 0; i-- {
		h = Then(handlers[i], h)
	}
	return h
}

// Choose tries each handler in declaration order against the same context
// and returns the first Handled outcome. If every handler returns
// NotHandled, the composite returns NotHandled. Alternatives are tried
// strictly one at a time; there is no reordering and no parallel fan-out.
//
// Choose checks the request context between alternatives so that an
// aborted request stops promptly instead of walking the rest of the tree.
func Choose(handlers ...Handler) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		for _, h := range handlers {
			if err := c.Err(); err != nil {
				return NotHandled, err
			}
			out, err := h(c, next)
			if err != nil {
				return out, err
			}
			if out == Handled {
				return Handled, nil
			}
		}
		return NotHandled, nil
	}
}
