package gazelle

// Pass-through response mutators. Each mutates the accumulator and then
// delegates to its continuation, so later handlers in the chain still run.
// Terminal writers live in respond.go.

// SetStatus sets the response status code and delegates.
func SetStatus(code int) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		c.Response.SetStatus(code)
		return next(c)
	}
}

// SetHeader sets a response header, replacing existing values, and
// delegates.
func SetHeader(key, value string) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		c.Response.SetHeader(key, value)
		return next(c)
	}
}

// AddHeader appends a response header value and delegates.
func AddHeader(key, value string) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		c.Response.AddHeader(key, value)
		return next(c)
	}
}

// SetContentType sets the Content-Type header and delegates.
func SetContentType(ct string) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		c.Response.SetContentType(ct)
		return next(c)
	}
}

// ClearResponse resets any accumulated status, headers, and body, then
// delegates. Useful at the head of an error branch that must discard
// partial output from earlier pass-through handlers.
func ClearResponse() Handler {
	return func(c *Context, next Next) (Outcome, error) {
		c.Response.Clear()
		return next(c)
	}
}
