package gazelle

import "net/http"

// Method filters on the request method. On mismatch it returns NotHandled
// immediately, before touching the response — a failed filter leaves no
// partial header or status writes behind.
func Method(method string) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		if c.Request.Method != method {
			return NotHandled, nil
		}
		return next(c)
	}
}

// Method filters for the standard HTTP verbs.
var (
	GET     = Method(http.MethodGet)
	POST    = Method(http.MethodPost)
	PUT     = Method(http.MethodPut)
	PATCH   = Method(http.MethodPatch)
	DELETE  = Method(http.MethodDelete)
	HEAD    = Method(http.MethodHead)
	OPTIONS = Method(http.MethodOptions)
)
