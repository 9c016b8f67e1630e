package gazelle

import "net/http"

// Redirect finalizes the response with a Location header and a redirect
// status: 301 when permanent, 302 otherwise.
func Redirect(url string, permanent bool) Handler {
	status := http.StatusFound
	if permanent {
		status = http.StatusMovedPermanently
	}
	return func(c *Context, _ Next) (Outcome, error) {
		c.Response.SetHeader("Location", url)
		c.Response.SetStatus(status)
		return Handled, nil
	}
}
