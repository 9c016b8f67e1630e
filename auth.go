package gazelle

import (
	"fmt"
	"net/http"
)

// Unauthorized challenges the client: it sets the WWW-Authenticate header
// for the given scheme and realm, then status 401, and finalizes the
// response. Header mutation happens before the status is set; the order is
// pinned by tests so challenge responses stay well-formed.
func Unauthorized(scheme, realm string) Handler {
	challenge := fmt.Sprintf("%s realm=%q", scheme, realm)
	return func(c *Context, _ Next) (Outcome, error) {
		c.Response.SetHeader("WWW-Authenticate", challenge)
		c.Response.SetStatus(http.StatusUnauthorized)
		return Handled, nil
	}
}

// RequiresBasicAuth validates Basic credentials with the supplied check.
// Valid credentials delegate to the continuation; missing or rejected
// credentials are NotHandled with no response mutation, so the tree can
// fall through to an Unauthorized challenge:
//
//	gazelle.Choose(
//	    gazelle.Chain(gazelle.RequiresBasicAuth(check), protected),
//	    gazelle.Unauthorized("Basic", "api"),
//	)
func RequiresBasicAuth(check func(username, password string) bool) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok || !check(user, pass) {
			return NotHandled, nil
		}
		return next(c)
	}
}
