package gazelle

import "github.com/google/uuid"

// defaultRequestIDHeader is used when RequestID is given an empty header name.
const defaultRequestIDHeader = "X-Request-ID"

type requestID string

// RequestID assigns a unique ID to the request and delegates. The ID is
// read from the request header (if present) or generated, stored on the
// context for GetRequestID, and set on the response header. Pass "" to use
// X-Request-ID.
func RequestID(header string) Handler {
	if header == "" {
		header = defaultRequestIDHeader
	}
	return func(c *Context, next Next) (Outcome, error) {
		id := c.Request.Header.Get(header)
		if id == "" {
			id = uuid.NewString()
		}
		SetValue(c, requestID(id))
		c.Response.SetHeader(header, id)
		return next(c)
	}
}

// GetRequestID returns the ID assigned by RequestID, or "" if none was set.
func GetRequestID(c *Context) string {
	id, _ := GetValue[requestID](c)
	return string(id)
}
