package gazelle

import (
	"bytes"
	"net/http"
)

// Terminal writers. Each finalizes the response body and returns Handled,
// short-circuiting everything queued after it in the chain.

// Text writes s as the response body and returns Handled. The content type
// defaults to text/plain unless one was already set.
func Text(s string) Handler {
	return func(c *Context, _ Next) (Outcome, error) {
		c.Response.SetBodyString(s)
		return Handled, nil
	}
}

// Bytes writes b as the response body with the given content type and
// returns Handled.
func Bytes(contentType string, b []byte) Handler {
	return func(c *Context, _ Next) (Outcome, error) {
		c.Response.SetContentType(contentType)
		c.Response.SetBody(b)
		return Handled, nil
	}
}

// NoContent sets status 204 with an empty body and returns Handled.
func NoContent() Handler {
	return func(c *Context, _ Next) (Outcome, error) {
		c.Response.SetStatus(http.StatusNoContent)
		c.Response.SetBody(nil)
		return Handled, nil
	}
}

// JSON encodes v as the JSON response body and returns Handled. An
// encoding failure is a server error, not a NotHandled.
func JSON(v any) Handler {
	return respondWith(JSONCodec{}, v)
}

// XML encodes v as the XML response body and returns Handled.
func XML(v any) Handler {
	return respondWith(XMLCodec{}, v)
}

// YAML encodes v as the YAML response body and returns Handled.
func YAML(v any) Handler {
	return respondWith(YAMLCodec{}, v)
}

// RespondWith encodes v with the given encoder and returns Handled.
func RespondWith(enc Encoder, v any) Handler {
	return respondWith(enc, v)
}

func respondWith(enc Encoder, v any) Handler {
	return func(c *Context, _ Next) (Outcome, error) {
		var buf bytes.Buffer
		if err := enc.Encode(&buf, v); err != nil {
			return NotHandled, err
		}
		c.Response.SetContentType(enc.ContentType())
		c.Response.SetBody(buf.Bytes())
		return Handled, nil
	}
}

// Negotiate encodes v using the encoder selected by the request's Accept
// header (JSON, XML, or YAML; JSON for empty or wildcard values). An
// Accept header that matches none of them yields a 406.
func Negotiate(v any) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		enc, ok := negotiateEncoder(c.Request.Header.Get("Accept"), defaultEncoders)
		if !ok {
			c.Response.SetStatus(http.StatusNotAcceptable)
			c.Response.SetBodyString(http.StatusText(http.StatusNotAcceptable))
			return Handled, nil
		}
		return respondWith(enc, v)(c, next)
	}
}
