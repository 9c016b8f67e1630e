package gazelle

import (
	"bytes"
	"net/http"
	"strconv"
)

// Response is the mutable response accumulator for a single request.
// Handlers mutate it through the chain; the adapter flushes it to the
// transport once an outcome is finalized. It is owned exclusively by the
// request task that created it.
type Response struct {
	status int
	header http.Header
	body   bytes.Buffer
}

// NewResponse returns an empty response accumulator.
func NewResponse() *Response {
	return &Response{header: make(http.Header)}
}

// Status returns the status code set so far, or 0 if none has been set.
// An unset status flushes as 200.
func (r *Response) Status() int {
	return r.status
}

// SetStatus sets the response status code.
func (r *Response) SetStatus(code int) {
	r.status = code
}

// Header returns the response headers for direct inspection.
func (r *Response) Header() http.Header {
	return r.header
}

// SetHeader sets a header, replacing any existing values.
func (r *Response) SetHeader(key, value string) {
	r.header.Set(key, value)
}

// AddHeader appends a header value, keeping existing ones.
func (r *Response) AddHeader(key, value string) {
	r.header.Add(key, value)
}

// ContentType returns the Content-Type header value.
func (r *Response) ContentType() string {
	return r.header.Get("Content-Type")
}

// SetContentType sets the Content-Type header.
func (r *Response) SetContentType(ct string) {
	r.header.Set("Content-Type", ct)
}

// SetBody replaces the response body and recomputes Content-Length.
func (r *Response) SetBody(b []byte) {
	r.body.Reset()
	r.body.Write(b)
	r.header.Set("Content-Length", strconv.Itoa(len(b)))
}

// SetBodyString replaces the body with the UTF-8 bytes of s. The content
// type defaults to text/plain unless one has already been set.
func (r *Response) SetBodyString(s string) {
	if r.ContentType() == "" {
		r.SetContentType("text/plain; charset=utf-8")
	}
	r.SetBody([]byte(s))
}

// Body returns the accumulated body bytes.
func (r *Response) Body() []byte {
	return r.body.Bytes()
}

// Clear resets status, headers, and body to their initial state.
func (r *Response) Clear() {
	r.status = 0
	r.header = make(http.Header)
	r.body.Reset()
}

// flush writes the accumulated response to the transport. An unset status
// becomes 200.
func (r *Response) flush(w http.ResponseWriter) error {
	for k, vs := range r.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	status := r.status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, err := w.Write(r.body.Bytes())
	return err
}
