package gazelle

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors identifying what kind of binding failed.
var (
	ErrBindBody  = errors.New("bind body")
	ErrBindQuery = errors.New("bind query")
	ErrBindForm  = errors.New("bind form")
)

// StatusCoder is implemented by errors that carry an HTTP status code.
type StatusCoder interface {
	StatusCode() int
}

// HTTPError is an error with an HTTP status code.
type HTTPError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Error returns the error message.
func (e *HTTPError) Error() string { return e.Message }

// StatusCode returns the HTTP status code.
func (e *HTTPError) StatusCode() int { return e.Status }

// Error returns an error with the given HTTP status code and message.
func Error(status int, message string) error {
	return &HTTPError{Status: status, Message: message}
}

// Errorf returns a formatted error with the given HTTP status code.
func Errorf(status int, format string, args ...any) error {
	return &HTTPError{Status: status, Message: fmt.Sprintf(format, args...)}
}

// ErrorStatus extracts the HTTP status code from an error. Returns
// http.StatusInternalServerError if the error does not implement
// StatusCoder.
func ErrorStatus(err error) int {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}

// BindError wraps a binding or codec failure. It matches its kind sentinel
// (ErrBindBody, ErrBindQuery, ErrBindForm) with errors.Is and carries
// status 400, so the default error handler reports it as a client error.
type BindError struct {
	Kind error
	Err  error
}

// Error returns a descriptive message naming the failed binding.
func (e *BindError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *BindError) Unwrap() []error { return []error{e.Kind, e.Err} }

// StatusCode returns http.StatusBadRequest.
func (e *BindError) StatusCode() int { return http.StatusBadRequest }

func bindError(kind, err error) error {
	return &BindError{Kind: kind, Err: err}
}
