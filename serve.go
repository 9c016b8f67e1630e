package gazelle

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"
)

// ErrorHandler writes the response for a handler error (binding, codec,
// encoding failures). It runs outside the handler tree, directly against
// the transport.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type server struct {
	root         Handler
	logger       *slog.Logger
	errorHandler ErrorHandler
	notFound     Handler
}

// ServeOption configures the Serve adapter.
type ServeOption func(*server)

// WithLogger enables an access log entry per request (method, path,
// status, latency, size).
func WithLogger(logger *slog.Logger) ServeOption {
	return func(s *server) {
		s.logger = logger
	}
}

// WithErrorHandler sets the handler-error response writer. The default
// writes the error message with the status from ErrorStatus.
func WithErrorHandler(h ErrorHandler) ServeOption {
	return func(s *server) {
		s.errorHandler = h
	}
}

// WithNotFound sets the handler run when the tree returns NotHandled. The
// default writes a plain 404.
func WithNotFound(h Handler) ServeOption {
	return func(s *server) {
		s.notFound = h
	}
}

// Serve adapts a handler tree to http.Handler. Per request it builds a
// Context, runs the tree with the terminal continuation, and flushes the
// accumulated response on Handled. NotHandled becomes a 404, a handler
// error goes to the error handler, and panics are recovered and logged
// with a 500. The tree itself is never touched after assembly, so one
// adapter serves any number of concurrent requests.
func Serve(root Handler, opts ...ServeOption) http.Handler {
	s := &server{
		root:         root,
		errorHandler: defaultErrorHandler,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			s.log().Error("panic recovered",
				"panic", rec,
				"stack", string(debug.Stack()),
				"method", r.Method,
				"path", r.URL.Path,
			)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}()

	c := NewContext(r)
	out, err := s.root(c, Finish)

	// Client gone — nothing left to write.
	if r.Context().Err() != nil {
		return
	}

	switch {
	case err != nil:
		s.errorHandler(w, r, err)
		s.access(r, ErrorStatus(err), 0, start)
		return
	case out == NotHandled:
		out = s.handleNotFound(c)
		if out == NotHandled {
			http.NotFound(w, r)
			s.access(r, http.StatusNotFound, 0, start)
			return
		}
	}

	if err := c.Response.flush(w); err != nil {
		s.log().Warn("response write failed", "err", err, "method", r.Method, "path", r.URL.Path)
	}

	status := c.Response.Status()
	if status == 0 {
		status = http.StatusOK
	}
	s.access(r, status, len(c.Response.Body()), start)
}

func (s *server) handleNotFound(c *Context) Outcome {
	if s.notFound == nil {
		return NotHandled
	}
	out, err := s.notFound(c, Finish)
	if err != nil {
		return NotHandled
	}
	return out
}

func (s *server) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

func (s *server) access(r *http.Request, status, size int, start time.Time) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(r.Context(), slog.LevelInfo, "request",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.Int("size", size),
		slog.String("remote", r.RemoteAddr),
	)
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	http.Error(w, err.Error(), ErrorStatus(err))
}

// ListenAndServe starts an HTTP server on addr serving the handler tree.
// It blocks until the context is cancelled, then shuts down gracefully.
func ListenAndServe(ctx context.Context, addr string, root Handler, opts ...ServeOption) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Serve(root, opts...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
