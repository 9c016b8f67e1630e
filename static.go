package gazelle

import (
	"io/fs"
	"mime"
	"net/http"
	"path"
)

// File serves a single named file from the filesystem and returns Handled.
// A missing or unreadable file is still a terminal Handled outcome with
// status 404 — static content failures end the response, they do not fall
// through to other routes or surface as errors.
func File(fsys fs.FS, name string) Handler {
	return func(c *Context, _ Next) (Outcome, error) {
		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			c.Response.SetStatus(http.StatusNotFound)
			c.Response.SetBodyString(http.StatusText(http.StatusNotFound))
			return Handled, nil
		}
		c.Response.SetContentType(contentTypeFor(name, b))
		c.Response.SetBody(b)
		return Handled, nil
	}
}

// Files serves the remaining request path out of the filesystem. Designed
// to sit under a SubRoute so the consumed prefix maps to the filesystem
// root:
//
//	gazelle.SubRoute("/static", gazelle.Files(assets))
//
// Unlike File, a path with no corresponding file is NotHandled, so later
// alternatives can still match.
func Files(fsys fs.FS) Handler {
	return func(c *Context, _ Next) (Outcome, error) {
		name := path.Clean("/" + c.Path())[1:]
		if name == "" {
			return NotHandled, nil
		}
		if !fs.ValidPath(name) {
			return NotHandled, nil
		}
		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			return NotHandled, nil
		}
		c.Response.SetContentType(contentTypeFor(name, b))
		c.Response.SetBody(b)
		return Handled, nil
	}
}

func contentTypeFor(name string, b []byte) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return http.DetectContentType(b)
}
