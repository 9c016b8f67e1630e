package gazelle

import (
	"regexp"
	"strings"
)

// Route matches the request path exactly. On match it delegates to its
// continuation; on mismatch it returns NotHandled so the next alternative
// can try.
func Route(path string) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		if c.Path() != path {
			return NotHandled, nil
		}
		return next(c)
	}
}

// RouteCI matches the request path with case-insensitive equality.
func RouteCI(path string) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		if !strings.EqualFold(c.Path(), path) {
			return NotHandled, nil
		}
		return next(c)
	}
}

// RouteX matches the request path against a regular expression anchored to
// the whole path. Captured groups are passed, in order, to f to build the
// handler that runs on match. The pattern is compiled once at assembly
// time; an invalid pattern panics.
func RouteX(pattern string, f func(groups []string) Handler) Handler {
	re := regexp.MustCompile("^(?:" + pattern + ")$")
	return routeRegex(re, f)
}

// RouteXCI is RouteX with case-insensitive, unanchored matching: the
// pattern may match anywhere in the path.
func RouteXCI(pattern string, f func(groups []string) Handler) Handler {
	re := regexp.MustCompile("(?i)" + pattern)
	return routeRegex(re, f)
}

func routeRegex(re *regexp.Regexp, f func(groups []string) Handler) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		m := re.FindStringSubmatch(c.Path())
		if m == nil {
			return NotHandled, nil
		}
		return f(m[1:])(c, next)
	}
}

// SubRoute matches a leading segment of the request path and, on success,
// narrows the path to the unmatched remainder before running h. Handlers
// under h match against the remainder only, which is what allows nested
// route trees without re-stating the consumed prefix:
//
//	gazelle.SubRoute("/api", gazelle.Choose(
//	    gazelle.Route("/v1/ping"),
//	    ...
//	))
//
// The prefix only matches on a segment boundary: "/api" matches "/api" and
// "/api/v1" but not "/apix". The original path is restored when h declines
// and before the outer continuation runs, so siblings of the SubRoute see
// the path they expect.
func SubRoute(prefix string, h Handler) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		full := c.Path()
		rest, ok := cutPrefixSegment(full, prefix)
		if !ok {
			return NotHandled, nil
		}
		c.setPath(rest)
		out, err := h(c, func(c *Context) (Outcome, error) {
			c.setPath(full)
			return next(c)
		})
		c.setPath(full)
		return out, err
	}
}

// cutPrefixSegment strips prefix from path, requiring the cut to land on a
// segment boundary.
func cutPrefixSegment(path, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(path, prefix)
	if !ok {
		return "", false
	}
	if rest != "" && rest[0] != '/' {
		return "", false
	}
	return rest, true
}
