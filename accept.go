package gazelle

import (
	"mime"
	"strconv"
	"strings"
)

// MustAccept filters on the request's Accept header. The header's weighted
// media-range list is checked for overlap with the given media types,
// honoring */* and type/* wildcards; entries with q=0 are excluded. On no
// overlap the handler returns NotHandled without touching the response. An
// absent Accept header accepts everything.
func MustAccept(mimeTypes ...string) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		if acceptsAny(c.Request.Header.Get("Accept"), mimeTypes) {
			return next(c)
		}
		return NotHandled, nil
	}
}

func acceptsAny(accept string, mimeTypes []string) bool {
	if accept == "" {
		return true
	}

	for part := range strings.SplitSeq(accept, ",") {
		mediaRange, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}

		if qs, ok := params["q"]; ok {
			if q, err := strconv.ParseFloat(qs, 64); err == nil && q <= 0 {
				continue
			}
		}

		for _, mt := range mimeTypes {
			if mediaRangeMatches(mediaRange, mt) {
				return true
			}
		}
	}

	return false
}
