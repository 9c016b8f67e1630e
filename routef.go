package gazelle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Format-string route matching. A format pattern is a path with typed
// placeholders, each compiling to a regex fragment constrained to that
// type's lexical form:
//
//	%b  bool ("true"/"false", any case)
//	%c  single character (bound as rune)
//	%s  string (one path segment, no '/')
//	%i  int (32-bit range)
//	%d  int64
//	%f  float64
//	%O  UUID (hyphenated or 32 hex digits)
//
// "%%" is a literal percent sign. Patterns compile once at assembly time;
// an unknown placeholder panics. At request time a captured value that
// fails to parse into its declared type (out of range, malformed UUID) is
// a NotHandled, never an error — format mismatches fail closed.

var formatFragments = map[byte]string{
	'b': "(?i:true|false)",
	'c': "[^/]",
	's': "[^/]+",
	'i': `-?\d+`,
	'd': `-?\d+`,
	'f': `-?\d+(?:\.\d+)?`,
	'O': "[0-9A-Fa-f]{8}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{12}|[0-9A-Fa-f]{32}",
}

type formatPattern struct {
	re    *regexp.Regexp
	verbs []byte
}

// compileFormat translates a format string into an anchored regex. Prefix
// patterns leave the tail open so the remainder can be recovered from the
// match end.
func compileFormat(format string, caseInsensitive, prefix bool) *formatPattern {
	var sb strings.Builder
	var verbs []byte

	if caseInsensitive {
		sb.WriteString("(?i)")
	}
	sb.WriteString("^")

	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			sb.WriteString(regexp.QuoteMeta(string(ch)))
			continue
		}
		if i+1 >= len(format) {
			panic("gazelle: routef: trailing % in format " + strconv.Quote(format))
		}
		i++
		verb := format[i]
		if verb == '%' {
			sb.WriteString("%")
			continue
		}
		frag, ok := formatFragments[verb]
		if !ok {
			panic(fmt.Sprintf("gazelle: routef: unknown placeholder %%%c in format %q", verb, format))
		}
		sb.WriteString("(" + frag + ")")
		verbs = append(verbs, verb)
	}

	if !prefix {
		sb.WriteString("$")
	}

	return &formatPattern{re: regexp.MustCompile(sb.String()), verbs: verbs}
}

// match evaluates the pattern against path. On success it returns the
// parsed placeholder values and, for prefix patterns, the unmatched
// remainder.
func (p *formatPattern) match(path string) (args []any, rest string, ok bool) {
	idx := p.re.FindStringSubmatchIndex(path)
	if idx == nil {
		return nil, "", false
	}

	rest = path[idx[1]:]
	if rest != "" && rest[0] != '/' {
		return nil, "", false
	}

	args = make([]any, 0, len(p.verbs))
	for i, verb := range p.verbs {
		group := path[idx[2*(i+1)]:idx[2*(i+1)+1]]
		v, err := parseFormatArg(verb, group)
		if err != nil {
			return nil, "", false
		}
		args = append(args, v)
	}
	return args, rest, true
}

func parseFormatArg(verb byte, s string) (any, error) {
	switch verb {
	case 'b':
		return strconv.ParseBool(strings.ToLower(s))
	case 'c':
		return []rune(s)[0], nil
	case 's':
		return s, nil
	case 'i':
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, err
		}
		return int(n), nil
	case 'd':
		return strconv.ParseInt(s, 10, 64)
	case 'f':
		return strconv.ParseFloat(s, 64)
	case 'O':
		return uuid.Parse(s)
	default:
		return nil, fmt.Errorf("unknown placeholder %%%c", verb)
	}
}

// RouteF matches the request path against a typed format string. On match
// the parsed placeholder values are passed, in order, to f to build the
// handler that runs. A value that fails to parse into its declared type
// makes the whole route NotHandled.
func RouteF(format string, f func(args []any) Handler) Handler {
	p := compileFormat(format, false, false)
	return routeFormat(p, f)
}

// RouteFCI is RouteF with case-insensitive matching of the literal parts.
func RouteFCI(format string, f func(args []any) Handler) Handler {
	p := compileFormat(format, true, false)
	return routeFormat(p, f)
}

func routeFormat(p *formatPattern, f func(args []any) Handler) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		args, _, ok := p.match(c.Path())
		if !ok {
			return NotHandled, nil
		}
		return f(args)(c, next)
	}
}

// SubRouteF is the prefix form of RouteF: the format matches a leading
// segment of the path, the parsed values are passed to f, and the handler
// f returns runs against the unmatched remainder, as with SubRoute.
func SubRouteF(format string, f func(args []any) Handler) Handler {
	p := compileFormat(format, false, true)
	return func(c *Context, next Next) (Outcome, error) {
		full := c.Path()
		args, rest, ok := p.match(full)
		if !ok {
			return NotHandled, nil
		}
		c.setPath(rest)
		out, err := f(args)(c, func(c *Context) (Outcome, error) {
			c.setPath(full)
			return next(c)
		})
		c.setPath(full)
		return out, err
	}
}
