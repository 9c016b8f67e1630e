// Package gazelle is a composable HTTP handler library for Go. Request
// processing is expressed as a tree of handlers combined with Then and
// Choose: each handler either produces the response (Handled), defers to
// the next alternative (NotHandled), or passes control to its continuation.
//
// The core handler signature:
//
//	type Handler func(c *Context, next Next) (Outcome, error)
//
// Handler trees are assembled once at startup and read left to right:
//
//	root := gazelle.Choose(
//	    gazelle.Chain(gazelle.GET, gazelle.Route("/"), gazelle.Text("Hello World")),
//	    gazelle.Chain(gazelle.GET, gazelle.RouteF("/user/%i", func(args []any) gazelle.Handler {
//	        return gazelle.Text(fmt.Sprintf("user %d", args[0]))
//	    })),
//	    gazelle.Chain(gazelle.SetStatus(404), gazelle.Text("Not found")),
//	)
//
//	http.ListenAndServe(":8080", gazelle.Serve(root))
//
// Composition short-circuits: once a handler returns Handled, nothing
// queued after it in the chain runs. Choose tries its alternatives in
// declaration order and stops at the first Handled outcome, so routing is
// deterministic and needs no scoring or longest-match rules.
//
// Route matching supports literal paths, case-insensitive and regex
// variants, typed format strings (RouteF), and prefix routing (SubRoute)
// for nested trees. The assembled tree is immutable and safe for
// concurrent use across requests.
package gazelle
