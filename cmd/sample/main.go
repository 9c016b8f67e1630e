// Command sample demonstrates a gazelle handler tree with routing,
// format-string parameters, content negotiation, binding, and throttling.
//
// Run:
//
//	go run ./cmd/sample
//
// Then explore:
//
//	GET  http://localhost:8080/                — hello
//	GET  http://localhost:8080/user/42         — typed route parameter
//	GET  http://localhost:8080/api/v1/ping     — nested routing
//	GET  http://localhost:8080/api/v1/info     — Accept-negotiated (JSON/XML/YAML)
//	POST http://localhost:8080/echo            — JSON body binding
//	GET  http://localhost:8080/secret          — basic auth (admin/admin)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/lmittmann/tint"

	"github.com/dbrattli/gazelle"
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("starting server", "addr", *addr)

	err := gazelle.ListenAndServe(ctx, *addr, newTree(), gazelle.WithLogger(logger))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "err", err)
	}

	slog.Info("server stopped")
}

type echoBody struct {
	Message string `json:"message"`
}

type info struct {
	Name    string `json:"name" xml:"name" yaml:"name"`
	Version string `json:"version" xml:"version" yaml:"version"`
}

func newTree() gazelle.Handler {
	throttle := gazelle.Throttle(gazelle.ThrottleConfig{Rate: 50, Burst: 100})

	api := gazelle.SubRoute("/api", gazelle.Choose(
		gazelle.Chain(gazelle.GET, gazelle.Route("/v1/ping"), gazelle.Text("pong")),
		gazelle.Chain(gazelle.GET, gazelle.Route("/v1/info"),
			gazelle.Negotiate(info{Name: "sample", Version: "1.0.0"})),
	))

	users := gazelle.Chain(gazelle.GET, gazelle.RouteF("/user/%i", func(args []any) gazelle.Handler {
		return gazelle.Text(fmt.Sprintf("user %d", args[0]))
	}))

	echo := gazelle.Chain(gazelle.POST, gazelle.Route("/echo"),
		gazelle.TryBindJSON(
			func(err error) gazelle.Handler {
				return gazelle.Chain(
					gazelle.SetStatus(http.StatusBadRequest),
					gazelle.Text(err.Error()),
				)
			},
			func(b *echoBody) gazelle.Handler {
				return gazelle.JSON(b)
			},
		))

	secret := gazelle.Chain(gazelle.GET, gazelle.Route("/secret"), gazelle.Choose(
		gazelle.Chain(
			gazelle.RequiresBasicAuth(func(user, pass string) bool {
				return user == "admin" && pass == "admin"
			}),
			gazelle.Text("the secret"),
		),
		gazelle.Unauthorized("Basic", "sample"),
	))

	return gazelle.Chain(gazelle.RequestID(""), throttle, gazelle.Choose(
		gazelle.Chain(gazelle.GET, gazelle.Route("/"), gazelle.Text("Hello World")),
		users,
		api,
		echo,
		secret,
		gazelle.Chain(gazelle.SetStatus(http.StatusNotFound), gazelle.Text("Not found")),
	))
}
