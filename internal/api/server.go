// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the converter service.
package api

import (
	"context"
	"converter/internal/api/handler/v1handler"
	"converter/internal/config"
	"converter/pkg/controller"
	"converter/pkg/logger"
	"converter/pkg/metrics"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
type Options struct {
	// SecHandlerOptions configures bearer authentication for v1 endpoints.
	// Nil serves the API without authentication.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds handling of a single request via http.TimeoutHandler.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// Pprof mounts net/http/pprof under /debug/pprof/.
	Pprof bool
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		Pprof:             cfg.HTTP.Pprof,
	}
}

type Deps struct {
	v1handler.Deps

	// Registry receives the HTTP instruments and is served at MetricsPath.
	Registry metrics.Registry
}

// NewHandler builds the root handler:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes, behind bearer auth when configured
// - pprof endpoints when enabled
// wrapped, from the inside out, with request timeout, CORS, logging and
// metrics middlewares.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	mux := http.NewServeMux()

	// prometheus metrics
	mux.Handle("GET "+opts.MetricsPath, promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{
		Registry: deps.Registry,
	}))

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("GET /v1/docs/", v5emb.New(
		"Unit Converter",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	auth := func(h http.Handler) http.Handler { return h }
	if opts.SecHandlerOptions != nil {
		secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
		if err != nil {
			return nil, fmt.Errorf("could not create sec handler: %w", err)
		}
		auth = secHandler.Middleware
	}
	v1 := v1handler.New(deps.Deps)
	mux.Handle("GET /v1/convert", auth(http.HandlerFunc(v1.GetConvert)))
	mux.Handle("POST /v1/convert", auth(http.HandlerFunc(v1.PostConvert)))
	mux.Handle("GET /v1/categories", auth(http.HandlerFunc(v1.ListCategories)))

	// pprof
	if opts.Pprof {
		mux.Handle(controller.PprofPrefix, controller.PprofMux())
	}

	httpMetrics, err := metrics.NewHTTP(deps.Registry)
	if err != nil {
		return nil, fmt.Errorf("could not create http metrics: %w", err)
	}

	// request timeout
	var handler http.Handler = mux
	if opts.RequestTimeout > 0 {
		handler = controller.WithTimeout(opts.RequestTimeout, handler)
	}

	// cors
	handler = controller.WithCORS(handler)

	// logger
	handler = controller.WithLogger(handler)

	// metrics, outermost so timed out requests are recorded with their 503
	handler = controller.WithMetrics(httpMetrics, mux, handler)

	return handler, nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
		ErrorLog:          logger.StdLog(ctx, slog.LevelWarn),
	}, nil
}
