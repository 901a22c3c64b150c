package controller

import (
	"converter/pkg/metrics"
	"net/http"
	"time"
)

// unmatchedRoute labels requests no route pattern matched, keeping the
// route label bounded.
const unmatchedRoute = "unmatched"

// WithMetrics returns a middleware that records the latency and final status
// of every request. The route label is the pattern routes would dispatch the
// request to, so next may wrap routes in further middlewares (timeouts,
// logging) and their responses are still recorded under the right route.
//
// Parameters:
//   - m: The instruments latency is recorded into.
//   - routes: The mux used to resolve the route pattern of a request.
//   - next: The handler being measured, usually routes wrapped in middlewares.
func WithMetrics(m *metrics.HTTP, routes *http.ServeMux, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, route := routes.Handler(r)
		if route == "" {
			route = unmatchedRoute
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		m.Observe(r.Method, route, rec.status, time.Since(start))
	})
}
