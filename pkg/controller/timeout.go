package controller

import (
	"net/http"
	"time"
)

// timeoutBody is the response body of a request that ran out of time.
const timeoutBody = `{"code":"TIMEOUT","message":"request timed out"}`

// WithTimeout returns a middleware that bounds the handling of a request.
// Requests that exceed timeout are answered with 503 Service Unavailable and
// a JSON error body. The request context passed to next is canceled at the
// deadline.
//
// Parameters:
//   - timeout: The maximum time next may spend on a request.
//   - next: The handler to bound.
func WithTimeout(timeout time.Duration, next http.Handler) http.Handler {
	th := http.TimeoutHandler(next, timeout, timeoutBody)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		th.ServeHTTP(&timeoutWriter{ResponseWriter: w}, r)
	})
}

// timeoutWriter labels the body http.TimeoutHandler writes on timeout, which
// is sent without a Content-Type.
type timeoutWriter struct {
	http.ResponseWriter
}

func (w *timeoutWriter) WriteHeader(code int) {
	if code == http.StatusServiceUnavailable && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.ResponseWriter.WriteHeader(code)
}
