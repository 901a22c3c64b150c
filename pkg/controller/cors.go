package controller

import "net/http"

// WithCORS returns a middleware that allows any origin to call the API and
// answers OPTIONS preflight requests with 204 No Content.
//
// The allowed headers include Authorization for bearer tokens, and the
// X-Request-Id response header is exposed so browser clients can report it.
//
// Parameters:
//   - next: The handler serving non-preflight requests.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, X-Request-Id")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Expose-Headers", "X-Request-Id")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
