package controller_test

import (
	"converter/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithCORS(t *testing.T) {
	cases := []struct {
		name       string
		method     string
		wantCalled bool
		wantStatus int
	}{
		{name: "preflight short-circuits", method: http.MethodOptions, wantCalled: false, wantStatus: http.StatusNoContent},
		{name: "get passes through", method: http.MethodGet, wantCalled: true, wantStatus: http.StatusTeapot},
		{name: "post passes through", method: http.MethodPost, wantCalled: true, wantStatus: http.StatusTeapot},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusTeapot)
			})

			rec := httptest.NewRecorder()
			controller.WithCORS(next).ServeHTTP(rec, httptest.NewRequest(tc.method, "/v1/convert", nil))

			require.Equal(t, tc.wantCalled, called)
			res := rec.Result()
			require.Equal(t, tc.wantStatus, res.StatusCode)
			require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
			require.Equal(t, "GET, POST, OPTIONS", res.Header.Get("Access-Control-Allow-Methods"))
			require.Contains(t, res.Header.Get("Access-Control-Allow-Headers"), "Authorization")
		})
	}
}
