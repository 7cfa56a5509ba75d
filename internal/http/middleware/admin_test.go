package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminGate(t *testing.T) {
	gate := NewAdminGate("hunter2")
	handler := gate.Authenticate(okHandler())

	cases := []struct {
		name   string
		target string
		header string
		want   int
	}{
		{"no credential", "/api/admin/stats", "", http.StatusUnauthorized},
		{"wrong query credential", "/api/admin/stats?password=nope", "", http.StatusUnauthorized},
		{"wrong header credential", "/api/admin/stats", "nope", http.StatusUnauthorized},
		{"query credential", "/api/admin/stats?password=hunter2", "", http.StatusOK},
		{"header credential", "/api/admin/stats", "hunter2", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.target, nil)
		if tc.header != "" {
			req.Header.Set("X-Admin-Password", tc.header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Result().StatusCode != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, rec.Result().StatusCode)
		}
	}
}
