package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "propagates client id", header: "abc-123", wantSame: true},
		{name: "mints when missing", header: ""},
		{name: "mints when too long", header: strings.Repeat("x", maxRequestIDLen+1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var seen string
			h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = RequestIDFromContext(r.Context())
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("X-Request-ID", tc.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Header().Get("X-Request-ID") != seen {
				t.Fatalf("response header %q != context %q", rr.Header().Get("X-Request-ID"), seen)
			}
			if tc.wantSame {
				if seen != tc.header {
					t.Fatalf("request id = %q, want %q", seen, tc.header)
				}
				return
			}
			if _, err := uuid.Parse(seen); err != nil {
				t.Fatalf("minted id %q is not a uuid: %v", seen, err)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"http://allowed.test"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/state", nil)
	req.Header.Set("Origin", "http://allowed.test")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent || rr.Header().Get("Access-Control-Allow-Origin") != "http://allowed.test" {
		t.Fatalf("preflight: status=%d origin=%q", rr.Code, rr.Header().Get("Access-Control-Allow-Origin"))
	}

	req = httptest.NewRequest(http.MethodGet, "/api/state", nil)
	req.Header.Set("Origin", "http://other.test")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusTeapot || rr.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("disallowed origin: status=%d origin=%q", rr.Code, rr.Header().Get("Access-Control-Allow-Origin"))
	}
}
