package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tamu-thinktank/website-sub000/internal/auth"
	"github.com/tamu-thinktank/website-sub000/internal/config"
	"go.uber.org/zap"
)

func newTestApplication() *application {
	return &application{
		Logger: zap.NewNop(),
		Config: &config.Config{
			Env: "test",
			CORS: config.CORSConfig{
				TrustedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
			},
		},
		TokenMaker: auth.NewJWTMaker("0123456789abcdef0123456789abcdef"),
	}
}

func TestCORSEchoesTrustedOrigin(t *testing.T) {
	router := newTestApplication().routes()

	tests := []struct {
		name       string
		origin     string
		wantHeader string
	}{
		{"first trusted origin", "http://localhost:3000", "http://localhost:3000"},
		{"second trusted origin", "http://localhost:5173", "http://localhost:5173"},
		{"untrusted origin", "http://evil.example.com", ""},
		{"no origin", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/v1/auto-schedule", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != http.StatusNoContent {
				t.Fatalf("preflight status = %d, want %d", rr.Code, http.StatusNoContent)
			}
			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tt.wantHeader {
				t.Fatalf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantHeader)
			}
		})
	}
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	router := newTestApplication().routes()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/interviewers", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}
