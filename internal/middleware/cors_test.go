package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foxuse/showcase/internal/config"
	"github.com/foxuse/showcase/internal/logger"
)

func TestCORSUsesConfiguredOrigins(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.AllowedOrigins = []string{"https://foxuse.dev"}
	mw := New(logger.New("disabled", "json"), cfg)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name      string
		origin    string
		wantAllow string
	}{
		{"configured origin is echoed", "https://foxuse.dev", "https://foxuse.dev"},
		{"unknown origin gets no header", "https://evil.example", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/products", nil)
			req.Header.Set("Origin", tc.origin)
			rec := httptest.NewRecorder()

			mw.CORS(next).ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tc.wantAllow {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tc.wantAllow)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.AllowedOrigins = []string{"https://foxuse.dev"}
	mw := New(logger.New("disabled", "json"), cfg)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight must not reach the handler")
	})

	req := httptest.NewRequest(http.MethodOptions, "/products", nil)
	req.Header.Set("Origin", "https://foxuse.dev")
	rec := httptest.NewRecorder()

	mw.CORS(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://foxuse.dev" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the configured origin", got)
	}
}
