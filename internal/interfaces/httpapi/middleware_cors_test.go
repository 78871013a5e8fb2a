package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		wantStatus  int
		wantOrigin  string
		wantExposed string
	}{
		{
			name:        "configured origin is echoed",
			allowed:     []string{"https://dashboard.example.com"},
			method:      http.MethodGet,
			origin:      "https://dashboard.example.com",
			wantStatus:  http.StatusOK,
			wantOrigin:  "https://dashboard.example.com",
			wantExposed: requestIDHeader,
		},
		{
			name:        "wildcard preflight short-circuits",
			allowed:     []string{"*"},
			method:      http.MethodOptions,
			origin:      "https://anywhere.example.com",
			wantStatus:  http.StatusNoContent,
			wantOrigin:  "*",
			wantExposed: requestIDHeader,
		},
		{
			name:       "unknown origin gets no headers",
			allowed:    []string{"https://allowed.example.com"},
			method:     http.MethodPost,
			origin:     "https://evil.example.com",
			wantStatus: http.StatusOK,
		},
		{
			name:       "no origin header passes through",
			allowed:    []string{"*"},
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := CORS(tt.allowed, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tt.method, "/v1/sync/cards", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Fatalf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if got := rec.Header().Get("Access-Control-Expose-Headers"); got != tt.wantExposed {
				t.Fatalf("Access-Control-Expose-Headers = %q, want %q", got, tt.wantExposed)
			}
		})
	}
}
