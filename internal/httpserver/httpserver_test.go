package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"catalog-assistant/internal/ask"
	"catalog-assistant/internal/catalog"
	"catalog-assistant/internal/middleware"
	"catalog-assistant/pkg/log"
)

type fakeRepo struct {
	pingErr error
}

func (f *fakeRepo) FindProductsByBrand(ctx context.Context, needle string) ([]catalog.Product, error) {
	return nil, nil
}
func (f *fakeRepo) FindProductByName(ctx context.Context, needle string) (catalog.Product, error) {
	return catalog.Product{}, nil
}
func (f *fakeRepo) FindSuppliersByCategory(ctx context.Context, needle string) ([]catalog.Supplier, error) {
	return nil, nil
}
func (f *fakeRepo) Ping(ctx context.Context) error { return f.pingErr }

type fakeUseCase struct{}

func (fakeUseCase) Route(ctx context.Context, input ask.AskInput) (ask.AskOutput, error) {
	return ask.AskOutput{}, ask.ErrInvalidQuery
}

func newTestServer(t *testing.T, repo *fakeRepo, mw middleware.Config, trustedProxies ...string) *HTTPServer {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Port:           5000,
		Mode:           gin.TestMode,
		Environment:    environmentProduction,
		TrustedProxies: trustedProxies,
		Middleware:     mw,
		CatalogRepo:    repo,
		AskUseCase:     fakeUseCase{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode}); err == nil {
		t.Error("expected error without port and dependencies")
	}
}

func TestReadyCheck(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{"db up", nil, http.StatusOK},
		{"db down", errors.New("connection refused"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, &fakeRepo{pingErr: tt.pingErr}, middleware.Config{})
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, &fakeRepo{}, middleware.Config{})

	for _, path := range []string{"/health", "/live"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestAskRoutes(t *testing.T) {
	srv := newTestServer(t, &fakeRepo{}, middleware.Config{AllowedOrigins: []string{"*"}})

	for _, path := range []string{"/api/ask", "/api/v1/ask"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"query":"what is the weather"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["error"] != "Invalid query" {
			t.Errorf("%s: unexpected body %v", path, body)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Errorf("%s: expected CORS header", path)
		}
		if w.Header().Get(middleware.HeaderRequestID) == "" {
			t.Errorf("%s: expected request id header", path)
		}
	}
}

func TestAskRoutes_Preflight(t *testing.T) {
	srv := newTestServer(t, &fakeRepo{}, middleware.Config{})

	req := httptest.NewRequest(http.MethodOptions, "/api/ask", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
}

func TestRateLimit_ForwardedFor(t *testing.T) {
	// httptest requests come from 192.0.2.1; 10/min gives a burst of 1.
	tests := []struct {
		name           string
		trustedProxies []string
		wantLimited    bool
	}{
		{"untrusted peer ignores header", nil, true},
		{"trusted proxy honors header", []string{"192.0.2.0/24"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, &fakeRepo{}, middleware.Config{RateLimitPerMin: 10}, tt.trustedProxies...)

			limited := 0
			for i := 1; i <= 5; i++ {
				req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(`{"query":"hi"}`))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("X-Forwarded-For", fmt.Sprintf("1.2.3.%d", i))
				w := httptest.NewRecorder()
				srv.Handler().ServeHTTP(w, req)
				if w.Code == http.StatusTooManyRequests {
					limited++
				}
			}

			if tt.wantLimited && limited != 4 {
				t.Errorf("expected 4 rejected requests, got %d", limited)
			}
			if !tt.wantLimited && limited != 0 {
				t.Errorf("expected no rejected requests, got %d", limited)
			}
		})
	}
}

func TestNew_InvalidTrustedProxy(t *testing.T) {
	_, err := New(log.NewNop(), Config{
		Port:           5000,
		Mode:           gin.TestMode,
		TrustedProxies: []string{"not-an-ip"},
		CatalogRepo:    &fakeRepo{},
		AskUseCase:     fakeUseCase{},
	})
	if err == nil {
		t.Error("expected error for invalid trusted proxy")
	}
}

func TestRecovery(t *testing.T) {
	srv := newTestServer(t, &fakeRepo{}, middleware.Config{})
	srv.Handler().GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"error":"Internal server error"}` {
		t.Errorf("unexpected body %s", got)
	}
}
