package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"catalog-assistant/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": log.RequestIDFromContext(c.Request.Context())})
	})
	r.POST("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRequestID_Generated(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newEngine(mw, mw.RequestID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(HeaderRequestID)
	if id == "" {
		t.Fatal("expected generated request id header")
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["request_id"] != id {
		t.Errorf("context id %q does not match header %q", body["request_id"], id)
	}
}

func TestRequestID_Propagated(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newEngine(mw, mw.RequestID())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(HeaderRequestID); got != "abc-123" {
		t.Errorf("expected propagated id, got %q", got)
	}
}

func TestCORS_AllowAll(t *testing.T) {
	mw := New(log.NewNop(), Config{AllowedOrigins: []string{"*"}})
	r := newEngine(mw, mw.CORS())

	req := httptest.NewRequest(http.MethodPost, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin, got %q", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newEngine(mw, mw.CORS())

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET,POST,OPTIONS" {
		t.Errorf("unexpected allow-methods header %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin, got %q", got)
	}
}

func TestCORS_ExposesRequestID(t *testing.T) {
	mw := New(log.NewNop(), Config{AllowedOrigins: []string{"http://shop.example.com"}})
	r := newEngine(mw, mw.CORS())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://shop.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Expose-Headers"); !strings.EqualFold(got, HeaderRequestID) {
		t.Errorf("expected exposed %s, got %q", HeaderRequestID, got)
	}
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	mw := New(log.NewNop(), Config{AllowedOrigins: []string{"http://shop.example.com"}})
	r := newEngine(mw, mw.CORS())

	tests := []struct {
		origin     string
		want       string
		wantStatus int
	}{
		{"http://shop.example.com", "http://shop.example.com", http.StatusOK},
		{"http://evil.example.com", "", http.StatusForbidden},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", tt.origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
			t.Errorf("origin %s: got %q, want %q", tt.origin, got, tt.want)
		}
		if w.Code != tt.wantStatus {
			t.Errorf("origin %s: expected %d, got %d", tt.origin, tt.wantStatus, w.Code)
		}
	}
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of 1: the second immediate request is rejected.
	mw := New(log.NewNop(), Config{RateLimitPerMin: 10})
	r := newEngine(mw, mw.RateLimit())

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", second.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(second.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "Too many requests" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newEngine(mw, mw.RateLimit())

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := newRateLimiter(10)
	if !rl.Allow("1.1.1.1") || !rl.Allow("2.2.2.2") {
		t.Fatal("first request per client must pass")
	}
	if rl.Allow("1.1.1.1") {
		t.Error("second request for same client must be limited")
	}
}
