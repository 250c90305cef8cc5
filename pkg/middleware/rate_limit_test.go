package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitbook/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
}

func TestClientRateLimiter_Allow(t *testing.T) {
	limiter := NewClientRateLimiter(3, time.Minute, DefaultClientExtractor, testLogger())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		if !limiter.Allow("client-a") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if limiter.Allow("client-a") {
		t.Error("fourth request should be blocked")
	}
	if !limiter.Allow("client-b") {
		t.Error("different client should not share the bucket")
	}
}

func TestClientRateLimiter_EmptyKeyExempt(t *testing.T) {
	limiter := NewClientRateLimiter(1, time.Minute, DefaultClientExtractor, testLogger())
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		if !limiter.Allow("") {
			t.Fatal("empty key must never be limited")
		}
	}
}

func TestClientRateLimiter_WindowExpiry(t *testing.T) {
	limiter := NewClientRateLimiter(1, 20*time.Millisecond, DefaultClientExtractor, testLogger())
	defer limiter.Stop()

	if !limiter.Allow("client") {
		t.Fatal("first request should be allowed")
	}
	if limiter.Allow("client") {
		t.Fatal("second request inside the window should be blocked")
	}

	time.Sleep(30 * time.Millisecond)
	if !limiter.Allow("client") {
		t.Error("request after the window expired should be allowed")
	}
}

func TestClientRateLimit_Returns429(t *testing.T) {
	limiter := NewClientRateLimiter(1, time.Minute, DefaultClientExtractor, testLogger())
	defer limiter.Stop()

	handler := ClientRateLimit(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/classes/", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/classes/", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", second.Code)
	}
}

func TestDefaultClientExtractor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	if got := DefaultClientExtractor(req); got != "10.0.0.1" {
		t.Errorf("extractor = %q, want 10.0.0.1", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	if got := DefaultClientExtractor(req); got != "203.0.113.9" {
		t.Errorf("extractor = %q, want forwarded address", got)
	}
}
