package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

func limitedRouter(limiter *IPRateLimiter) *mux.Router {
	router := mux.NewRouter()
	router.Use(limiter.Middleware())
	router.HandleFunc("/api/genres", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return router
}

func hit(router *mux.Router, remoteAddr string) int {
	request := httptest.NewRequest(http.MethodGet, "/api/genres", nil)
	request.RemoteAddr = remoteAddr
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder.Code
}

func TestRateLimiterExhaustsBurst(t *testing.T) {
	router := limitedRouter(NewIPRateLimiter(rate.Every(time.Hour), 3))

	for i := 0; i < 3; i++ {
		if code := hit(router, "10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, code)
		}
	}
	if code := hit(router, "10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429 after burst", code)
	}
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	router := limitedRouter(NewIPRateLimiter(rate.Every(time.Hour), 1))

	if code := hit(router, "10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("first client: status = %d", code)
	}
	if code := hit(router, "10.0.0.1:5678"); code != http.StatusTooManyRequests {
		t.Fatalf("same IP, new port: status = %d, want shared bucket", code)
	}
	if code := hit(router, "10.0.0.2:1234"); code != http.StatusOK {
		t.Fatalf("different IP: status = %d, want fresh bucket", code)
	}
}

func TestRateLimiterSetsRetryAfter(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Every(time.Hour), 1)
	router := limitedRouter(limiter)

	hit(router, "10.0.0.1:1234")
	request := httptest.NewRequest(http.MethodGet, "/api/genres", nil)
	request.RemoteAddr = "10.0.0.1:1234"
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d", recorder.Code)
	}
	if recorder.Header().Get("Retry-After") != "60" {
		t.Fatalf("Retry-After = %q", recorder.Header().Get("Retry-After"))
	}
}

func TestClientIPPrefersForwardedHeaders(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		realIP     string
		remoteAddr string
		want       string
	}{
		{"forwarded chain", "203.0.113.5, 10.0.0.1", "", "10.0.0.2:80", "203.0.113.5"},
		{"single forwarded", "203.0.113.5", "", "10.0.0.2:80", "203.0.113.5"},
		{"real ip", "", "203.0.113.9", "10.0.0.2:80", "203.0.113.9"},
		{"socket peer", "", "", "198.51.100.7:4321", "198.51.100.7"},
	}
	for _, tc := range tests {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.RemoteAddr = tc.remoteAddr
		if tc.xff != "" {
			request.Header.Set("X-Forwarded-For", tc.xff)
		}
		if tc.realIP != "" {
			request.Header.Set("X-Real-IP", tc.realIP)
		}
		if got := clientIP(request); got != tc.want {
			t.Fatalf("%s: clientIP = %q, want %q", tc.name, got, tc.want)
		}
	}
}
