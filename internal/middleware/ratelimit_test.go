package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRateLimitAllowsWithinBudget(t *testing.T) {
	m := NewRateLimitMiddleware(60)
	handler := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	m := NewRateLimitMiddleware(5)
	handler := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	req.RemoteAddr = "10.0.0.2:1234"

	blocked := false
	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			blocked = true
			require.Equal(t, "60", rec.Header().Get("Retry-After"))
			break
		}
	}
	require.True(t, blocked)
}

func TestRateLimitIsPerClient(t *testing.T) {
	m := NewRateLimitMiddleware(5)
	handler := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	exhaust := httptest.NewRequest(http.MethodGet, "/customers", nil)
	exhaust.RemoteAddr = "10.0.0.3:1234"
	for i := 0; i < 20; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), exhaust)
	}

	other := httptest.NewRequest(http.MethodGet, "/customers", nil)
	other.RemoteAddr = "10.0.0.4:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	require.Equal(t, http.StatusOK, rec.Code)
}
