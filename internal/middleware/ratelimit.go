package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware applies one per-client-IP bucket across the whole API.
// It is general backpressure, not an authentication control: there is no
// per-account tracking and no special budget for the login endpoint.
type RateLimitMiddleware struct {
	rpm     int
	mu      sync.Mutex
	clients map[string]*clientLimiter
}

func NewRateLimitMiddleware(rpm int) *RateLimitMiddleware {
	if rpm <= 0 {
		rpm = 300
	}

	return &RateLimitMiddleware{
		rpm:     rpm,
		clients: map[string]*clientLimiter{},
	}
}

func (m *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := m.getLimiter(extractClientIP(r))

		if !client.limiter.Allow() {
			w.Header().Set("Retry-After", "60")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = jsonEncode(w, map[string]string{"message": "Too many requests"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) getLimiter(clientIP string) *clientLimiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	if client, exists := m.clients[clientIP]; exists {
		client.lastSeen = time.Now()
		m.gcLocked()
		return client
	}

	created := &clientLimiter{
		limiter:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.rpm)), m.rpm),
		lastSeen: time.Now(),
	}
	m.clients[clientIP] = created
	m.gcLocked()

	return created
}

func (m *RateLimitMiddleware) gcLocked() {
	if len(m.clients) < 1000 {
		return
	}

	cutoff := time.Now().Add(-10 * time.Minute)
	for ip, client := range m.clients {
		if client.lastSeen.Before(cutoff) {
			delete(m.clients, ip)
		}
	}
}

func extractClientIP(r *http.Request) string {
	forwarded := strings.TrimSpace(r.Header.Get("X-Forwarded-For"))
	if forwarded != "" {
		parts := strings.Split(forwarded, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}

	realIP := strings.TrimSpace(r.Header.Get("X-Real-IP"))
	if realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}

	if strings.TrimSpace(r.RemoteAddr) == "" {
		return "unknown"
	}

	return r.RemoteAddr
}
