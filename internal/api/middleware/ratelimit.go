package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// RateLimiter implements a fixed-window in-memory rate limiter keyed by
// client IP. Single-process only; a shared deployment needs a
// distributed limiter instead.
type RateLimiter struct {
	clients  map[string]*clientWindow
	requests int
	window   time.Duration
	mu       sync.Mutex
}

type clientWindow struct {
	resetAt time.Time
	count   int
}

// NewRateLimiter creates a rate limiter allowing requests per window
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients:  make(map[string]*clientWindow),
		requests: requests,
		window:   window,
	}
	go rl.cleanup()
	return rl
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(clientID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	client, exists := rl.clients[clientID]
	if !exists || now.After(client.resetAt) {
		rl.clients[clientID] = &clientWindow{count: 1, resetAt: now.Add(rl.window)}
		return true
	}
	if client.count < rl.requests {
		client.count++
		return true
	}
	return false
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for clientID, client := range rl.clients {
			if now.After(client.resetAt) {
				delete(rl.clients, clientID)
			}
		}
		rl.mu.Unlock()
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
