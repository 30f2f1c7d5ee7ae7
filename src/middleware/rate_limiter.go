package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterEntry holds a rate limiter with last used timestamp
type limiterEntry struct {
	limiter  *rate.Limiter
	lastUsed time.Time
}

// ipRateLimiter manages per-IP rate limiters with automatic cleanup
type ipRateLimiter struct {
	limiters map[string]*limiterEntry
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	stopCh   chan struct{}
}

func newIPRateLimiter(limit rate.Limit, burst int) *ipRateLimiter {
	l := &ipRateLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    limit,
		burst:    burst,
		stopCh:   make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

func (l *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.limiters[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastUsed = time.Now()
	return entry.limiter
}

// cleanupLoop removes stale entries every 5 minutes
func (l *ipRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.stopCh:
			return
		}
	}
}

// cleanup removes entries not used in the last 10 minutes
func (l *ipRateLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-10 * time.Minute)
	for ip, entry := range l.limiters {
		if entry.lastUsed.Before(cutoff) {
			delete(l.limiters, ip)
		}
	}
}

// RateLimitConfig defines configuration for the rate limiting middleware
type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
}

// NewIPRateLimitingMiddleware creates a Gin middleware that enforces per-IP limits.
// Used on the auth endpoints to slow down credential guessing.
func NewIPRateLimitingMiddleware(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 3
	}

	limit := rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	limiter := newIPRateLimiter(limit, cfg.Burst)

	return func(c *gin.Context) {
		if !limiter.getLimiter(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message": "Too many requests. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// AuthRateLimitMiddleware is a pre-configured limiter for the login and setup endpoints
func AuthRateLimitMiddleware() gin.HandlerFunc {
	return NewIPRateLimitingMiddleware(RateLimitConfig{
		RequestsPerMinute: 10,
		Burst:             3,
	})
}
