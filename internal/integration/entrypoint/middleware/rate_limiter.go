// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/print-shop/ledger/internal/domain/error"
	"github.com/print-shop/ledger/internal/integration/entrypoint/dto"
)

// rateLimitEntry tracks rate limit data for a single client.
type rateLimitEntry struct {
	requests  int
	resetTime time.Time
}

// RateLimiter is a fixed-window, per-client-IP request limiter.
// It guards endpoints whose responses are expensive to render.
type RateLimiter struct {
	mu          sync.Mutex
	entries     map[string]*rateLimitEntry
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

// NewRateLimiter creates a limiter allowing maxRequests per window and client.
// A non-positive maxRequests disables the limiter.
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		entries:     make(map[string]*rateLimitEntry),
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

// Middleware returns a Gin middleware handler that enforces the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.maxRequests <= 0 {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(clientIP) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many export requests. Please try again later.",
				Code:  string(domainerror.ErrCodeExportThrottled),
			})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	// Drop expired windows.
	for k, e := range rl.entries {
		if now.After(e.resetTime) {
			delete(rl.entries, k)
		}
	}

	entry, exists := rl.entries[key]
	if !exists {
		rl.entries[key] = &rateLimitEntry{
			requests:  1,
			resetTime: now.Add(rl.window),
		}
		return true
	}

	if entry.requests < rl.maxRequests {
		entry.requests++
		return true
	}
	return false
}
