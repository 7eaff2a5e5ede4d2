package middleware

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgErrors "gantt-chart-generator/pkg/errors"
	"gantt-chart-generator/pkg/response"
)

const (
	maxTrackedClients = 1000
	clientTTL         = 5 * time.Minute
)

// RateLimit throttles requests per client IP with a token bucket.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.rateLimiter == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if err := m.rateLimiter.Allow(ip); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			c.Header("Retry-After", strconv.Itoa(m.rateLimiter.retryAfter()))
			response.Error(c, pkgErrors.ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one limiter per key and forgets idle keys.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, burst int) *rateLimiter {
	if burst <= 0 {
		burst = max(1, requestsPerMin/10)
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}

// retryAfter is the whole number of seconds until one token refills.
func (rl *rateLimiter) retryAfter() int {
	return int(math.Ceil(1 / float64(rl.rate)))
}
