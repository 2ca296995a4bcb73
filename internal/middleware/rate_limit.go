package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"temporal-intent-engine/pkg/response"
)

// RateLimit throttles each client IP with its own token bucket.
// Idle clients fall out of the LRU after the configured TTL.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiters == nil {
			c.Next()
			return
		}

		key := c.ClientIP()
		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(m.rate, m.burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
