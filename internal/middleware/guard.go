package middleware

import (
	"github.com/gin-gonic/gin"

	"fanhub-webhooks/pkg/response"
)

// Guard enforces the IP allow list and the per-client rate limit.
func (m Middleware) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.guard == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		ctx := c.Request.Context()

		if err := m.guard.CheckIP(ip); err != nil {
			m.l.Warnf(ctx, "middleware.Guard: %v", err)
			response.Forbidden(c)
			return
		}

		if err := m.guard.CheckRateLimit(ip); err != nil {
			m.l.Warnf(ctx, "middleware.Guard: %v for %s", err, ip)
			response.TooManyRequests(c)
			return
		}

		c.Next()
	}
}
