package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roguepikachu/smileline/internal/ratelimit"
	"github.com/roguepikachu/smileline/pkg"
	"github.com/roguepikachu/smileline/pkg/logger"
)

// RateLimit rejects requests over the limiter's budget, keyed by client IP.
// Limiter errors let the request through.
func RateLimit(l ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ip := c.ClientIP()
		ok, err := l.Allow(ctx, ip)
		if err != nil {
			logger.Warn(ctx, "rate limiter unavailable, allowing request: %v", err)
			c.Next()
			return
		}
		if !ok {
			logger.WithField(ctx, "ip", ip).Warn("rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, pkg.NewError("rate_limited", "too many requests, try again later"))
			return
		}
		c.Next()
	}
}
