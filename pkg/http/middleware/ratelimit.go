package middleware

import (
	"github.com/Sokol111/ecommerce-marketplace/pkg/http/problems"
	"github.com/Sokol111/ecommerce-marketplace/pkg/http/server"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// newRateLimitMiddleware applies a process-wide token bucket.
func newRateLimitMiddleware(conf server.Config) gin.HandlerFunc {
	cfg := conf.RateLimit
	if !cfg.IsEnabled() {
		return nil
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)

	return func(c *gin.Context) {
		if isHealthPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		if !limiter.Allow() {
			abortWithProblem(c, problems.TooManyRequests("rate limit exceeded, please try again later"))
			return
		}

		c.Next()
	}
}
