package middleware

import (
	"context"
	"errors"

	"github.com/Sokol111/ecommerce-marketplace/pkg/http/problems"
	"github.com/Sokol111/ecommerce-marketplace/pkg/http/server"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// newTimeoutMiddleware puts a deadline on the request context. Handlers run
// synchronously; when the deadline expires before a response was written the
// request is answered with 504.
func newTimeoutMiddleware(conf server.Config, log *zap.Logger) gin.HandlerFunc {
	cfg := conf.Timeout
	if !cfg.IsEnabled() {
		return nil
	}

	log.Info("HTTP timeout middleware initialized", zap.Duration("request-timeout", cfg.RequestTimeout))

	return func(c *gin.Context) {
		if isHealthPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			log.Warn("HTTP request timeout",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Duration("timeout", cfg.RequestTimeout),
			)
			abortWithProblem(c, problems.GatewayTimeout("request took too long to process"))
		}
	}
}
