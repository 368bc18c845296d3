package middleware

import (
	"net/http"

	"github.com/Sokol111/ecommerce-marketplace/pkg/core/logger"
	"github.com/Sokol111/ecommerce-marketplace/pkg/http/problems"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// errorLoggerMiddleware logs errors collected by handlers. Client errors are
// logged at INFO; server errors go through the throttler so that a failing
// dependency does not flood the log.
func errorLoggerMiddleware(throttler *logger.LogThrottler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		status := c.Writer.Status()
		for _, e := range c.Errors {
			if p, ok := e.Meta.(*problems.Problem); ok {
				status = p.Status
			}
		}

		log := logger.FromContext(c)
		for _, e := range c.Errors {
			fields := append(requestFields(c),
				zap.Int("status", status),
				zap.String("error", e.Error()),
			)
			if status < http.StatusInternalServerError {
				log.Info("request rejected", fields...)
				continue
			}
			throttler.Error(routeKey(c), "request failed", fields...)
		}
	}
}
