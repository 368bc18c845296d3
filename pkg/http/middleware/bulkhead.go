package middleware

import (
	"context"

	"github.com/Sokol111/ecommerce-marketplace/pkg/http/problems"
	"github.com/Sokol111/ecommerce-marketplace/pkg/http/server"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// newBulkheadMiddleware caps the number of requests processed concurrently.
func newBulkheadMiddleware(conf server.Config, log *zap.Logger) gin.HandlerFunc {
	cfg := conf.Bulkhead
	if !cfg.IsEnabled() {
		return nil
	}

	sem := semaphore.NewWeighted(int64(cfg.MaxConcurrent))

	log.Info("HTTP bulkhead initialized",
		zap.Int("max-concurrent", cfg.MaxConcurrent),
		zap.Duration("timeout", cfg.Timeout),
	)

	return func(c *gin.Context) {
		if isHealthPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		err := sem.Acquire(ctx, 1)
		cancel()
		if err != nil {
			log.Warn("HTTP bulkhead full, rejecting request",
				zap.Int("max-concurrent", cfg.MaxConcurrent),
				zap.Error(err),
			)
			abortWithProblem(c, problems.ServiceUnavailable("too many concurrent requests, please try again later"))
			return
		}
		defer sem.Release(1)

		c.Next()
	}
}
