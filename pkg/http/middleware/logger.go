package middleware

import (
	"time"

	"github.com/Sokol111/ecommerce-marketplace/pkg/core/logger"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// loggerMiddleware attaches a request-scoped logger (with trace ids when a
// span is active) to the request context and logs the completed request.
func loggerMiddleware(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isHealthPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		log := base
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.IsValid() {
			log = log.With(
				zap.String("trace_id", sc.TraceID().String()),
				zap.String("span_id", sc.SpanID().String()),
			)
		}
		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), log))

		start := time.Now()
		c.Next()

		fields := append(requestFields(c),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("user_agent", c.Request.UserAgent()),
		)
		log.Debug("request completed", fields...)
	}
}
