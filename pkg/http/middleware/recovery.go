package middleware

import (
	"runtime/debug"

	"github.com/Sokol111/ecommerce-marketplace/pkg/core/logger"
	"github.com/Sokol111/ecommerce-marketplace/pkg/http/problems"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// recoveryMiddleware turns panics into a 500 problem response. It runs outside
// the problem middleware, so it renders the body itself.
func recoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				fields := append(requestFields(c),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
				logger.FromContext(c).Error("panic recovered", fields...)

				if c.Writer.Written() {
					c.Abort()
					return
				}
				p := problems.InternalServerError()
				p.Instance = c.Request.URL.Path
				p.TraceID = traceID(c)
				c.AbortWithStatusJSON(p.Status, p)
			}
		}()
		c.Next()
	}
}
