package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Middleware is a gin handler installed on the engine in ascending Priority order.
// A nil Handler is skipped.
type Middleware struct {
	Priority int
	Handler  gin.HandlerFunc
}

// AsMiddleware annotates a constructor returning Middleware into the "gin_mw" group.
func AsMiddleware(constructor any) fx.Option {
	return fx.Provide(fx.Annotate(constructor, fx.ResultTags(`group:"gin_mw"`)))
}

func isHealthPath(path string) bool {
	return path == "/health/live" || path == "/health/ready"
}

func requestFields(c *gin.Context) []zap.Field {
	return []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("query", c.Request.URL.RawQuery),
		zap.String("client_ip", c.ClientIP()),
	}
}

// routeKey identifies a route for log throttling.
func routeKey(c *gin.Context) string {
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	return c.Request.Method + " " + route
}

// traceID returns the active trace id or "".
func traceID(c *gin.Context) string {
	if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
		return sc.TraceID().String()
	}
	return ""
}
