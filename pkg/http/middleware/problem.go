package middleware

import (
	"github.com/Sokol111/ecommerce-marketplace/pkg/http/problems"
	"github.com/gin-gonic/gin"
)

// problemMiddleware renders errors collected in c.Errors as a Problem body.
// The last error carrying a *problems.Problem as Meta wins; errors without one
// become a generic 500 so internal details never reach the client.
func problemMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		p := problems.InternalServerError()
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if existing, ok := c.Errors[i].Meta.(*problems.Problem); ok {
				copied := *existing
				p = &copied
				break
			}
		}

		if p.Instance == "" {
			p.Instance = c.Request.URL.Path
		}
		if p.TraceID == "" {
			p.TraceID = traceID(c)
		}

		c.JSON(p.Status, p)
	}
}
