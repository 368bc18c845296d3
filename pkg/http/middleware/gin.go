package middleware

import (
	"net/http"
	"sort"

	"github.com/Sokol111/ecommerce-marketplace/pkg/http/problems"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

type mwIn struct {
	fx.In
	Middlewares []Middleware `group:"gin_mw"`
}

func provideGinAndHandler(in mwIn) (*gin.Engine, http.Handler) {
	e := newEngine(in.Middlewares)
	return e, e
}

func newEngine(mws []Middleware) *gin.Engine {
	engine := gin.New(func(e *gin.Engine) {
		e.ContextWithFallback = true
		e.HandleMethodNotAllowed = true
	})

	sorted := append([]Middleware(nil), mws...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Priority < sorted[j].Priority })
	for _, m := range sorted {
		if m.Handler == nil {
			continue
		}
		engine.Use(m.Handler)
	}

	engine.NoRoute(func(c *gin.Context) {
		abortWithProblem(c, problems.NotFound("route not found"))
	})
	engine.NoMethod(func(c *gin.Context) {
		abortWithProblem(c, problems.New(http.StatusMethodNotAllowed, "method not allowed"))
	})

	return engine
}

// abortWithProblem records p for the problem middleware and stops the chain.
func abortWithProblem(c *gin.Context, p *problems.Problem) {
	p.Instance = c.Request.URL.Path
	_ = c.Error(p).SetMeta(p)
	c.Abort()
}
