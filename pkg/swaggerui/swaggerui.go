// Package swaggerui serves an OpenAPI document and a Swagger UI page for it.
package swaggerui

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

const (
	specRoute    = "/openapi.yaml"
	defaultRoute = "/swagger"
	defaultTitle = "API documentation"
)

type SwaggerConfig struct {
	OpenAPIContent []byte
	Route          string
	Title          string
}

var pageTemplate = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui'
    });
  </script>
</body>
</html>`))

func registerSwaggerUI(router *gin.Engine, cfg SwaggerConfig) {
	router.GET(specRoute, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", cfg.OpenAPIContent)
	})

	route := cfg.Route
	if route == "" {
		route = defaultRoute
	}
	title := cfg.Title
	if title == "" {
		title = defaultTitle
	}

	router.GET(route, func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		_ = pageTemplate.Execute(c.Writer, struct{ Title string }{Title: title})
	})
}

// NewSwaggerModule registers the document and UI routes on the gin engine.
func NewSwaggerModule(cfg SwaggerConfig) fx.Option {
	return fx.Invoke(func(r *gin.Engine) {
		registerSwaggerUI(r, cfg)
	})
}
