package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// NewRoutesModule registers the marketplace API on the shared *gin.Engine.
// EventService, ProductService and ArtistService must be provided.
func NewRoutesModule() fx.Option {
	return fx.Module("handler",
		fx.Provide(newEventHandler, newProductHandler, newArtistHandler),
		fx.Invoke(registerRoutes),
	)
}

func registerRoutes(r *gin.Engine, events *eventHandler, products *productHandler, artists *artistHandler) {
	api := r.Group("/api")

	artistRoutes := api.Group("/artists")
	artistRoutes.POST("", artists.create)
	artistRoutes.POST("/create-event", events.create)
	artistRoutes.DELETE("/delete-event", events.delete)
	artistRoutes.PATCH("/update-event", events.update)
	artistRoutes.POST("/join-events", events.join)
	artistRoutes.POST("/add-product", products.create)

	api.GET("/products", products.list)
	api.GET("/events", events.list)
	api.GET("/events/:eventid", events.get)
}
