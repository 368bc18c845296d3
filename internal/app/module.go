// Package app assembles the marketplace service from its fx modules.
package app

import (
	"github.com/Sokol111/ecommerce-marketplace/api"
	"github.com/Sokol111/ecommerce-marketplace/internal/auth"
	"github.com/Sokol111/ecommerce-marketplace/internal/handler"
	"github.com/Sokol111/ecommerce-marketplace/internal/repository"
	"github.com/Sokol111/ecommerce-marketplace/internal/service"
	"github.com/Sokol111/ecommerce-marketplace/migrations"
	"github.com/Sokol111/ecommerce-marketplace/pkg/core"
	"github.com/Sokol111/ecommerce-marketplace/pkg/http"
	"github.com/Sokol111/ecommerce-marketplace/pkg/observability"
	"github.com/Sokol111/ecommerce-marketplace/pkg/persistence/mongo"
	"github.com/Sokol111/ecommerce-marketplace/pkg/swaggerui"
	"go.uber.org/fx"
)

// NewMarketplaceModule provides repositories, services and HTTP routes.
// It expects Mongo, *gin.Engine, *viper.Viper and a MeterProvider.
func NewMarketplaceModule() fx.Option {
	return fx.Module("marketplace",
		auth.NewAuthModule(),
		fx.Provide(
			fx.Annotate(repository.NewEventRepository, fx.As(new(service.EventStore))),
			fx.Annotate(repository.NewArtistRepository, fx.As(new(service.ArtistStore))),
			fx.Annotate(repository.NewProductRepository, fx.As(new(service.ProductStore))),
			func(h *auth.BcryptHasher) service.PasswordHasher { return h },
			service.NewMetrics,
			fx.Annotate(service.NewEventService, fx.As(new(handler.EventService))),
			fx.Annotate(service.NewProductService, fx.As(new(handler.ProductService))),
			fx.Annotate(service.NewArtistService, fx.As(new(handler.ArtistService))),
		),
		handler.NewRoutesModule(),
		swaggerui.NewSwaggerModule(swaggerui.SwaggerConfig{
			OpenAPIContent: api.OpenAPI,
			Title:          "Artisan Marketplace API",
		}),
	)
}

// Options returns the complete service: core, observability, Mongo with
// migrations applied on start, the HTTP server and the marketplace module.
func Options(coreOpts ...core.Option) fx.Option {
	return fx.Options(
		core.NewCoreModule(coreOpts...),
		observability.NewObservabilityModule(),
		mongo.NewMongoModule(mongo.WithMigrations(migrations.Source())),
		http.NewHTTPModule(),
		NewMarketplaceModule(),
	)
}
