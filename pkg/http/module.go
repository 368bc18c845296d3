// Package http bundles the HTTP server, gin middleware chain and health routes.
package http

import (
	"github.com/Sokol111/ecommerce-marketplace/pkg/http/health"
	"github.com/Sokol111/ecommerce-marketplace/pkg/http/middleware"
	"github.com/Sokol111/ecommerce-marketplace/pkg/http/server"
	"go.uber.org/fx"
)

type httpOptions struct {
	serverOpts []server.Option
}

// Option configures the HTTP module.
type Option func(*httpOptions)

// WithServerConfig supplies a static server Config instead of the "server" section.
func WithServerConfig(cfg server.Config) Option {
	return func(opts *httpOptions) {
		opts.serverOpts = append(opts.serverOpts, server.WithServerConfig(cfg))
	}
}

// NewHTTPModule provides the gin engine, its middleware chain, health routes
// and the server serving them.
func NewHTTPModule(opts ...Option) fx.Option {
	o := &httpOptions{}
	for _, opt := range opts {
		opt(o)
	}

	return fx.Options(
		server.NewHTTPServerModule(o.serverOpts...),
		middleware.NewGinModule(),
		health.NewHealthRoutesModule(),
	)
}
