package server

import (
	"context"
	"net/http"

	"github.com/Sokol111/ecommerce-marketplace/pkg/core/health"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type serverOptions struct {
	config *Config
}

// Option configures the HTTP server module.
type Option func(*serverOptions)

// WithServerConfig supplies a static Config instead of the "server" section.
func WithServerConfig(cfg Config) Option {
	return func(o *serverOptions) {
		o.config = &cfg
	}
}

// NewHTTPServerModule serves the provided http.Handler for the application lifetime.
func NewHTTPServerModule(opts ...Option) fx.Option {
	o := &serverOptions{}
	for _, opt := range opts {
		opt(o)
	}

	configProvider := fx.Provide(newConfig)
	if o.config != nil {
		cfg := *o.config
		cfg.setDefaults()
		configProvider = fx.Supply(cfg)
	}

	return fx.Options(
		configProvider,
		fx.Invoke(startHTTPServer),
	)
}

func startHTTPServer(lc fx.Lifecycle, log *zap.Logger, conf Config, handler http.Handler, readiness health.ComponentManager, shutdowner fx.Shutdowner) {
	srv := newServer(log, conf, handler)
	markReady := readiness.AddComponent("http-server")

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := srv.listen()
			if err != nil {
				return err
			}
			markReady()

			go func() {
				if err := srv.serve(ln); err != nil {
					log.Error("HTTP server failed, shutting down application", zap.Error(err))
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, conf.ShutdownTimeout)
			defer cancel()
			return srv.shutdown(ctx)
		},
	})
}
