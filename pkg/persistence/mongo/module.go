package mongo

import (
	"context"
	"fmt"

	"github.com/Sokol111/ecommerce-marketplace/pkg/core/health"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type mongoOptions struct {
	config        *Config
	migration     *MigrationSource
	manualMigrate bool
}

// Option configures the mongo module.
type Option func(*mongoOptions)

// WithMongoConfig supplies a static Config instead of reading the "mongo" section.
func WithMongoConfig(cfg Config) Option {
	return func(o *mongoOptions) {
		o.config = &cfg
	}
}

// WithMigrations registers embedded migrations; they are applied on start
// unless mongo.migrations.enabled is false.
func WithMigrations(source MigrationSource) Option {
	return func(o *mongoOptions) {
		o.migration = &source
	}
}

// WithoutAutoMigration keeps the Migrator available but never applies
// migrations on start. Used by the migrate CLI command.
func WithoutAutoMigration() Option {
	return func(o *mongoOptions) {
		o.manualMigrate = true
	}
}

// NewMongoModule provides Mongo, Admin and, when migrations are registered, Migrator.
func NewMongoModule(opts ...Option) fx.Option {
	o := &mongoOptions{}
	for _, opt := range opts {
		opt(o)
	}

	configProvider := fx.Provide(newConfig)
	if o.config != nil {
		cfg := *o.config
		cfg.setDefaults()
		configProvider = fx.Supply(cfg)
	}

	options := []fx.Option{
		configProvider,
		fx.Provide(provideMongo),
	}

	if o.migration != nil {
		options = append(options,
			fx.Supply(*o.migration),
			fx.Provide(provideMigrator),
		)
		if !o.manualMigrate {
			options = append(options, fx.Invoke(registerAutoMigration))
		}
	}

	return fx.Module("mongo", options...)
}

func provideMongo(lc fx.Lifecycle, log *zap.Logger, conf Config, readiness health.ComponentManager) (Mongo, Admin, error) {
	m, err := newMongo(log, conf)
	if err != nil {
		return nil, nil, err
	}

	markReady := readiness.AddComponent("mongo")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := m.connect(ctx); err != nil {
				return err
			}
			markReady()
			return nil
		},
		OnStop: m.disconnect,
	})

	return m, m, nil
}

func provideMigrator(source MigrationSource, admin Admin, log *zap.Logger) (Migrator, error) {
	return newMigrator(source, admin, log.Named("migrations"))
}

func registerAutoMigration(lc fx.Lifecycle, conf Config, migrator Migrator, readiness health.ComponentManager, log *zap.Logger) {
	if !conf.Migrations.IsEnabled() {
		log.Info("automatic migrations disabled")
		return
	}

	markReady := readiness.AddComponent("mongo-migrations")
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := migrator.Up(); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			markReady()
			return nil
		},
	})
}
