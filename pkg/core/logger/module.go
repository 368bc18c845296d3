package logger

import (
	"context"
	"errors"
	"fmt"
	"syscall"

	"github.com/Sokol111/ecommerce-marketplace/pkg/core/config"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

type moduleOptions struct {
	config *Config
}

// Option configures the logging module.
type Option func(*moduleOptions)

// WithLoggerConfig supplies a static Config instead of reading the "logger" section.
func WithLoggerConfig(cfg Config) Option {
	return func(o *moduleOptions) {
		o.config = &cfg
	}
}

// NewZapLoggingModule provides *zap.Logger and zap.AtomicLevel and installs
// the logger as the fx event logger.
func NewZapLoggingModule(opts ...Option) fx.Option {
	o := &moduleOptions{}
	for _, opt := range opts {
		opt(o)
	}

	configProvider := fx.Provide(newConfig)
	if o.config != nil {
		configProvider = fx.Supply(*o.config)
	}

	return fx.Options(
		configProvider,
		fx.Provide(provideLogger),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
	)
}

func provideLogger(lc fx.Lifecycle, conf Config, appCfg config.AppConfig) (*zap.Logger, zap.AtomicLevel, error) {
	logger, level, err := newLogger(conf, serviceFields(appCfg)...)
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("failed to create logger: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			// stderr/stdout cannot be synced on some platforms
			if err := logger.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) && !errors.Is(err, syscall.ENOTTY) {
				return err
			}
			return nil
		},
	})

	return logger, level, nil
}

func serviceFields(appCfg config.AppConfig) []zap.Field {
	var fields []zap.Field
	if appCfg.ServiceName != "" {
		fields = append(fields, zap.String("service", appCfg.ServiceName))
	}
	if appCfg.Environment != "" {
		fields = append(fields, zap.String("env", appCfg.Environment))
	}
	return fields
}
