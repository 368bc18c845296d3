package core

import (
	"time"

	"github.com/Sokol111/ecommerce-marketplace/pkg/core/config"
	"github.com/Sokol111/ecommerce-marketplace/pkg/core/health"
	"github.com/Sokol111/ecommerce-marketplace/pkg/core/logger"
	"go.uber.org/fx"
)

type coreOptions struct {
	appConfig          *config.AppConfig
	loggerConfig       *logger.Config
	disableDotEnv      bool
	disableViperConfig bool
}

// Option configures the core module.
type Option func(*coreOptions)

// WithAppConfig provides a static AppConfig instead of reading environment variables.
func WithAppConfig(cfg config.AppConfig) Option {
	return func(opts *coreOptions) {
		opts.appConfig = &cfg
	}
}

// WithLoggerConfig provides a static logger Config instead of the "logger" section.
func WithLoggerConfig(cfg logger.Config) Option {
	return func(opts *coreOptions) {
		opts.loggerConfig = &cfg
	}
}

// WithoutEnvFile disables loading of the .env file.
func WithoutEnvFile() Option {
	return func(opts *coreOptions) {
		opts.disableDotEnv = true
	}
}

// WithoutConfigFile disables loading of the YAML config file; viper is backed
// by environment variables only.
func WithoutConfigFile() Option {
	return func(opts *coreOptions) {
		opts.disableViperConfig = true
	}
}

// NewCoreModule provides config, logger and readiness tracking.
//
//	core.NewCoreModule(
//	    core.WithAppConfig(config.AppConfig{...}),
//	    core.WithoutEnvFile(),
//	    core.WithoutConfigFile(),
//	)
func NewCoreModule(opts ...Option) fx.Option {
	cfg := &coreOptions{}
	for _, opt := range opts {
		opt(cfg)
	}

	var modules []fx.Option
	if !cfg.disableDotEnv {
		modules = append(modules, config.NewDotEnvModule())
	}

	var viperOpts []config.ViperOption
	if cfg.disableViperConfig {
		viperOpts = append(viperOpts, config.WithoutConfigFile())
	}

	var appOpts []config.AppConfigOption
	if cfg.appConfig != nil {
		appOpts = append(appOpts, config.WithAppConfig(*cfg.appConfig))
	}

	var loggerOpts []logger.Option
	if cfg.loggerConfig != nil {
		loggerOpts = append(loggerOpts, logger.WithLoggerConfig(*cfg.loggerConfig))
	}

	modules = append(modules,
		fx.StartTimeout(2*time.Minute),
		fx.StopTimeout(time.Minute),
		config.NewAppConfigModule(appOpts...),
		config.NewViperModule(viperOpts...),
		logger.NewZapLoggingModule(loggerOpts...),
		health.NewReadinessModule(),
	)

	return fx.Options(modules...)
}
