package config

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type dotenvConfig struct {
	paths []string
}

// DotEnvOption is a functional option for configuring the dotenv module.
type DotEnvOption func(*dotenvConfig)

// WithDotEnvPath replaces the default file list with a single path.
func WithDotEnvPath(path string) DotEnvOption {
	return func(cfg *dotenvConfig) {
		cfg.paths = []string{path}
	}
}

// defaultDotEnvPaths lists .env.{APP_ENV} before .env. Variables already set
// are never overridden, so earlier files win.
func defaultDotEnvPaths() []string {
	if env := os.Getenv(envAppEnv); env != "" {
		return []string{".env." + env, ".env"}
	}
	return []string{".env"}
}

// loadDotEnv loads every existing file and returns the ones that were read.
func loadDotEnv(paths []string) ([]string, error) {
	var loaded []string
	for _, path := range paths {
		err := godotenv.Load(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return loaded, err
		}
		loaded = append(loaded, path)
	}
	return loaded, nil
}

// NewDotEnvModule loads environment variables from .env files.
// Loading happens when the module is created, so the values are visible to
// every provider that reads the environment.
func NewDotEnvModule(opts ...DotEnvOption) fx.Option {
	cfg := &dotenvConfig{paths: defaultDotEnvPaths()}
	for _, opt := range opts {
		opt(cfg)
	}

	loaded, loadErr := loadDotEnv(cfg.paths)

	return fx.Module("dotenv",
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) error {
			if loadErr != nil {
				return loadErr
			}
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					if len(loaded) > 0 {
						logger.Info("loaded .env files", zap.Strings("paths", loaded))
					} else {
						logger.Debug("no .env file loaded", zap.Strings("paths", cfg.paths))
					}
					return nil
				},
			})
			return nil
		}),
	)
}
