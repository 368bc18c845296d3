package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// viperConfig holds internal configuration options for the Viper module.
type viperConfig struct {
	noConfigFile bool
}

// ViperOption is a functional option for configuring the Viper module.
type ViperOption func(*viperConfig)

// WithoutConfigFile disables loading of any config file.
// Viper will still be available for DI but only backed by environment variables.
func WithoutConfigFile() ViperOption {
	return func(cfg *viperConfig) {
		cfg.noConfigFile = true
	}
}

// NewViperModule creates an fx module for Viper configuration.
// The config file path comes from AppConfig.ConfigFile.
func NewViperModule(opts ...ViperOption) fx.Option {
	cfg := &viperConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	provide := fx.Provide(newViper)
	if cfg.noConfigFile {
		provide = fx.Provide(newEnvOnlyViper)
	}

	return fx.Module("viper",
		provide,
		fx.Invoke(logViperConfig),
	)
}

func logViperConfig(logger *zap.Logger, v *viper.Viper) {
	logger.Info("Configuration loaded successfully",
		zap.String("configFile", v.ConfigFileUsed()),
		zap.Int("settingsCount", len(v.AllSettings())),
	)
}

func newEnvOnlyViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	return v
}

func newViper(appCfg AppConfig) (*viper.Viper, error) {
	v := newEnvOnlyViper()

	if _, err := os.Stat(appCfg.ConfigFile); err != nil {
		return nil, fmt.Errorf("config file [%s] does not exist: %w", appCfg.ConfigFile, err)
	}

	v.SetConfigFile(appCfg.ConfigFile)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file [%s]: %w", appCfg.ConfigFile, err)
	}

	return v, nil
}
