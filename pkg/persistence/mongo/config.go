package mongo

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ConnectionString string `mapstructure:"connection-string"`
	Host             string `mapstructure:"host"`
	Port             int    `mapstructure:"port"`
	ReplicaSet       string `mapstructure:"replica-set"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	DirectConnection bool   `mapstructure:"direct-connection"`

	MaxPoolSize         uint64        `mapstructure:"max-pool-size"`
	MinPoolSize         uint64        `mapstructure:"min-pool-size"`
	MaxConnIdleTime     time.Duration `mapstructure:"max-conn-idle-time"`
	ConnectTimeout      time.Duration `mapstructure:"connect-timeout"`
	ServerSelectTimeout time.Duration `mapstructure:"server-select-timeout"`

	// QueryTimeout bounds every collection call.
	QueryTimeout time.Duration `mapstructure:"query-timeout"`

	// ConnectRetryMaxElapsed caps the startup ping retries.
	ConnectRetryMaxElapsed time.Duration `mapstructure:"connect-retry-max-elapsed"`

	Migrations MigrationsConfig `mapstructure:"migrations"`
}

type MigrationsConfig struct {
	Enabled *bool `mapstructure:"enabled"`
	// CollectionName stores applied migration versions.
	CollectionName string `mapstructure:"collection-name"`
	// LockingTimeout is the advisory lock timeout in seconds.
	LockingTimeout int `mapstructure:"locking-timeout"`
}

func (c MigrationsConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

func newConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if sub := v.Sub("mongo"); sub != nil {
		if err := sub.Unmarshal(&cfg); err != nil {
			return cfg, fmt.Errorf("failed to load mongo config: %w", err)
		}
	}

	cfg.setDefaults()

	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.MaxPoolSize == 0 {
		c.MaxPoolSize = 100
	}
	if c.MinPoolSize == 0 {
		c.MinPoolSize = 5
	}
	if c.MaxConnIdleTime == 0 {
		c.MaxConnIdleTime = 5 * time.Minute
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = 10 * time.Second
	}
	if c.ServerSelectTimeout == 0 {
		c.ServerSelectTimeout = 30 * time.Second
	}
	if c.QueryTimeout == 0 {
		c.QueryTimeout = 10 * time.Second
	}
	if c.ConnectRetryMaxElapsed == 0 {
		c.ConnectRetryMaxElapsed = time.Minute
	}
	if c.Migrations.CollectionName == "" {
		c.Migrations.CollectionName = "schema_migrations"
	}
	if c.Migrations.LockingTimeout == 0 {
		c.Migrations.LockingTimeout = 15
	}
}

func validateConfig(conf Config) error {
	if conf.Database == "" {
		return fmt.Errorf("invalid mongo configuration: database is required")
	}
	if conf.ConnectionString != "" {
		return nil
	}
	if conf.Host == "" || conf.Port == 0 {
		return fmt.Errorf("invalid mongo configuration: host and port or connection-string are required")
	}
	return nil
}
