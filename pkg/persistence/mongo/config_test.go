package mongo

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_AppliesDefaults(t *testing.T) {
	// Given: minimal mongo section
	v := viper.New()
	v.Set("mongo.host", "localhost")
	v.Set("mongo.port", 27017)
	v.Set("mongo.database", "marketplace")

	// When: loading config
	cfg, err := newConfig(v)

	// Then: defaults are filled in
	require.NoError(t, err)
	assert.Equal(t, uint64(100), cfg.MaxPoolSize)
	assert.Equal(t, uint64(5), cfg.MinPoolSize)
	assert.Equal(t, 10*time.Second, cfg.QueryTimeout)
	assert.Equal(t, time.Minute, cfg.ConnectRetryMaxElapsed)
	assert.Equal(t, "schema_migrations", cfg.Migrations.CollectionName)
	assert.Equal(t, 15, cfg.Migrations.LockingTimeout)
	assert.True(t, cfg.Migrations.IsEnabled())
}

func TestNewConfig_ExplicitValues(t *testing.T) {
	// Given: a fully specified section
	v := viper.New()
	v.Set("mongo.connection-string", "mongodb://db:27017")
	v.Set("mongo.database", "marketplace")
	v.Set("mongo.query-timeout", "2s")
	v.Set("mongo.migrations.enabled", false)
	v.Set("mongo.migrations.collection-name", "migrations")

	// When: loading config
	cfg, err := newConfig(v)

	// Then: explicit values win
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.QueryTimeout)
	assert.False(t, cfg.Migrations.IsEnabled())
	assert.Equal(t, "migrations", cfg.Migrations.CollectionName)
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		setup func(v *viper.Viper)
		err   string
	}{
		{
			name:  "missing section",
			setup: func(*viper.Viper) {},
			err:   "database is required",
		},
		{
			name: "missing host",
			setup: func(v *viper.Viper) {
				v.Set("mongo.database", "marketplace")
				v.Set("mongo.port", 27017)
			},
			err: "host and port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			v := viper.New()
			tt.setup(v)

			// When
			_, err := newConfig(v)

			// Then
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}
