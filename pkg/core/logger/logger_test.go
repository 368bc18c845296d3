package logger

import (
	"testing"

	"github.com/Sokol111/ecommerce-marketplace/pkg/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Modes(t *testing.T) {
	tests := []struct {
		name        string
		development bool
		level       zapcore.Level
	}{
		{name: "development", development: true, level: zapcore.DebugLevel},
		{name: "production", development: false, level: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore := zap.ReplaceGlobals(zap.NewNop())
			t.Cleanup(restore)

			// Given: a configuration writing to stdout
			cfg := Config{
				Level:           tt.level,
				Development:     tt.development,
				OutputPaths:     []string{"stdout"},
				StacktraceLevel: zapcore.ErrorLevel,
			}

			// When: creating logger
			log, level, err := newLogger(cfg)

			// Then: the logger is installed globally with the requested level
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.Equal(t, tt.level, level.Level())
			assert.Same(t, log, zap.L())
			assert.Equal(t, tt.level == zapcore.DebugLevel, log.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestNewLogger_AtomicLevelChangesAtRuntime(t *testing.T) {
	restore := zap.ReplaceGlobals(zap.NewNop())
	t.Cleanup(restore)

	// Given: an info logger
	log, level, err := newLogger(Config{Level: zapcore.InfoLevel, OutputPaths: []string{"stdout"}})
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zapcore.DebugLevel))

	// When: lowering the level
	level.SetLevel(zapcore.DebugLevel)

	// Then: debug becomes enabled
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLogger_InvalidConfig(t *testing.T) {
	// Given: a config with blank error output path
	cfg := Config{ErrorOutputPaths: []string{""}}

	// When: creating logger
	_, _, err := newLogger(cfg)

	// Then: validation fails
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestServiceFields(t *testing.T) {
	// Given
	appCfg := config.AppConfig{ServiceName: "marketplace", Environment: "local"}

	// When
	fields := serviceFields(appCfg)

	// Then
	assert.Equal(t, []zap.Field{zap.String("service", "marketplace"), zap.String("env", "local")}, fields)
	assert.Empty(t, serviceFields(config.AppConfig{}))
}
