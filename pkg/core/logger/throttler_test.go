package logger

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogThrottler_DefaultInterval(t *testing.T) {
	// When: creating throttler with zero interval
	throttler := NewLogThrottler(zap.NewNop(), 0)

	// Then: interval defaults to five minutes
	assert.Equal(t, defaultThrottleInterval, throttler.interval)
}

func TestLogThrottler_Error_ThrottlesPerKey(t *testing.T) {
	// Given: a throttler with a long interval
	core, logs := observer.New(zapcore.DebugLevel)
	throttler := NewLogThrottler(zap.New(core), time.Hour)

	// When: logging the same key three times and another key once
	first := throttler.Error("POST /api/artists", "request failed", zap.String("field", "value"))
	second := throttler.Error("POST /api/artists", "request failed")
	third := throttler.Error("POST /api/artists", "request failed")
	other := throttler.Error("GET /api/products", "request failed")

	// Then: only the first entry per key is an error
	assert.True(t, first)
	assert.False(t, second)
	assert.False(t, third)
	assert.True(t, other)

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "value", entries[0].ContextMap()["field"])
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestLogThrottler_Warn(t *testing.T) {
	// Given: a throttler
	core, logs := observer.New(zapcore.DebugLevel)
	throttler := NewLogThrottler(zap.New(core), time.Hour)

	// When: warning twice
	throttler.Warn("k", "slow")
	throttler.Warn("k", "slow")

	// Then: WARN then DEBUG
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	assert.Equal(t, zapcore.DebugLevel, logs.All()[1].Level)
}

func TestLogThrottler_ConcurrentAccess(t *testing.T) {
	// Given: a throttler shared by many goroutines
	core, logs := observer.New(zapcore.DebugLevel)
	throttler := NewLogThrottler(zap.New(core), time.Hour)

	// When: logging the same key concurrently
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			throttler.Error("shared", "boom")
		}()
	}
	wg.Wait()

	// Then: exactly one error entry was emitted
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	assert.Equal(t, 49, logs.FilterLevelExact(zapcore.DebugLevel).Len())
}
