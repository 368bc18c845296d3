package logger

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const defaultThrottleInterval = 5 * time.Minute

// LogThrottler logs each key at ERROR at most once per interval and at DEBUG
// in between. Instances keep independent limiter maps.
type LogThrottler struct {
	log      *zap.Logger
	limiters sync.Map // map[string]*rate.Limiter
	interval time.Duration
}

// NewLogThrottler creates a LogThrottler. A zero interval means five minutes.
func NewLogThrottler(log *zap.Logger, interval time.Duration) *LogThrottler {
	if interval <= 0 {
		interval = defaultThrottleInterval
	}
	return &LogThrottler{
		log:      log,
		interval: interval,
	}
}

// Error logs msg at ERROR when the key's budget allows it, DEBUG otherwise.
// It reports whether the entry was emitted at ERROR.
func (t *LogThrottler) Error(key string, msg string, fields ...zap.Field) bool {
	if t.getLimiter(key).Allow() {
		t.log.Error(msg, fields...)
		return true
	}
	t.log.Debug(msg, fields...)
	return false
}

// Warn is like Error but uses the WARN level.
func (t *LogThrottler) Warn(key string, msg string, fields ...zap.Field) bool {
	if t.getLimiter(key).Allow() {
		t.log.Warn(msg, fields...)
		return true
	}
	t.log.Debug(msg, fields...)
	return false
}

func (t *LogThrottler) getLimiter(key string) *rate.Limiter {
	if limiter, ok := t.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(rate.Every(t.interval), 1)
	actual, _ := t.limiters.LoadOrStore(key, limiter)
	return actual.(*rate.Limiter)
}
