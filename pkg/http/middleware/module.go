package middleware

import (
	"time"

	"github.com/Sokol111/ecommerce-marketplace/pkg/core/logger"
	"github.com/Sokol111/ecommerce-marketplace/pkg/http/server"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Priorities of the built-in middlewares (lower runs first, i.e. outermost).
// Tracing registers itself at 5.
const (
	PriorityRecovery    = 10
	PriorityLogger      = 20
	PriorityErrorLogger = 30
	PriorityProblem     = 40
	PriorityTimeout     = 50
	PriorityRateLimit   = 60
	PriorityBulkhead    = 70
)

const errorLogThrottleInterval = time.Minute

// NewGinModule provides *gin.Engine and http.Handler built from the "gin_mw" group.
func NewGinModule() fx.Option {
	return fx.Options(
		AsMiddleware(func() Middleware {
			return Middleware{Priority: PriorityRecovery, Handler: recoveryMiddleware()}
		}),
		AsMiddleware(func(log *zap.Logger) Middleware {
			return Middleware{Priority: PriorityLogger, Handler: loggerMiddleware(log)}
		}),
		AsMiddleware(func(log *zap.Logger) Middleware {
			throttler := logger.NewLogThrottler(log, errorLogThrottleInterval)
			return Middleware{Priority: PriorityErrorLogger, Handler: errorLoggerMiddleware(throttler)}
		}),
		AsMiddleware(func() Middleware {
			return Middleware{Priority: PriorityProblem, Handler: problemMiddleware()}
		}),
		AsMiddleware(func(conf server.Config, log *zap.Logger) Middleware {
			return Middleware{Priority: PriorityTimeout, Handler: newTimeoutMiddleware(conf, log)}
		}),
		AsMiddleware(func(conf server.Config) Middleware {
			return Middleware{Priority: PriorityRateLimit, Handler: newRateLimitMiddleware(conf)}
		}),
		AsMiddleware(func(conf server.Config, log *zap.Logger) Middleware {
			return Middleware{Priority: PriorityBulkhead, Handler: newBulkheadMiddleware(conf, log)}
		}),
		fx.Provide(provideGinAndHandler),
	)
}
