package observability

import (
	appconfig "github.com/Sokol111/ecommerce-marketplace/pkg/core/config"
	"github.com/Sokol111/ecommerce-marketplace/pkg/http/middleware"
	otelconfig "github.com/Sokol111/ecommerce-marketplace/pkg/observability/config"
	otelinternal "github.com/Sokol111/ecommerce-marketplace/pkg/observability/internal"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

// PriorityTelemetry places otelgin outside every other middleware so the
// request logger and problem renderer see the active span.
const PriorityTelemetry = 5

type telemetryParams struct {
	fx.In
	Cfg    otelconfig.Config
	AppCfg appconfig.AppConfig
	TP     trace.TracerProvider
	MP     metric.MeterProvider
}

func newTelemetryMiddleware(p telemetryParams) middleware.Middleware {
	if !p.Cfg.Tracing.Enabled && !p.Cfg.Metrics.Enabled {
		return middleware.Middleware{}
	}

	return middleware.Middleware{
		Priority: PriorityTelemetry,
		Handler: otelgin.Middleware(p.AppCfg.ServiceName,
			otelgin.WithTracerProvider(p.TP),
			otelgin.WithMeterProvider(p.MP),
			otelgin.WithGinFilter(otelinternal.FilterPaths),
		),
	}
}
