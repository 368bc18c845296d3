package metrics

import (
	"testing"

	otelconfig "github.com/Sokol111/ecommerce-marketplace/pkg/observability/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

type nopComponents struct{}

func (nopComponents) AddComponent(string) func() { return func() {} }

func TestProvideMeterProvider_Disabled(t *testing.T) {
	// Given
	p := providerParams{
		Lc:        fxtest.NewLifecycle(t),
		Log:       zap.NewNop(),
		Cfg:       otelconfig.Config{},
		Readiness: nopComponents{},
	}

	// When
	mp, err := provideMeterProvider(p)

	// Then
	require.NoError(t, err)
	assert.IsType(t, noop.MeterProvider{}, mp)
}

func TestProvideMeterProvider_RequiresEndpoint(t *testing.T) {
	// Given
	p := providerParams{
		Lc:        fxtest.NewLifecycle(t),
		Log:       zap.NewNop(),
		Cfg:       otelconfig.Config{Metrics: otelconfig.MetricsConfig{Enabled: true, Interval: otelconfig.DefaultMetricsInterval}},
		Readiness: nopComponents{},
	}

	// When
	_, err := provideMeterProvider(p)

	// Then
	assert.ErrorIs(t, err, errNoEndpoint)
}
