package internal

import (
	"context"
	"strings"

	appconfig "github.com/Sokol111/ecommerce-marketplace/pkg/core/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

const (
	serviceNamespace = "marketplace"
	apiPrefix        = "/api/"
)

// instanceID is shared by the tracer and meter providers of one process.
var instanceID = uuid.NewString()

// NewResource describes this process to the collector. OTEL_RESOURCE_ATTRIBUTES
// is merged last so deployments can override any attribute.
func NewResource(ctx context.Context, appCfg appconfig.AppConfig) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithHost(),
		resource.WithAttributes(
			semconv.ServiceNamespaceKey.String(serviceNamespace),
			semconv.ServiceNameKey.String(appCfg.ServiceName),
			semconv.ServiceVersionKey.String(appCfg.ServiceVersion),
			semconv.ServiceInstanceIDKey.String(instanceID),
			semconv.DeploymentEnvironmentNameKey.String(appCfg.Environment),
		),
		resource.WithFromEnv(),
	)
}

// FilterPaths instruments matched marketplace API routes only. Unmatched
// paths are skipped so scanners cannot inflate span and metric cardinality.
func FilterPaths(c *gin.Context) bool {
	return strings.HasPrefix(c.FullPath(), apiPrefix)
}
