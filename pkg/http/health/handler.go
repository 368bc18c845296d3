package health

import (
	"net/http"

	corehealth "github.com/Sokol111/ecommerce-marketplace/pkg/core/health"
	"github.com/gin-gonic/gin"
)

type healthHandler struct {
	readiness corehealth.ReadinessChecker
}

func newHealthHandler(r corehealth.ReadinessChecker) *healthHandler {
	return &healthHandler{readiness: r}
}

// IsReady answers 200 once every registered component is ready, 503 before.
// JSON details are returned for ?format=json or Accept: application/json.
func (h *healthHandler) IsReady(c *gin.Context) {
	code := http.StatusServiceUnavailable
	if h.readiness.IsReady() {
		code = http.StatusOK
	}

	if c.Query("format") == "json" || c.GetHeader("Accept") == "application/json" {
		c.JSON(code, h.readiness.GetStatus())
		return
	}

	if code == http.StatusOK {
		c.String(code, "ready")
		return
	}
	c.String(code, "not ready")
}

func (h *healthHandler) IsLive(c *gin.Context) {
	c.String(http.StatusOK, "alive")
}
