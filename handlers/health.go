package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prodea_gateway/api"
)

type HealthHandler struct {
	client *api.Client
}

func NewHealthHandler(client *api.Client) *HealthHandler {
	return &HealthHandler{client: client}
}

// HealthCheck re-runs the connectivity probe against the backend's list
// endpoints. An unreachable backend is reported, not treated as a
// gateway failure.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	result := h.client.Probe(c.Request.Context())

	status := "healthy"
	code := http.StatusOK
	if !result.Reachable {
		status = "unreachable"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":  status,
		"backend": result,
	})
}
