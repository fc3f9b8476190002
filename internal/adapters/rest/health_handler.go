package rest

import (
	"net/http"
	"time"

	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/ports"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	health  ports.HealthPort
	service string
}

func NewHealthHandler(health ports.HealthPort, service string) *HealthHandler {
	return &HealthHandler{health: health, service: service}
}

func (h *HealthHandler) Check(c *gin.Context) {
	healthy, msg := h.health.Check(c.Request.Context(), h.service)

	status := "ok"
	code := http.StatusOK
	if !healthy {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"message":   msg,
		"service":   h.service,
		"timestamp": time.Now().UTC(),
	})
}
