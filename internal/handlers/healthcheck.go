package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentwire/article-service/internal/services"
)

type HealthHandler struct {
	healthService services.HealthService
}

func NewHealthHandler(healthService services.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	report := h.healthService.Check(c.Request.Context())
	status := http.StatusOK
	if report.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}

// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	report := h.healthService.Check(c.Request.Context())
	if report.Status != "healthy" {
		c.JSON(http.StatusServiceUnavailable, report)
		return
	}
	c.JSON(http.StatusOK, report)
}
