package controllers

import (
	"net/http"

	"github.com/blogem/symptom-survey/services"
)

// HealthController reports service liveness
type HealthController struct {
	services    *services.Services
	serviceName string
}

// NewHealthController creates a new health controller
func NewHealthController(services *services.Services, serviceName string) *HealthController {
	return &HealthController{
		services:    services,
		serviceName: serviceName,
	}
}

// Check handles GET /health
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	count, err := c.services.Survey.GetRecordCount()
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":  "unhealthy",
			"service": c.serviceName,
			"error":   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": c.serviceName,
		"records": count,
	})
}
