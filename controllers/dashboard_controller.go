package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/symptom-survey/services"
)

// DashboardController handles dashboard-related requests
type DashboardController struct {
	services *services.Services
	rd       *renderer
	log      *zap.Logger
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(services *services.Services, rd *renderer, log *zap.Logger) *DashboardController {
	return &DashboardController{
		services: services,
		rd:       rd,
		log:      log,
	}
}

// Index handles GET /dashboard
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	report, err := c.services.Report.GetDashboardData()
	if err != nil {
		c.log.Error("failed to load dashboard data", zap.Error(err))
		http.Error(w, "Failed to load dashboard data", http.StatusInternalServerError)
		return
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Report      *services.Report
	}{
		Title:       "Dashboard",
		CurrentPage: "dashboard",
		Report:      report,
	}

	c.rd.render(w, "dashboard", "dashboard.html", templateData)
}
