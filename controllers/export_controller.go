package controllers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/blogem/symptom-survey/services"
)

// ExportController serves spreadsheet downloads
type ExportController struct {
	services *services.Services
	log      *zap.Logger
}

// NewExportController creates a new export controller
func NewExportController(services *services.Services, log *zap.Logger) *ExportController {
	return &ExportController{
		services: services,
		log:      log,
	}
}

// Records handles GET /export.xlsx
func (c *ExportController) Records(w http.ResponseWriter, r *http.Request) {
	data, err := c.services.Export.RecordsWorkbook()
	if err != nil {
		c.log.Error("failed to export records", zap.Error(err))
		http.Error(w, "Failed to export records", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=registros.xlsx")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}
