package controllers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/blogem/symptom-survey/services"
)

// renderer parses the layout and a page template on every render
type renderer struct {
	dir string
	log *zap.Logger
}

// render creates a template set and renders it with the provided data
func (rd *renderer) render(w http.ResponseWriter, templateName string, pageTemplate string, data interface{}) error {
	return rd.renderWithStatus(w, http.StatusOK, templateName, pageTemplate, data)
}

// renderWithStatus creates a template set and renders it with the provided data and status code
func (rd *renderer) renderWithStatus(w http.ResponseWriter, statusCode int, templateName string, pageTemplate string, data interface{}) error {
	tmpl := template.New(templateName)

	_, err := tmpl.ParseFiles(filepath.Join(rd.dir, "layout.html"), filepath.Join(rd.dir, pageTemplate))
	if err != nil {
		rd.log.Error("failed to parse template", zap.String("page", pageTemplate), zap.Error(err))
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}

	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		rd.log.Error("failed to render template", zap.String("page", pageTemplate), zap.Error(err))
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	return nil
}

// writeJSON encodes v as the response body
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Controllers holds all controller instances
type Controllers struct {
	Survey    *SurveyController
	Dashboard *DashboardController
	Chatbot   *ChatbotController
	Export    *ExportController
	Health    *HealthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, templatesDir string, serviceName string, log *zap.Logger) *Controllers {
	rd := &renderer{dir: templatesDir, log: log}
	return &Controllers{
		Survey:    NewSurveyController(services, rd, log),
		Dashboard: NewDashboardController(services, rd, log),
		Chatbot:   NewChatbotController(services, log),
		Export:    NewExportController(services, log),
		Health:    NewHealthController(services, serviceName),
	}
}
