package controllers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/symptom-survey/models"
	"github.com/blogem/symptom-survey/services"
)

// SurveyController handles the submission form
type SurveyController struct {
	services *services.Services
	rd       *renderer
	log      *zap.Logger
}

// NewSurveyController creates a new survey controller
func NewSurveyController(services *services.Services, rd *renderer, log *zap.Logger) *SurveyController {
	return &SurveyController{
		services: services,
		rd:       rd,
		log:      log,
	}
}

type surveyPage struct {
	Title       string
	CurrentPage string
	Errors      []string
	Form        *models.RecordForm
}

// Index handles GET /
func (c *SurveyController) Index(w http.ResponseWriter, r *http.Request) {
	c.rd.render(w, "survey", "form.html", surveyPage{
		Title:       "Registro de Sintomas",
		CurrentPage: "form",
		Form:        &models.RecordForm{},
	})
}

// Submit handles POST /submit
func (c *SurveyController) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := models.NewRecordForm(r.PostForm)
	if _, err := c.services.Survey.Submit(form); err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			c.rd.renderWithStatus(w, http.StatusBadRequest, "survey_error", "form.html", surveyPage{
				Title:       "Registro de Sintomas",
				CurrentPage: "form",
				Errors:      verrs.GetMessages(),
				Form:        form,
			})
			return
		}

		c.log.Error("failed to save submission", zap.Error(err))
		http.Error(w, "Failed to save submission", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
