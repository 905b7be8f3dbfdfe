package services

import (
	"go.uber.org/zap"

	"github.com/blogem/symptom-survey/repositories"
)

// Services holds all service instances
type Services struct {
	Survey  SurveyService
	Report  ReportService
	Chatbot ChatbotService
	Export  ExportService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, log *zap.Logger) *Services {
	return &Services{
		Survey:  NewSurveyService(repos.Record, log),
		Report:  NewReportService(repos.Record),
		Chatbot: NewChatbotService(repos.Record, log),
		Export:  NewExportService(repos.Record),
	}
}
