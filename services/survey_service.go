package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/blogem/symptom-survey/metrics"
	"github.com/blogem/symptom-survey/models"
	"github.com/blogem/symptom-survey/repositories"
)

// SurveyService accepts survey submissions
type SurveyService interface {
	Submit(form *models.RecordForm) (*models.Record, error)
	GetAllRecords() ([]models.Record, error)
	GetRecordCount() (int, error)
}

type surveyService struct {
	recordRepo repositories.RecordRepository
	log        *zap.Logger
}

// NewSurveyService creates a new survey service
func NewSurveyService(recordRepo repositories.RecordRepository, log *zap.Logger) SurveyService {
	return &surveyService{
		recordRepo: recordRepo,
		log:        log,
	}
}

// Submit validates the form and stores it as a new record.
// Validation failures are returned as models.ValidationErrors.
func (s *surveyService) Submit(form *models.RecordForm) (*models.Record, error) {
	if errs := form.Validate(); errs.HasErrors() {
		metrics.RecordSubmission("invalid")
		return nil, errs
	}

	age, err := form.ParsedAge()
	if err != nil {
		metrics.RecordSubmission("invalid")
		return nil, models.ValidationErrors{{Field: models.FieldAge, Message: "idade must be an integer"}}
	}

	record := &models.Record{
		Name:     form.Name,
		Age:      age,
		Gender:   form.Gender,
		Region:   form.Region,
		Symptoms: form.Symptoms,
	}

	if err := s.recordRepo.Create(record); err != nil {
		metrics.RecordSubmission("error")
		return nil, fmt.Errorf("failed to save record: %w", err)
	}

	metrics.RecordSubmission("ok")
	s.log.Info("record submitted",
		zap.Int64("id", record.ID),
		zap.String("region", record.Region),
		zap.Int("symptoms", len(record.SymptomList())),
	)

	return record, nil
}

// GetAllRecords retrieves all records in insertion order
func (s *surveyService) GetAllRecords() ([]models.Record, error) {
	return s.recordRepo.GetAll()
}

// GetRecordCount returns the total number of records
func (s *surveyService) GetRecordCount() (int, error) {
	return s.recordRepo.Count()
}
