package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/blogem/symptom-survey/models"
	"github.com/blogem/symptom-survey/repositories"
)

// ExportSheetName is the worksheet holding the exported records
const ExportSheetName = "Registros"

// ExportHeader is the header row of the records workbook
var ExportHeader = []string{"ID", "Nome", "Idade", "Gênero", "Região", "Sintomas", "Data de envio"}

// ExportService produces spreadsheet exports of the stored records
type ExportService interface {
	RecordsWorkbook() ([]byte, error)
}

type exportService struct {
	recordRepo repositories.RecordRepository
}

// NewExportService creates a new export service
func NewExportService(recordRepo repositories.RecordRepository) ExportService {
	return &exportService{recordRepo: recordRepo}
}

// RecordsWorkbook returns an .xlsx file with one row per record in id order
func (s *exportService) RecordsWorkbook() ([]byte, error) {
	records, err := s.recordRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return buildRecordsWorkbook(records)
}

func buildRecordsWorkbook(records []models.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(ExportSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	header := make([]interface{}, len(ExportHeader))
	for i, h := range ExportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(ExportSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(ExportHeader))
	if err != nil {
		return nil, fmt.Errorf("failed to convert column number: %w", err)
	}
	if err := f.SetCellStyle(ExportSheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}
	if err := f.SetColWidth(ExportSheetName, "B", "B", 25); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(ExportSheetName, "F", "G", 30); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}

		submittedAt := ""
		if !r.SubmittedAt.IsZero() {
			submittedAt = models.FormatDateTime(r.SubmittedAt)
		}

		row := []interface{}{r.ID, r.Name, r.Age, r.Gender, r.Region, r.Symptoms, submittedAt}
		if err := f.SetSheetRow(ExportSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write record %d: %w", r.ID, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
