package services

import (
	"fmt"
	"sort"

	"github.com/blogem/symptom-survey/models"
	"github.com/blogem/symptom-survey/repositories"
)

const (
	// AgeHistogramBins is the number of equal-width age bins on the dashboard
	AgeHistogramBins = 10
	// TopSymptomsLimit is the number of symptoms shown on the dashboard
	TopSymptomsLimit = 10
)

// Count is a label with its number of occurrences
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AgeBin is one histogram bin. Lower is inclusive; Upper is exclusive except
// for the last bin.
type AgeBin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Report holds the four dashboard aggregates
type Report struct {
	Total    int      `json:"total"`
	Genders  []Count  `json:"genders"`
	AgeBins  []AgeBin `json:"age_bins"`
	Regions  []Count  `json:"regions"`
	Symptoms []Count  `json:"symptoms"`
}

// ReportService builds dashboard aggregates from the stored records
type ReportService interface {
	GetDashboardData() (*Report, error)
}

type reportService struct {
	recordRepo repositories.RecordRepository
}

// NewReportService creates a new report service
func NewReportService(recordRepo repositories.RecordRepository) ReportService {
	return &reportService{recordRepo: recordRepo}
}

// GetDashboardData reads the current records and aggregates them
func (s *reportService) GetDashboardData() (*Report, error) {
	records, err := s.recordRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return BuildReport(records), nil
}

// BuildReport derives every dashboard aggregate from records
func BuildReport(records []models.Record) *Report {
	return &Report{
		Total:    len(records),
		Genders:  GenderCounts(records),
		AgeBins:  AgeHistogram(records, AgeHistogramBins),
		Regions:  RegionCounts(records),
		Symptoms: TopSymptoms(records, TopSymptomsLimit),
	}
}

// GenderCounts counts records per gender value, most frequent first
func GenderCounts(records []models.Record) []Count {
	values := make([]string, len(records))
	for i, r := range records {
		values[i] = r.Gender
	}
	return countValues(values)
}

// RegionCounts counts records per region value, most frequent first
func RegionCounts(records []models.Record) []Count {
	values := make([]string, len(records))
	for i, r := range records {
		values[i] = r.Region
	}
	return countValues(values)
}

// SymptomCounts counts every symptom across all records, most frequent first
func SymptomCounts(records []models.Record) []Count {
	var values []string
	for _, r := range records {
		values = append(values, r.SymptomList()...)
	}
	return countValues(values)
}

// TopSymptoms returns the n most frequent symptoms
func TopSymptoms(records []models.Record, n int) []Count {
	counts := SymptomCounts(records)
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// AgeHistogram splits the observed age range into equal-width bins.
// A single distinct age widens the range by half a year on each side.
func AgeHistogram(records []models.Record, bins int) []AgeBin {
	if len(records) == 0 || bins <= 0 {
		return nil
	}

	lo, hi := records[0].Age, records[0].Age
	for _, r := range records[1:] {
		lo = min(lo, r.Age)
		hi = max(hi, r.Age)
	}

	low, high := float64(lo), float64(hi)
	if lo == hi {
		low -= 0.5
		high += 0.5
	}
	width := (high - low) / float64(bins)

	histogram := make([]AgeBin, bins)
	for i := range histogram {
		histogram[i].Lower = low + float64(i)*width
		histogram[i].Upper = low + float64(i+1)*width
	}
	histogram[bins-1].Upper = high

	for _, r := range records {
		idx := int((float64(r.Age) - low) / width)
		if idx >= bins {
			idx = bins - 1
		}
		histogram[idx].Count++
	}

	return histogram
}

// countValues counts occurrences, sorted by count descending with ties in
// first-encountered order
func countValues(values []string) []Count {
	if len(values) == 0 {
		return nil
	}

	index := make(map[string]int)
	var counts []Count
	for _, v := range values {
		if i, ok := index[v]; ok {
			counts[i].Count++
			continue
		}
		index[v] = len(counts)
		counts = append(counts, Count{Label: v, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	return counts
}
