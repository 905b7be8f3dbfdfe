package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/symptom-survey/models"
	"github.com/blogem/symptom-survey/repositories/mocks"
)

func sampleRecords() []models.Record {
	return []models.Record{
		{ID: 1, Name: "Ana", Age: 20, Gender: "Feminino", Region: "A", Symptoms: "febre, tosse"},
		{ID: 2, Name: "Bia", Age: 30, Gender: "Feminino", Region: "A", Symptoms: "tosse,dor de cabeça"},
		{ID: 3, Name: "Caio", Age: 40, Gender: "Masculino", Region: "B", Symptoms: "fadiga"},
		{ID: 4, Name: "Duda", Age: 25, Gender: "Outro", Region: "A", Symptoms: "tosse , febre"},
	}
}

func TestBuildReportEmpty(t *testing.T) {
	report := BuildReport(nil)

	assert.Zero(t, report.Total)
	assert.Empty(t, report.Genders)
	assert.Empty(t, report.AgeBins)
	assert.Empty(t, report.Regions)
	assert.Empty(t, report.Symptoms)
}

func TestRegionCountsDescending(t *testing.T) {
	records := []models.Record{{Region: "B"}, {Region: "A"}, {Region: "A"}, {Region: "A"}}

	assert.Equal(t, []Count{{"A", 3}, {"B", 1}}, RegionCounts(records))
}

func TestCountsBreakTiesByFirstEncountered(t *testing.T) {
	records := []models.Record{
		{Gender: "M"}, {Gender: "F"}, {Gender: "X"}, {Gender: "F"}, {Gender: "M"},
	}

	assert.Equal(t, []Count{{"M", 2}, {"F", 2}, {"X", 1}}, GenderCounts(records))
}

func TestTopSymptoms(t *testing.T) {
	counts := TopSymptoms(sampleRecords(), TopSymptomsLimit)

	assert.Equal(t, []Count{
		{"tosse", 3},
		{"febre", 2},
		{"dor de cabeça", 1},
		{"fadiga", 1},
	}, counts)
}

func TestTopSymptomsLimit(t *testing.T) {
	var records []models.Record
	for _, s := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		records = append(records, models.Record{Symptoms: s})
	}
	records = append(records, models.Record{Symptoms: "l, k"})

	top := TopSymptoms(records, TopSymptomsLimit)
	require.Len(t, top, TopSymptomsLimit)
	assert.Equal(t, Count{"k", 2}, top[0])
	assert.Equal(t, Count{"l", 2}, top[1])
	assert.Equal(t, Count{"a", 1}, top[2])
}

func TestAgeHistogram(t *testing.T) {
	records := []models.Record{{Age: 10}, {Age: 15}, {Age: 19}, {Age: 20}, {Age: 110}}

	bins := AgeHistogram(records, 10)
	require.Len(t, bins, 10)

	assert.Equal(t, 10.0, bins[0].Lower)
	assert.Equal(t, 20.0, bins[0].Upper)
	assert.Equal(t, 110.0, bins[9].Upper)

	assert.Equal(t, 3, bins[0].Count)
	assert.Equal(t, 1, bins[1].Count)
	// The maximum lands in the closed last bin
	assert.Equal(t, 1, bins[9].Count)

	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, len(records), total)
}

func TestAgeHistogramSingleAge(t *testing.T) {
	bins := AgeHistogram([]models.Record{{Age: 30}, {Age: 30}}, 10)
	require.Len(t, bins, 10)

	assert.InDelta(t, 29.5, bins[0].Lower, 1e-9)
	assert.InDelta(t, 30.5, bins[9].Upper, 1e-9)

	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, 2, total)
}

func TestReportServiceGetDashboardData(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	repo.EXPECT().GetAll().Return(sampleRecords(), nil)

	report, err := NewReportService(repo).GetDashboardData()
	require.NoError(t, err)

	assert.Equal(t, 4, report.Total)
	assert.Equal(t, []Count{{"Feminino", 2}, {"Masculino", 1}, {"Outro", 1}}, report.Genders)
	assert.Equal(t, []Count{{"A", 3}, {"B", 1}}, report.Regions)
	assert.Len(t, report.AgeBins, AgeHistogramBins)
	assert.Equal(t, "tosse", report.Symptoms[0].Label)
}

func TestReportServiceRepositoryError(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	repo.EXPECT().GetAll().Return(nil, errors.New("database is locked"))

	_, err := NewReportService(repo).GetDashboardData()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}
