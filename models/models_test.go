package models

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSymptoms(t *testing.T) {
	assert.Equal(t, []string{"febre", "tosse", "dor de cabeça"}, SplitSymptoms("febre, tosse ,dor de cabeça"))
	assert.Equal(t, []string{"febre"}, SplitSymptoms(" febre ,, ,"))
	assert.Empty(t, SplitSymptoms(""))
	assert.Empty(t, SplitSymptoms(" , "))
}

func TestRecordSymptomList(t *testing.T) {
	r := Record{Symptoms: "tosse,fadiga"}
	assert.Equal(t, []string{"tosse", "fadiga"}, r.SymptomList())
}

func TestRecordFormValidation(t *testing.T) {
	// Test valid form
	valid := NewRecordForm(url.Values{
		"nome":     {"Ana"},
		"idade":    {"34"},
		"genero":   {"Feminino"},
		"regiao":   {"Sudeste"},
		"sintomas": {"febre, tosse"},
	})
	assert.False(t, valid.Validate().HasErrors())

	age, err := valid.ParsedAge()
	require.NoError(t, err)
	assert.Equal(t, 34, age)

	// Empty values are accepted as long as the field was posted
	empty := NewRecordForm(url.Values{
		"nome": {""}, "idade": {"0"}, "genero": {""}, "regiao": {""}, "sintomas": {""},
	})
	assert.False(t, empty.Validate().HasErrors())

	// Missing fields and a non-numeric age
	invalid := NewRecordForm(url.Values{
		"nome":  {"Ana"},
		"idade": {"trinta"},
	})
	errs := invalid.Validate()
	require.Len(t, errs, 4)
	assert.Equal(t, []string{
		"genero is required",
		"regiao is required",
		"sintomas is required",
		"idade must be an integer",
	}, errs.GetMessages())
	assert.Contains(t, errs.Error(), "validation failed")
}

func TestRecordFormMissingAgeReportedOnce(t *testing.T) {
	form := NewRecordForm(url.Values{"nome": {"Ana"}, "genero": {"M"}, "regiao": {"Sul"}, "sintomas": {"febre"}})
	errs := form.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, FieldAge, errs[0].Field)
}

func TestDateTimeRoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)
	s := FormatDateTime(ts)
	assert.Equal(t, "2024-03-09 14:05:07", s)

	parsed, err := ParseDateTime(s)
	require.NoError(t, err)
	assert.True(t, ts.Equal(parsed))
}
