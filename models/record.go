package models

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Record is one stored survey submission. Records are write-once.
type Record struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"nome" db:"nome"`
	Age         int       `json:"idade" db:"idade"`
	Gender      string    `json:"genero" db:"genero"`
	Region      string    `json:"regiao" db:"regiao"`
	Symptoms    string    `json:"sintomas" db:"sintomas"`
	SubmittedAt time.Time `json:"data_envio" db:"data_envio"`
}

// SymptomList returns the record's symptoms split on commas
func (r Record) SymptomList() []string {
	return SplitSymptoms(r.Symptoms)
}

// SplitSymptoms splits a comma separated symptom field, trimming whitespace
// and dropping empty entries.
func SplitSymptoms(s string) []string {
	var symptoms []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			symptoms = append(symptoms, part)
		}
	}
	return symptoms
}

// Form field names posted by the survey page
const (
	FieldName     = "nome"
	FieldAge      = "idade"
	FieldGender   = "genero"
	FieldRegion   = "regiao"
	FieldSymptoms = "sintomas"
)

// RecordForm represents the survey form data
type RecordForm struct {
	Name     string `json:"nome"`
	Age      string `json:"idade"`
	Gender   string `json:"genero"`
	Region   string `json:"regiao"`
	Symptoms string `json:"sintomas"`

	missing []string
}

// NewRecordForm builds a form from posted values, remembering absent fields
func NewRecordForm(values url.Values) *RecordForm {
	form := &RecordForm{}
	fields := []struct {
		name string
		dst  *string
	}{
		{FieldName, &form.Name},
		{FieldAge, &form.Age},
		{FieldGender, &form.Gender},
		{FieldRegion, &form.Region},
		{FieldSymptoms, &form.Symptoms},
	}

	for _, f := range fields {
		v, ok := values[f.name]
		if !ok || len(v) == 0 {
			form.missing = append(form.missing, f.name)
			continue
		}
		*f.dst = v[0]
	}

	return form
}

// Validate checks that every field was posted and that the age is an integer
func (f *RecordForm) Validate() ValidationErrors {
	var errs ValidationErrors

	for _, field := range f.missing {
		errs = append(errs, ValidationError{Field: field, Message: field + " is required"})
	}

	if !f.isMissing(FieldAge) {
		if _, err := f.ParsedAge(); err != nil {
			errs = append(errs, ValidationError{Field: FieldAge, Message: "idade must be an integer"})
		}
	}

	return errs
}

// ParsedAge converts the age field to an integer
func (f *RecordForm) ParsedAge() (int, error) {
	return strconv.Atoi(strings.TrimSpace(f.Age))
}

func (f *RecordForm) isMissing(field string) bool {
	for _, m := range f.missing {
		if m == field {
			return true
		}
	}
	return false
}
