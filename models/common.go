package models

import (
	"strings"
	"time"
)

// SubmittedAtLayout is the text layout of registros.data_envio
const SubmittedAtLayout = "2006-01-02 15:04:05"

// FlashMessage represents a flash message for user feedback
type FlashMessage struct {
	Type    string `json:"type"` // "success", "error", "warning", "info"
	Message string `json:"message"`
}

// FormatDateTime formats a time as YYYY-MM-DD HH:MM:SS
func FormatDateTime(t time.Time) string {
	return t.Format(SubmittedAtLayout)
}

// ParseDateTime parses a YYYY-MM-DD HH:MM:SS string in local time
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(SubmittedAtLayout, s, time.Local)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// HasErrors returns true if there are validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// GetMessages returns all error messages as a slice of strings
func (ve ValidationErrors) GetMessages() []string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Message
	}
	return messages
}

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(ve.GetMessages(), ", ")
}
