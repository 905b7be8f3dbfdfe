package repositories

import (
	"database/sql"
	"time"

	"github.com/blogem/symptom-survey/models"
)

// AuditRepository handles audit log persistence
type AuditRepository interface {
	Create(entry *models.AuditLogEntry) error
}

type sqliteAuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

// Create inserts a new audit log entry
func (r *sqliteAuditRepository) Create(entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO audit_log (timestamp, method, path, form_data, user_agent, ip_address)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	result, err := r.db.Exec(
		query,
		entry.Timestamp,
		entry.Method,
		entry.Path,
		entry.FormData,
		entry.UserAgent,
		entry.IPAddress,
	)
	if err != nil {
		return err
	}

	entry.ID, err = result.LastInsertId()
	return err
}
