package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Record RecordRepository
	Audit  AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Record: NewRecordRepository(db),
		Audit:  NewAuditRepository(db),
	}
}
