package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/symptom-survey/models"
)

// RecordRepository persists survey records. There is no update or delete.
type RecordRepository interface {
	Create(record *models.Record) error
	GetAll() ([]models.Record, error)
	Count() (int, error)
}

type sqliteRecordRepository struct {
	db *sql.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *sql.DB) RecordRepository {
	return &sqliteRecordRepository{db: db}
}

// Create inserts a record, setting its ID and submission timestamp
func (r *sqliteRecordRepository) Create(record *models.Record) error {
	query := `
		INSERT INTO registros (nome, idade, genero, regiao, sintomas, data_envio)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	submittedAt := time.Now().Truncate(time.Second)
	result, err := r.db.Exec(
		query,
		record.Name,
		record.Age,
		record.Gender,
		record.Region,
		record.Symptoms,
		models.FormatDateTime(submittedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted record id: %w", err)
	}

	record.ID = id
	record.SubmittedAt = submittedAt
	return nil
}

// GetAll returns every record in insertion order
func (r *sqliteRecordRepository) GetAll() ([]models.Record, error) {
	query := `
		SELECT id, nome, idade, genero, regiao, sintomas, data_envio
		FROM registros
		ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		var record models.Record
		var name, gender, region, symptoms, stamp sql.NullString
		var age sql.NullInt64

		if err := rows.Scan(&record.ID, &name, &age, &gender, &region, &symptoms, &stamp); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		record.Name = name.String
		record.Age = int(age.Int64)
		record.Gender = gender.String
		record.Region = region.String
		record.Symptoms = symptoms.String

		if stamp.Valid && stamp.String != "" {
			record.SubmittedAt, err = models.ParseDateTime(stamp.String)
			if err != nil {
				return nil, fmt.Errorf("record %d has malformed data_envio %q: %w", record.ID, stamp.String, err)
			}
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

// Count returns the number of stored records
func (r *sqliteRecordRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM registros").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}
