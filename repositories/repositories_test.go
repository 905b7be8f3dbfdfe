package repositories

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/blogem/symptom-survey/database"
	"github.com/blogem/symptom-survey/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// Initialize test database using the actual migration system
	db, err := database.InitializeDatabase(dbPath, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestRecordRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecordRepository(db)

	// Empty table
	records, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, records)

	before := time.Now().Add(-time.Second)

	// Test Create
	first := &models.Record{Name: "Ana", Age: 34, Gender: "Feminino", Region: "Sudeste", Symptoms: "febre, tosse"}
	require.NoError(t, repo.Create(first))
	assert.NotZero(t, first.ID)
	assert.True(t, first.SubmittedAt.After(before))

	second := &models.Record{Name: "Bruno", Age: 51, Gender: "Masculino", Region: "Nordeste", Symptoms: "fadiga"}
	require.NoError(t, repo.Create(second))
	assert.Greater(t, second.ID, first.ID)

	// Test GetAll returns insertion order with submitted values
	records, err = repo.GetAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, "Ana", records[0].Name)
	assert.Equal(t, 34, records[0].Age)
	assert.Equal(t, "Feminino", records[0].Gender)
	assert.Equal(t, "Sudeste", records[0].Region)
	assert.Equal(t, "febre, tosse", records[0].Symptoms)
	assert.True(t, first.SubmittedAt.Equal(records[0].SubmittedAt))
	assert.Equal(t, "Bruno", records[1].Name)

	// Test Count
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRecordRepositoryEachSubmissionAddsOneRecord(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecordRepository(db)

	var lastID int64
	for i, name := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(&models.Record{Name: name, Age: 20 + i}))

		records, err := repo.GetAll()
		require.NoError(t, err)
		require.Len(t, records, i+1)

		newest := records[len(records)-1]
		assert.Equal(t, name, newest.Name)
		assert.GreaterOrEqual(t, newest.ID, lastID)
		lastID = newest.ID
	}
}

func TestRecordRepositoryNullColumns(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecordRepository(db)

	_, err := db.Exec("INSERT INTO registros (nome) VALUES ('legacy')")
	require.NoError(t, err)

	records, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "legacy", records[0].Name)
	assert.Zero(t, records[0].Age)
	assert.True(t, records[0].SubmittedAt.IsZero())
}

func TestRecordRepositoryMalformedTimestamp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecordRepository(db)

	_, err := db.Exec("INSERT INTO registros (nome, data_envio) VALUES ('x', 'yesterday')")
	require.NoError(t, err)

	_, err = repo.GetAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed data_envio")
}

func TestRecordRepositoryInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO registros`).
		WithArgs("Ana", 34, "F", "Sul", "febre", sqlmock.AnyArg()).
		WillReturnError(errors.New("unable to open database file"))

	repo := NewRecordRepository(db)
	record := &models.Record{Name: "Ana", Age: 34, Gender: "F", Region: "Sul", Symptoms: "febre"}

	err = repo.Create(record)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert record")
	assert.Zero(t, record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepositoryQueryFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, nome, idade`).WillReturnError(sql.ErrConnDone)

	_, err = NewRecordRepository(db).GetAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepositoryScansMockRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "nome", "idade", "genero", "regiao", "sintomas", "data_envio"}).
		AddRow(1, "Ana", 30, "F", "Sul", "febre", "2024-01-02 03:04:05").
		AddRow(2, "Caio", 41, "M", "Norte", "tosse", nil)
	mock.ExpectQuery(`SELECT id, nome, idade`).WillReturnRows(rows)

	records, err := NewRecordRepository(db).GetAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 2024, records[0].SubmittedAt.Year())
	assert.Equal(t, "Norte", records[1].Region)
	assert.True(t, records[1].SubmittedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)

	entry := &models.AuditLogEntry{
		Method:    "POST",
		Path:      "/submit",
		FormData:  `{"nome":"Ana"}`,
		UserAgent: "go-test",
		IPAddress: "127.0.0.1",
	}
	require.NoError(t, repo.Create(entry))
	assert.NotZero(t, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())

	var path, form string
	require.NoError(t, db.QueryRow("SELECT path, form_data FROM audit_log WHERE id = ?", entry.ID).Scan(&path, &form))
	assert.Equal(t, "/submit", path)
	assert.Equal(t, `{"nome":"Ana"}`, form)
}
