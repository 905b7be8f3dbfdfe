package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// OpenDB opens the SQLite database file and checks the connection
func OpenDB(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite serializes writers; a single connection avoids SQLITE_BUSY between handlers
	db.SetMaxOpenConns(1)

	return db, nil
}

// InitializeDatabase opens the database and creates the schema if it is absent.
// Calling it again on an initialized file is a no-op apart from the ping.
func InitializeDatabase(dataSourceName string, log *zap.Logger) (*sql.DB, error) {
	db, err := OpenDB(dataSourceName)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(db, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("database initialized", zap.String("path", dataSourceName))
	return db, nil
}
